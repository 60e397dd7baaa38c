package padding

import symc "github.com/wovocrypt/go-symc"

// NoPadding requires data to already be block-aligned and passes it
// through unchanged. It exists for callers that manage their own
// framing and still want to drive mode.CBCEncryptor/CBCDecryptor.
type NoPadding struct{}

// Pad copies data into output unchanged, failing if data is not a
// multiple of blockSize.
func (NoPadding) Pad(data, output []byte, blockSize int) (int, error) {
	if blockSize <= 0 || blockSize > 255 {
		return 0, symc.NewError("padding.NoPadding.Pad", symc.InvalidLength)
	}
	if len(data)%blockSize != 0 {
		return 0, symc.NewError("padding.NoPadding.Pad", symc.InvalidInputLength)
	}
	if len(output) < len(data) {
		return 0, symc.NewError("padding.NoPadding.Pad", symc.BufferTooSmall)
	}

	copy(output[:len(data)], data)
	return len(data), nil
}

// Unpad validates that data is block-aligned and returns its full
// length unchanged.
func (NoPadding) Unpad(data []byte, blockSize int) (int, error) {
	if blockSize <= 0 || blockSize > 255 {
		return 0, symc.NewError("padding.NoPadding.Unpad", symc.InvalidLength)
	}
	if len(data)%blockSize != 0 {
		return 0, symc.NewError("padding.NoPadding.Unpad", symc.InvalidInputLength)
	}
	return len(data), nil
}
