package padding

import symc "github.com/wovocrypt/go-symc"

// PKCS7 implements RFC 5652 §6.3 padding: every padding byte carries the
// padding length, and a full block of padding is appended when data is
// already block-aligned so Unpad is always unambiguous.
type PKCS7 struct{}

// Pad appends PKCS#7 padding to data and writes the result into output,
// returning the total length written.
func (PKCS7) Pad(data, output []byte, blockSize int) (int, error) {
	if blockSize <= 0 || blockSize > 255 {
		return 0, symc.NewError("padding.PKCS7.Pad", symc.InvalidLength)
	}

	paddingLen := blockSize - (len(data) % blockSize)
	totalLen := len(data) + paddingLen

	if len(output) < totalLen {
		return 0, symc.NewError("padding.PKCS7.Pad", symc.BufferTooSmall)
	}

	out := output[:totalLen]
	copy(out, data)
	for i := len(data); i < totalLen; i++ {
		out[i] = byte(paddingLen)
	}

	return totalLen, nil
}

// Unpad validates and strips PKCS#7 padding from data, returning the
// length of the unpadded plaintext prefix.
func (PKCS7) Unpad(data []byte, blockSize int) (int, error) {
	if blockSize <= 0 || blockSize > 255 {
		return 0, symc.NewError("padding.PKCS7.Unpad", symc.InvalidLength)
	}
	if len(data) == 0 || len(data)%blockSize != 0 {
		return 0, symc.NewError("padding.PKCS7.Unpad", symc.InvalidPadding)
	}

	paddingLen := int(data[len(data)-1])
	if paddingLen == 0 || paddingLen > blockSize || paddingLen > len(data) {
		return 0, symc.NewError("padding.PKCS7.Unpad", symc.InvalidPadding)
	}

	start := len(data) - paddingLen
	for i := start; i < len(data); i++ {
		if data[i] != byte(paddingLen) {
			return 0, symc.NewError("padding.PKCS7.Unpad", symc.InvalidPadding)
		}
	}

	return start, nil
}
