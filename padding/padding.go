// Package padding implements the block-padding policies used by CBC:
// PKCS#7 (RFC 5652 §6.3) and a block-aligned no-op policy.
package padding

// Padding is implemented by zero-size types (PKCS7, NoPadding) so that
// mode.CBCEncryptor/CBCDecryptor can be instantiated over a padding
// policy as a generic type parameter, resolved at compile time with no
// v-table and no heap allocation.
type Padding interface {
	Pad(data, output []byte, blockSize int) (int, error)
	Unpad(data []byte, blockSize int) (int, error)
}
