// Package mode implements the CBC and CTR block-cipher modes of
// operation as streaming update/finalize engines, generic over any
// block cipher from the aes package and, for CBC, over a padding policy
// from the padding package.
//
// Both CBCEncryptor/CBCDecryptor and CTREncryptor/CTRDecryptor are
// instantiated with concrete type parameters (e.g.
// CBCEncryptor[*aes.Cipher256, padding.PKCS7]), which the Go compiler
// monomorphizes per instantiation: no interface v-table and no heap
// allocation is introduced by the generic parameters themselves.
package mode

import "github.com/wovocrypt/go-symc/aes"

// BlockCipher is the constraint mode's generic engines require of their
// cipher type parameter.
type BlockCipher interface {
	EncryptBlock(*aes.Block)
	DecryptBlock(*aes.Block)
}

// Padding is the constraint CBCEncryptor/CBCDecryptor require of their
// padding type parameter. padding.PKCS7 and padding.NoPadding both
// satisfy it.
type Padding interface {
	Pad(data, output []byte, blockSize int) (int, error)
	Unpad(data []byte, blockSize int) (int, error)
}

const blockSize = aes.BlockSize
