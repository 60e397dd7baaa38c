// Package aes implements the AES-128/192/256 block cipher (FIPS 197)
// from scratch: S-box generation, key schedule, and the four round
// transforms and their inverses. It has no dependency outside the Go
// standard library.
package aes

import "github.com/wovocrypt/go-symc/internal/secure"

const (
	// BlockSize is the width of an AES block in bytes, regardless of
	// key size.
	BlockSize = 16

	// wordSize is the width of one column / key-schedule word in bytes.
	wordSize = 4

	// nb is the number of words making up one AES state (always 4 for
	// the 128-bit block AES defines).
	nb = 4
)

// Block is one 128-bit AES block.
type Block [BlockSize]byte

// Key128, Key192 and Key256 are fixed-size AES key types. Each exposes
// Bytes to recover the raw key material and Zero to scrub it in place.
type (
	Key128 [16]byte
	Key192 [24]byte
	Key256 [32]byte
)

// NewKey128 wraps raw key bytes in a Key128.
func NewKey128(raw [16]byte) Key128 { return Key128(raw) }

// NewKey192 wraps raw key bytes in a Key192.
func NewKey192(raw [24]byte) Key192 { return Key192(raw) }

// NewKey256 wraps raw key bytes in a Key256.
func NewKey256(raw [32]byte) Key256 { return Key256(raw) }

// Bytes returns the raw key bytes.
func (k Key128) Bytes() [16]byte { return [16]byte(k) }

// Bytes returns the raw key bytes.
func (k Key192) Bytes() [24]byte { return [24]byte(k) }

// Bytes returns the raw key bytes.
func (k Key256) Bytes() [32]byte { return [32]byte(k) }

// Zero scrubs the key material in place.
func (k *Key128) Zero() { secure.Zero(k[:]) }

// Zero scrubs the key material in place.
func (k *Key192) Zero() { secure.Zero(k[:]) }

// Zero scrubs the key material in place.
func (k *Key256) Zero() { secure.Zero(k[:]) }
