// Package mac implements HMAC (RFC 2104) over any hash.Hasher, with no
// dependency outside the Go standard library.
package mac

import (
	"crypto/subtle"

	"github.com/wovocrypt/go-symc/hash"
	"github.com/wovocrypt/go-symc/internal/secure"
)

const (
	ipad = 0x36
	opad = 0x5c
)

// HasherPtr binds a hasher's value type H to the pointer type that
// actually implements hash.Hasher (SHA224/256/384/512's methods all
// have pointer receivers). It is the standard Go idiom for letting a
// generic function hold a bare value of H while still calling
// pointer-receiver methods on it, without erasing H to an interface
// value anywhere: HMAC[hash.SHA256, *hash.SHA256] is monomorphized by
// the compiler like any other generic instantiation, matching the
// mode package's cipher/padding generics rather than introducing a
// second, interface-based dispatch style for MAC composition.
type HasherPtr[H any] interface {
	*H
	hash.Hasher
}

// HMAC computes a keyed hash over a running message using the
// ipad/opad construction from RFC 2104. The inner hasher absorbs
// (K' xor ipad) at construction time and then the message as Update is
// called; Finalize feeds the inner digest into an outer hasher that
// already absorbed (K' xor opad).
type HMAC[H any, PH HasherPtr[H]] struct {
	inner, outer H
	processedKey []byte
}

// New returns an HMAC keyed with key. H is the concrete hasher's value
// type (e.g. hash.SHA256) and PH its pointer type, which Go infers from
// H: New[hash.SHA256](key) and New[hash.SHA256, *hash.SHA256](key) are
// equivalent.
func New[H any, PH HasherPtr[H]](key []byte) *HMAC[H, PH] {
	m := &HMAC[H, PH]{}
	m.processedKey = processKey[H, PH](key)
	m.loadKey()
	return m
}

// processKey implements RFC 2104's K' derivation: keys longer than the
// hash's block size are hashed down first, everything else is zero
// padded out to block size.
func processKey[H any, PH HasherPtr[H]](key []byte) []byte {
	var h H
	PH(&h).Reset()
	blockSize := PH(&h).BlockSize()
	processed := make([]byte, blockSize)

	if len(key) > blockSize {
		PH(&h).Update(key)
		digest := PH(&h).Finalize()
		copy(processed, digest)
	} else {
		copy(processed, key)
	}
	return processed
}

func (m *HMAC[H, PH]) loadKey() {
	blockSize := len(m.processedKey)
	innerPad := make([]byte, blockSize)
	outerPad := make([]byte, blockSize)
	for i := 0; i < blockSize; i++ {
		innerPad[i] = m.processedKey[i] ^ ipad
		outerPad[i] = m.processedKey[i] ^ opad
	}

	var inner, outer H
	PH(&inner).Reset()
	PH(&inner).Update(innerPad)
	m.inner = inner

	PH(&outer).Reset()
	PH(&outer).Update(outerPad)
	m.outer = outer

	secure.Zero(innerPad)
	secure.Zero(outerPad)
}

// Update feeds more message data into the running MAC.
func (m *HMAC[H, PH]) Update(data []byte) {
	PH(&m.inner).Update(data)
}

// Finalize returns H((K' xor opad) || H((K' xor ipad) || message)). The
// HMAC must not be used again without calling Reset.
func (m *HMAC[H, PH]) Finalize() []byte {
	innerDigest := PH(&m.inner).Finalize()
	PH(&m.outer).Update(innerDigest)
	digest := PH(&m.outer).Finalize()

	secure.Zero(innerDigest)
	PH(&m.inner).Reset()
	PH(&m.outer).Reset()

	return digest
}

// Zero scrubs m's derived key (K') and resets its inner/outer hashers,
// which clears their buffered state through their own Reset methods.
// Call it when discarding an HMAC instead of reusing it via Reset.
func (m *HMAC[H, PH]) Zero() {
	secure.Zero(m.processedKey)
	PH(&m.inner).Reset()
	PH(&m.outer).Reset()
}

// Reset returns the HMAC to its freshly-keyed state, ready to process a
// new message with the same key.
func (m *HMAC[H, PH]) Reset() {
	PH(&m.inner).Reset()
	PH(&m.outer).Reset()
	m.loadKey()
}

// OutputSize returns the MAC length in bytes.
func (m *HMAC[H, PH]) OutputSize() int {
	var h H
	return PH(&h).OutputSize()
}

// Compute is a one-shot convenience wrapper around New/Update/Finalize.
func Compute[H any, PH HasherPtr[H]](key, message []byte) []byte {
	m := New[H, PH](key)
	m.Update(message)
	return m.Finalize()
}

// Verify reports whether expectedMAC matches the MAC of message under
// key, using a constant-time comparison to avoid timing side channels.
func Verify[H any, PH HasherPtr[H]](key, message, expectedMAC []byte) bool {
	computed := Compute[H, PH](key, message)
	return subtle.ConstantTimeCompare(computed, expectedMAC) == 1
}
