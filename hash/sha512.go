package hash

var sha512IV = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var sha384IV = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

// SHA512 computes SHA-512 digests. Its zero value is not ready to use;
// call NewSHA512 or Reset before Update.
type SHA512 struct{ e engine64 }

// NewSHA512 returns a freshly initialized SHA-512 hasher.
func NewSHA512() *SHA512 {
	h := &SHA512{}
	h.Reset()
	return h
}

func (h *SHA512) Update(data []byte) { h.e.update(data) }
func (h *SHA512) Finalize() []byte   { return h.e.finalize() }
func (h *SHA512) BlockSize() int     { return engine64BlockSize }
func (h *SHA512) OutputSize() int    { return 64 }

// Reset restores h to SHA-512's initial state, whether or not h was
// previously used. This makes the zero value of SHA512 safe to Reset
// directly, which mac.HMAC's generic instantiation relies on.
func (h *SHA512) Reset() {
	h.e.reset()
	h.e.state = sha512IV
	h.e.outputSize = 64
}

// FinalizeAndReset returns h's digest by finalizing a clone of h, then
// resets h to its initial state so it is immediately ready to hash a
// new message.
func (h *SHA512) FinalizeAndReset() []byte {
	clone := *h
	digest := clone.Finalize()
	h.Reset()
	return digest
}

// Sum512 computes the SHA-512 digest of data in one call.
func Sum512(data []byte) [64]byte {
	h := NewSHA512()
	h.Update(data)
	var out [64]byte
	copy(out[:], h.Finalize())
	return out
}

// SHA384 computes SHA-384 digests. It shares SHA-512's compression
// function and differs only in its initial state and truncated output.
// Its zero value is not ready to use; call NewSHA384 or Reset first.
type SHA384 struct{ e engine64 }

// NewSHA384 returns a freshly initialized SHA-384 hasher.
func NewSHA384() *SHA384 {
	h := &SHA384{}
	h.Reset()
	return h
}

func (h *SHA384) Update(data []byte) { h.e.update(data) }
func (h *SHA384) Finalize() []byte   { return h.e.finalize() }
func (h *SHA384) BlockSize() int     { return engine64BlockSize }
func (h *SHA384) OutputSize() int    { return 48 }

// Reset restores h to SHA-384's initial state, whether or not h was
// previously used.
func (h *SHA384) Reset() {
	h.e.reset()
	h.e.state = sha384IV
	h.e.outputSize = 48
}

// FinalizeAndReset returns h's digest by finalizing a clone of h, then
// resets h to its initial state so it is immediately ready to hash a
// new message.
func (h *SHA384) FinalizeAndReset() []byte {
	clone := *h
	digest := clone.Finalize()
	h.Reset()
	return digest
}

// Sum384 computes the SHA-384 digest of data in one call.
func Sum384(data []byte) [48]byte {
	h := NewSHA384()
	h.Update(data)
	var out [48]byte
	copy(out[:], h.Finalize())
	return out
}
