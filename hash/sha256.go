package hash

var sha256IV = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var sha224IV = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

// SHA256 computes SHA-256 digests. Its zero value is not ready to use;
// call NewSHA256 or Reset before Update.
type SHA256 struct{ e engine32 }

// NewSHA256 returns a freshly initialized SHA-256 hasher.
func NewSHA256() *SHA256 {
	h := &SHA256{}
	h.Reset()
	return h
}

func (h *SHA256) Update(data []byte) { h.e.update(data) }
func (h *SHA256) Finalize() []byte   { return h.e.finalize() }
func (h *SHA256) BlockSize() int     { return engine32BlockSize }
func (h *SHA256) OutputSize() int    { return 32 }

// Reset restores h to SHA-256's initial state, whether or not h was
// previously used. This makes the zero value of SHA256 safe to Reset
// directly, which mac.HMAC's generic instantiation relies on.
func (h *SHA256) Reset() {
	h.e.reset()
	h.e.state = sha256IV
	h.e.outputSize = 32
}

// FinalizeAndReset returns h's digest by finalizing a clone of h, then
// resets h to its initial state so it is immediately ready to hash a
// new message.
func (h *SHA256) FinalizeAndReset() []byte {
	clone := *h
	digest := clone.Finalize()
	h.Reset()
	return digest
}

// Sum256 computes the SHA-256 digest of data in one call.
func Sum256(data []byte) [32]byte {
	h := NewSHA256()
	h.Update(data)
	var out [32]byte
	copy(out[:], h.Finalize())
	return out
}

// SHA224 computes SHA-224 digests. It shares SHA-256's compression
// function and differs only in its initial state and truncated output.
// Its zero value is not ready to use; call NewSHA224 or Reset first.
type SHA224 struct{ e engine32 }

// NewSHA224 returns a freshly initialized SHA-224 hasher.
func NewSHA224() *SHA224 {
	h := &SHA224{}
	h.Reset()
	return h
}

func (h *SHA224) Update(data []byte) { h.e.update(data) }
func (h *SHA224) Finalize() []byte   { return h.e.finalize() }
func (h *SHA224) BlockSize() int     { return engine32BlockSize }
func (h *SHA224) OutputSize() int    { return 28 }

// Reset restores h to SHA-224's initial state, whether or not h was
// previously used.
func (h *SHA224) Reset() {
	h.e.reset()
	h.e.state = sha224IV
	h.e.outputSize = 28
}

// FinalizeAndReset returns h's digest by finalizing a clone of h, then
// resets h to its initial state so it is immediately ready to hash a
// new message.
func (h *SHA224) FinalizeAndReset() []byte {
	clone := *h
	digest := clone.Finalize()
	h.Reset()
	return digest
}

// Sum224 computes the SHA-224 digest of data in one call.
func Sum224(data []byte) [28]byte {
	h := NewSHA224()
	h.Update(data)
	var out [28]byte
	copy(out[:], h.Finalize())
	return out
}
