// Package hash implements the SHA-224, SHA-256, SHA-384 and SHA-512
// Merkle-Damgård hash functions (FIPS 180-4) from scratch, with no
// dependency outside the Go standard library.
package hash

// Hasher is implemented by SHA224, SHA256, SHA384 and SHA512, each via
// a pointer receiver so the zero value (SHA256{}, not just *SHA256)
// becomes a usable hasher through Reset alone. That property is what
// lets mac.HMAC bind a hash type as a generic parameter instead of a
// constructor closure: mac.HMAC[H, PH] holds a bare H field and uses
// PH (constrained to *H implementing Hasher) to call its methods, so
// the compiler specializes HMAC[SHA256, *SHA256] the same way it
// specializes mode's CBCEncryptor[C, P] — no v-table, no heap
// allocation for the hasher itself.
type Hasher interface {
	// Update feeds more data into the running hash.
	Update(data []byte)

	// Finalize pads and compresses any buffered residue and returns the
	// digest. The hasher must not be used again without calling Reset.
	Finalize() []byte

	// Reset returns the hasher to its initial, freshly-constructed
	// state.
	Reset()

	// BlockSize returns the hash's internal compression block size in
	// bytes (64 for SHA-224/256, 128 for SHA-384/512). HMAC's key
	// processing needs this.
	BlockSize() int

	// OutputSize returns the digest length in bytes.
	OutputSize() int
}
