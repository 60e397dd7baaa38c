package mode

import (
	"github.com/wovocrypt/go-symc/aes"
	"github.com/wovocrypt/go-symc/internal/secure"
)

// EncryptCBC drives a CBCEncryptor through the whole of plaintext in one
// call and returns the ciphertext length written to output. It is the
// one-shot convenience the original design's default SymcEncryptor
// trait methods provide over the streaming Update/Finalize API.
func EncryptCBC[C BlockCipher, P Padding](cipher C, iv aes.Block, plaintext, output []byte) (int, error) {
	enc := NewCBCEncryptor[C, P](cipher, iv)
	n, err := enc.Update(plaintext, output)
	if err != nil {
		return 0, err
	}
	m, err := enc.Finalize(output[n:])
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// DecryptCBC drives a CBCDecryptor through the whole of ciphertext in
// one call and returns the plaintext length written to output.
func DecryptCBC[C BlockCipher, P Padding](cipher C, iv aes.Block, ciphertext, output []byte) (int, error) {
	dec := NewCBCDecryptor[C, P](cipher, iv)
	n, err := dec.Update(ciphertext, output)
	if err != nil {
		return 0, err
	}
	m, err := dec.Finalize(output[n:])
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// EncryptCTR drives a CTREncryptor through the whole of plaintext in one
// call.
func EncryptCTR[C BlockCipher](cipher C, nonce [NonceSize]byte, plaintext, output []byte) (int, error) {
	enc := NewCTREncryptor[C](cipher, nonce)
	n, err := enc.Update(plaintext, output)
	if err != nil {
		return 0, err
	}
	m, err := enc.Finalize(output[n:])
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// DecryptCTR drives a CTRDecryptor through the whole of ciphertext in
// one call.
func DecryptCTR[C BlockCipher](cipher C, nonce [NonceSize]byte, ciphertext, output []byte) (int, error) {
	dec := NewCTRDecryptor[C](cipher, nonce)
	n, err := dec.Update(ciphertext, output)
	if err != nil {
		return 0, err
	}
	m, err := dec.Finalize(output[n:])
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// Clone returns an independent copy of e, letting a caller peek at what
// Finalize would produce without consuming the live stream (see
// FinalizeAndReset).
func (e *CBCEncryptor[C, P]) Clone() *CBCEncryptor[C, P] {
	clone := *e
	return &clone
}

// FinalizeAndReset finalizes a clone of e, leaving e itself ready to
// keep streaming against the same IV chain position it was at before
// the call.
func (e *CBCEncryptor[C, P]) FinalizeAndReset(output []byte) (int, error) {
	clone := e.Clone()
	n, err := clone.Finalize(output)
	if err != nil {
		return 0, err
	}
	secure.Zero(e.buffer[:])
	e.bufferLen = 0
	return n, nil
}

// Clone returns an independent copy of d.
func (d *CBCDecryptor[C, P]) Clone() *CBCDecryptor[C, P] {
	clone := *d
	return &clone
}

// FinalizeAndReset finalizes a clone of d, leaving d ready for the
// caller to decide independently whether to keep streaming or reset.
func (d *CBCDecryptor[C, P]) FinalizeAndReset(output []byte) (int, error) {
	clone := d.Clone()
	n, err := clone.Finalize(output)
	if err != nil {
		return 0, err
	}
	secure.Zero(d.buffer[:])
	secure.Zero(d.held[:])
	d.heldValid = false
	d.bufferLen = 0
	return n, nil
}

// Clone returns an independent copy of e.
func (e *CTREncryptor[C]) Clone() *CTREncryptor[C] {
	clone := *e
	return &clone
}

// FinalizeAndReset finalizes a clone of e, then scrubs and discards e's
// own buffered residue. e's nonce and counter are left unchanged.
func (e *CTREncryptor[C]) FinalizeAndReset(output []byte) (int, error) {
	clone := e.Clone()
	n, err := clone.Finalize(output)
	if err != nil {
		return 0, err
	}
	secure.Zero(e.core.buffer[:])
	e.core.bufferLen = 0
	return n, nil
}

// Clone returns an independent copy of d.
func (d *CTRDecryptor[C]) Clone() *CTRDecryptor[C] {
	clone := *d
	return &clone
}

// FinalizeAndReset finalizes a clone of d, then scrubs and discards d's
// own buffered residue. d's nonce and counter are left unchanged.
func (d *CTRDecryptor[C]) FinalizeAndReset(output []byte) (int, error) {
	clone := d.Clone()
	n, err := clone.Finalize(output)
	if err != nil {
		return 0, err
	}
	secure.Zero(d.core.buffer[:])
	d.core.bufferLen = 0
	return n, nil
}
