package mode

import (
	symc "github.com/wovocrypt/go-symc"
	"github.com/wovocrypt/go-symc/aes"
	"github.com/wovocrypt/go-symc/internal/secure"
)

// CBCEncryptor is a streaming CBC encryption engine over cipher C with
// padding policy P.
type CBCEncryptor[C BlockCipher, P Padding] struct {
	cipher    C
	iv        aes.Block
	buffer    aes.Block
	bufferLen int
}

// NewCBCEncryptor starts a CBC encryption stream with the given cipher
// and initialization vector.
func NewCBCEncryptor[C BlockCipher, P Padding](cipher C, iv aes.Block) *CBCEncryptor[C, P] {
	return &CBCEncryptor[C, P]{cipher: cipher, iv: iv}
}

// Update encrypts as many full blocks as input completes, buffering any
// trailing partial block for a later Update or Finalize call. It
// returns the number of bytes written to output.
func (e *CBCEncryptor[C, P]) Update(input, output []byte) (int, error) {
	written := 0

	if len(output) < (e.bufferLen+len(input))/blockSize*blockSize {
		return 0, symc.NewError("mode.CBCEncryptor.Update", symc.BufferTooSmall)
	}

	remaining := blockSize - e.bufferLen
	if remaining > len(input) {
		copy(e.buffer[e.bufferLen:e.bufferLen+len(input)], input)
		e.bufferLen += len(input)
		return 0, nil
	}

	copy(e.buffer[e.bufferLen:], input[:remaining])
	for i := range e.buffer {
		e.buffer[i] ^= e.iv[i]
	}
	e.cipher.EncryptBlock(&e.buffer)
	written += blockSize
	copy(output[:written], e.buffer[:])
	e.bufferLen = 0

	rest := input[remaining:]
	for len(rest) >= blockSize {
		copy(e.buffer[:], rest[:blockSize])
		for i := range e.buffer {
			e.buffer[i] ^= output[written-blockSize+i]
		}
		e.cipher.EncryptBlock(&e.buffer)
		written += blockSize
		copy(output[written-blockSize:written], e.buffer[:])
		rest = rest[blockSize:]
	}

	if len(rest) > 0 {
		copy(e.buffer[:len(rest)], rest)
		e.bufferLen = len(rest)
	}
	copy(e.iv[:], output[written-blockSize:written])

	return written, nil
}

// Finalize pads the buffered residue and encrypts the resulting final
// block(s), returning the number of bytes written. For a PKCS#7 policy
// this is always exactly one block, including when the input happened
// to already be block-aligned (PKCS#7 always adds a full padding block
// rather than leaving the ciphertext ambiguous about whether trailing
// padding is present).
func (e *CBCEncryptor[C, P]) Finalize(output []byte) (int, error) {
	var p P
	var scratch [blockSize]byte

	n, err := p.Pad(e.buffer[:e.bufferLen], scratch[:], blockSize)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		e.bufferLen = 0
		secure.Zero(e.buffer[:])
		return 0, nil
	}
	if len(output) < n {
		secure.Zero(scratch[:])
		return 0, symc.NewError("mode.CBCEncryptor.Finalize", symc.BufferTooSmall)
	}

	var block aes.Block
	copy(block[:], scratch[:n])
	for i := range block {
		block[i] ^= e.iv[i]
	}
	e.cipher.EncryptBlock(&block)
	copy(output[:n], block[:])
	e.bufferLen = 0
	secure.Zero(e.buffer[:])
	secure.Zero(scratch[:])
	secure.Zero(block[:])

	return n, nil
}

// Zero scrubs e's buffered plaintext residue and chaining IV. Call it
// when abandoning a stream without finalizing it.
func (e *CBCEncryptor[C, P]) Zero() {
	secure.Zero(e.buffer[:])
	secure.Zero(e.iv[:])
	e.bufferLen = 0
}

// Reset rekeys the stream with a new IV, discarding any buffered
// residue.
func (e *CBCEncryptor[C, P]) Reset(iv aes.Block) {
	e.Zero()
	e.iv = iv
}

// CBCDecryptor is a streaming CBC decryption engine. It always holds
// back the most recently completed ciphertext block so that Finalize
// can validate and strip padding from the true last block rather than
// guessing which block is last mid-stream.
type CBCDecryptor[C BlockCipher, P Padding] struct {
	cipher    C
	ivForHeld aes.Block
	held      aes.Block
	heldValid bool
	buffer    aes.Block
	bufferLen int
}

// NewCBCDecryptor starts a CBC decryption stream with the given cipher
// and initialization vector.
func NewCBCDecryptor[C BlockCipher, P Padding](cipher C, iv aes.Block) *CBCDecryptor[C, P] {
	return &CBCDecryptor[C, P]{cipher: cipher, ivForHeld: iv}
}

// Update decrypts as many full blocks as it can without yet touching
// the final ciphertext block, which Finalize needs intact to unpad.
func (d *CBCDecryptor[C, P]) Update(input, output []byte) (int, error) {
	newFullBlocks := (d.bufferLen + len(input)) / blockSize
	writes := newFullBlocks
	if !d.heldValid && writes > 0 {
		writes--
	}
	if len(output) < writes*blockSize {
		return 0, symc.NewError("mode.CBCDecryptor.Update", symc.BufferTooSmall)
	}

	written := 0
	rest := input

	consume := func(chunk []byte) {
		copy(d.buffer[d.bufferLen:], chunk)
		d.bufferLen += len(chunk)
		if d.bufferLen < blockSize {
			return
		}

		if d.heldValid {
			plain := d.held
			d.cipher.DecryptBlock(&plain)
			for i := range plain {
				plain[i] ^= d.ivForHeld[i]
			}
			copy(output[written:written+blockSize], plain[:])
			written += blockSize
			d.ivForHeld = d.held
		}
		d.held = d.buffer
		d.heldValid = true
		d.bufferLen = 0
	}

	for len(rest) > 0 {
		remaining := blockSize - d.bufferLen
		if remaining > len(rest) {
			copy(d.buffer[d.bufferLen:d.bufferLen+len(rest)], rest)
			d.bufferLen += len(rest)
			break
		}
		chunk := rest[:remaining]
		rest = rest[remaining:]
		consume(chunk)
	}

	return written, nil
}

// Finalize decrypts the held-back final ciphertext block, validates and
// strips its padding, and returns the length of the recovered
// plaintext.
func (d *CBCDecryptor[C, P]) Finalize(output []byte) (int, error) {
	if d.bufferLen != 0 {
		secure.Zero(d.buffer[:])
		d.bufferLen = 0
		return 0, symc.NewError("mode.CBCDecryptor.Finalize", symc.InvalidPadding)
	}
	if !d.heldValid {
		return 0, symc.NewError("mode.CBCDecryptor.Finalize", symc.InvalidPadding)
	}

	plain := d.held
	d.cipher.DecryptBlock(&plain)
	for i := range plain {
		plain[i] ^= d.ivForHeld[i]
	}
	d.heldValid = false
	secure.Zero(d.held[:])

	var p P
	n, err := p.Unpad(plain[:], blockSize)
	if err != nil {
		secure.Zero(plain[:])
		return 0, err
	}
	if len(output) < n {
		secure.Zero(plain[:])
		return 0, symc.NewError("mode.CBCDecryptor.Finalize", symc.BufferTooSmall)
	}

	copy(output[:n], plain[:n])
	secure.Zero(plain[:])
	return n, nil
}

// Zero scrubs d's buffered ciphertext residue and held-back block. The
// chaining IV fields hold ciphertext-derived values rather than secret
// material, but are cleared alongside them for a clean release.
func (d *CBCDecryptor[C, P]) Zero() {
	secure.Zero(d.buffer[:])
	secure.Zero(d.held[:])
	secure.Zero(d.ivForHeld[:])
	d.heldValid = false
	d.bufferLen = 0
}

// Reset rekeys the stream with a new IV, discarding any buffered or
// held-back state.
func (d *CBCDecryptor[C, P]) Reset(iv aes.Block) {
	d.Zero()
	d.ivForHeld = iv
}
