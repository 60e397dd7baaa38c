package mode

import (
	"encoding/binary"

	symc "github.com/wovocrypt/go-symc"
	"github.com/wovocrypt/go-symc/aes"
	"github.com/wovocrypt/go-symc/internal/secure"
)

// NonceSize is the width of a CTR nonce in bytes; the remaining 4 bytes
// of the 16-byte counter block are a big-endian wrapping counter.
const NonceSize = 12

// ctrCore holds the state shared by CTREncryptor and CTRDecryptor:
// keystream generation is identical for both directions, since CTR only
// ever XORs data against a keystream block.
type ctrCore[C BlockCipher] struct {
	cipher       C
	nonceCounter aes.Block
	buffer       aes.Block
	bufferLen    int
}

func newCTRCore[C BlockCipher](cipher C, nonce [NonceSize]byte) ctrCore[C] {
	var c ctrCore[C]
	c.cipher = cipher
	copy(c.nonceCounter[:NonceSize], nonce[:])
	return c
}

func (c *ctrCore[C]) counter() uint32 {
	return binary.BigEndian.Uint32(c.nonceCounter[NonceSize:])
}

func (c *ctrCore[C]) setCounter(v uint32) {
	binary.BigEndian.PutUint32(c.nonceCounter[NonceSize:], v)
}

func (c *ctrCore[C]) keystreamBlock() aes.Block {
	block := c.nonceCounter
	c.cipher.EncryptBlock(&block)
	return block
}

func (c *ctrCore[C]) process(input, output []byte) (int, error) {
	written := 0

	if len(output) < (c.bufferLen+len(input))/blockSize*blockSize {
		return 0, symc.NewError("mode.ctrCore.process", symc.BufferTooSmall)
	}

	remaining := blockSize - c.bufferLen
	if remaining > len(input) {
		copy(c.buffer[c.bufferLen:c.bufferLen+len(input)], input)
		c.bufferLen += len(input)
		return 0, nil
	}

	copy(c.buffer[c.bufferLen:], input[:remaining])
	ks := c.keystreamBlock()
	for i := 0; i < blockSize; i++ {
		output[i] = c.buffer[i] ^ ks[i]
	}
	c.setCounter(c.counter() + 1)
	written += blockSize
	c.bufferLen = 0

	rest := input[remaining:]
	for len(rest) >= blockSize {
		ks := c.keystreamBlock()
		for i := 0; i < blockSize; i++ {
			output[written+i] = rest[i] ^ ks[i]
		}
		c.setCounter(c.counter() + 1)
		written += blockSize
		rest = rest[blockSize:]
	}

	if len(rest) > 0 {
		copy(c.buffer[:len(rest)], rest)
		c.bufferLen = len(rest)
	}

	return written, nil
}

func (c *ctrCore[C]) finalize(output []byte) (int, error) {
	if len(output) < c.bufferLen {
		return 0, symc.NewError("mode.ctrCore.finalize", symc.BufferTooSmall)
	}
	if c.bufferLen == 0 {
		return 0, nil
	}

	ks := c.keystreamBlock()
	for i := 0; i < c.bufferLen; i++ {
		output[i] = c.buffer[i] ^ ks[i]
	}
	n := c.bufferLen
	c.bufferLen = 0
	secure.Zero(c.buffer[:])
	secure.Zero(ks[:])
	return n, nil
}

func (c *ctrCore[C]) zero() {
	secure.Zero(c.buffer[:])
	secure.Zero(c.nonceCounter[:])
	c.bufferLen = 0
}

func (c *ctrCore[C]) reset(nonce [NonceSize]byte) {
	c.zero()
	copy(c.nonceCounter[:NonceSize], nonce[:])
	c.setCounter(0)
}

// CTREncryptor is a streaming CTR encryption engine over cipher C.
// Encryption and decryption are the same XOR-with-keystream operation,
// so CTREncryptor and CTRDecryptor are thin, distinctly-named wrappers
// around the same core to keep the public API symmetric with CBC's.
type CTREncryptor[C BlockCipher] struct{ core ctrCore[C] }

// NewCTREncryptor starts a CTR encryption stream with the given cipher
// and 12-byte nonce. The counter starts at zero.
func NewCTREncryptor[C BlockCipher](cipher C, nonce [NonceSize]byte) *CTREncryptor[C] {
	return &CTREncryptor[C]{core: newCTRCore(cipher, nonce)}
}

// Update XORs input against the keystream, buffering any trailing
// partial block.
func (e *CTREncryptor[C]) Update(input, output []byte) (int, error) {
	return e.core.process(input, output)
}

// Finalize XORs any buffered residue against one more keystream block.
// Unlike Update, this does not advance the counter, since no further
// block will be requested from this stream.
func (e *CTREncryptor[C]) Finalize(output []byte) (int, error) {
	return e.core.finalize(output)
}

// Zero scrubs e's buffered keystream residue and nonce/counter state.
func (e *CTREncryptor[C]) Zero() { e.core.zero() }

// Reset rekeys the stream with a new nonce and a counter reset to zero.
func (e *CTREncryptor[C]) Reset(nonce [NonceSize]byte) {
	e.core.reset(nonce)
}

// CTRDecryptor is a streaming CTR decryption engine over cipher C.
type CTRDecryptor[C BlockCipher] struct{ core ctrCore[C] }

// NewCTRDecryptor starts a CTR decryption stream with the given cipher
// and 12-byte nonce. The counter starts at zero.
func NewCTRDecryptor[C BlockCipher](cipher C, nonce [NonceSize]byte) *CTRDecryptor[C] {
	return &CTRDecryptor[C]{core: newCTRCore(cipher, nonce)}
}

// Update XORs input against the keystream, buffering any trailing
// partial block.
func (d *CTRDecryptor[C]) Update(input, output []byte) (int, error) {
	return d.core.process(input, output)
}

// Finalize XORs any buffered residue against one more keystream block.
func (d *CTRDecryptor[C]) Finalize(output []byte) (int, error) {
	return d.core.finalize(output)
}

// Zero scrubs d's buffered keystream residue and nonce/counter state.
func (d *CTRDecryptor[C]) Zero() { d.core.zero() }

// Reset rekeys the stream with a new nonce and a counter reset to zero.
func (d *CTRDecryptor[C]) Reset(nonce [NonceSize]byte) {
	d.core.reset(nonce)
}
