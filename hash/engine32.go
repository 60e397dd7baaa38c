package hash

import "github.com/wovocrypt/go-symc/internal/secure"

// engine32BlockSize is the compression block size shared by SHA-224 and
// SHA-256.
const engine32BlockSize = 64

// k256 is the round-constant table shared by SHA-224 and SHA-256
// (FIPS 180-4 §4.2.2).
var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1,
	0x923f82a4, 0xab1c5ed5, 0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174, 0xe49b69c1, 0xefbe4786,
	0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147,
	0x06ca6351, 0x14292967, 0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85, 0xa2bfe8a1, 0xa81a664b,
	0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a,
	0x5b9cca4f, 0x682e6ff3, 0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// engine32 is the Merkle-Damgård engine shared by SHA-224 and SHA-256:
// identical compression function, buffering, and finalize padding,
// differing only in the initial state and the digest truncation length.
// It carries no initial-value field of its own: SHA224/SHA256's Reset
// methods set state and outputSize directly, which keeps the zero
// value of engine32 meaningless on its own but lets SHA224{}/SHA256{}
// become valid hashers through Reset alone, with no constructor call
// required — the property mac.HMAC's generic instantiation depends on.
type engine32 struct {
	state      [8]uint32
	length     uint64
	buffer     [engine32BlockSize]byte
	outputSize int
}

func rotr32(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

func (e *engine32) processBlock(block *[engine32BlockSize]byte) {
	var w [64]uint32
	for t := 0; t < 16; t++ {
		w[t] = uint32(block[t*4])<<24 | uint32(block[t*4+1])<<16 | uint32(block[t*4+2])<<8 | uint32(block[t*4+3])
	}
	for t := 16; t < 64; t++ {
		s0 := rotr32(w[t-15], 7) ^ rotr32(w[t-15], 18) ^ (w[t-15] >> 3)
		s1 := rotr32(w[t-2], 17) ^ rotr32(w[t-2], 19) ^ (w[t-2] >> 10)
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d := e.state[0], e.state[1], e.state[2], e.state[3]
	f, g, h := e.state[5], e.state[6], e.state[7]
	eReg := e.state[4]

	for t := 0; t < 64; t++ {
		ch := (eReg & f) ^ (^eReg & g)
		maj := (a & b) ^ (a & c) ^ (b & c)
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		s1 := rotr32(eReg, 6) ^ rotr32(eReg, 11) ^ rotr32(eReg, 25)

		t1 := h + s1 + ch + k256[t] + w[t]
		t2 := s0 + maj

		h = g
		g = f
		f = eReg
		eReg = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	e.state[0] += a
	e.state[1] += b
	e.state[2] += c
	e.state[3] += d
	e.state[4] += eReg
	e.state[5] += f
	e.state[6] += g
	e.state[7] += h
}

func (e *engine32) update(input []byte) {
	bufferPos := int(e.length % engine32BlockSize)
	e.length += uint64(len(input))

	if bufferPos > 0 {
		remaining := engine32BlockSize - bufferPos
		if remaining > len(input) {
			copy(e.buffer[bufferPos:bufferPos+len(input)], input)
			return
		}
		copy(e.buffer[bufferPos:], input[:remaining])
		e.processBlock(&e.buffer)
		input = input[remaining:]
	}

	for len(input) >= engine32BlockSize {
		var block [engine32BlockSize]byte
		copy(block[:], input[:engine32BlockSize])
		e.processBlock(&block)
		input = input[engine32BlockSize:]
	}

	if len(input) > 0 {
		copy(e.buffer[:len(input)], input)
	}
}

func (e *engine32) finalize() []byte {
	bufferPos := int(e.length % engine32BlockSize)
	e.buffer[bufferPos] = 0x80

	if bufferPos+1 > engine32BlockSize-8 {
		for i := bufferPos + 1; i < engine32BlockSize; i++ {
			e.buffer[i] = 0
		}
		e.processBlock(&e.buffer)
		e.buffer = [engine32BlockSize]byte{}
	} else {
		for i := bufferPos + 1; i < engine32BlockSize-8; i++ {
			e.buffer[i] = 0
		}
	}

	totalBits := e.length * 8
	for i := 0; i < 8; i++ {
		e.buffer[engine32BlockSize-1-i] = byte(totalBits >> (8 * i))
	}
	e.processBlock(&e.buffer)

	var full [32]byte
	for i, word := range e.state {
		full[i*4] = byte(word >> 24)
		full[i*4+1] = byte(word >> 16)
		full[i*4+2] = byte(word >> 8)
		full[i*4+3] = byte(word)
	}

	out := make([]byte, e.outputSize)
	copy(out, full[:e.outputSize])
	return out
}

// reset clears the buffering/length state shared by both SHA-224 and
// SHA-256. Restoring the initial hash state itself is the caller's
// job, since that value differs between the two algorithms.
func (e *engine32) reset() {
	secure.Zero(e.buffer[:])
	e.length = 0
	e.buffer = [engine32BlockSize]byte{}
}
