package hash

import "github.com/wovocrypt/go-symc/internal/secure"

// engine64BlockSize is the compression block size shared by SHA-384 and
// SHA-512.
const engine64BlockSize = 128

// k512 is the round-constant table shared by SHA-384 and SHA-512
// (FIPS 180-4 §4.2.3).
var k512 = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// engine64 is the Merkle-Damgård engine shared by SHA-384 and SHA-512.
// Like engine32, it carries no initial-value field: SHA384/SHA512's
// Reset methods set state and outputSize directly, so the zero value
// of SHA384{}/SHA512{} becomes a valid hasher through Reset alone.
type engine64 struct {
	state      [8]uint64
	length     uint64
	buffer     [engine64BlockSize]byte
	outputSize int
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

func (e *engine64) processBlock(block *[engine64BlockSize]byte) {
	var w [80]uint64
	for t := 0; t < 16; t++ {
		var v uint64
		for i := 0; i < 8; i++ {
			v = v<<8 | uint64(block[t*8+i])
		}
		w[t] = v
	}
	for t := 16; t < 80; t++ {
		s0 := rotr64(w[t-15], 1) ^ rotr64(w[t-15], 8) ^ (w[t-15] >> 7)
		s1 := rotr64(w[t-2], 19) ^ rotr64(w[t-2], 61) ^ (w[t-2] >> 6)
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d := e.state[0], e.state[1], e.state[2], e.state[3]
	f, g, h := e.state[5], e.state[6], e.state[7]
	eReg := e.state[4]

	for t := 0; t < 80; t++ {
		ch := (eReg & f) ^ (^eReg & g)
		maj := (a & b) ^ (a & c) ^ (b & c)
		s0 := rotr64(a, 28) ^ rotr64(a, 34) ^ rotr64(a, 39)
		s1 := rotr64(eReg, 14) ^ rotr64(eReg, 18) ^ rotr64(eReg, 41)

		t1 := h + s1 + ch + k512[t] + w[t]
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

func (e *engine64) update(input []byte) {
	bufferPos := int(e.length % engine64BlockSize)
	e.length += uint64(len(input))

	if bufferPos > 0 {
		remaining := engine64BlockSize - bufferPos
		if remaining > len(input) {
			copy(e.buffer[bufferPos:bufferPos+len(input)], input)
			return
		}
		copy(e.buffer[bufferPos:], input[:remaining])
		e.processBlock(&e.buffer)
		input = input[remaining:]
	}

	for len(input) >= engine64BlockSize {
		var block [engine64BlockSize]byte
		copy(block[:], input[:engine64BlockSize])
		e.processBlock(&block)
		input = input[engine64BlockSize:]
	}

	if len(input) > 0 {
		copy(e.buffer[:len(input)], input)
	}
}

// finalize pads with the 0x80 byte and a 16-byte big-endian bit-length
// footer (SHA-384/512 use a 128-bit length field, unlike the 64-bit
// field engine32 uses, since their block size is twice as wide).
func (e *engine64) finalize() []byte {
	bufferPos := int(e.length % engine64BlockSize)
	e.buffer[bufferPos] = 0x80

	if bufferPos+1 > engine64BlockSize-16 {
		for i := bufferPos + 1; i < engine64BlockSize; i++ {
			e.buffer[i] = 0
		}
		e.processBlock(&e.buffer)
		e.buffer = [engine64BlockSize]byte{}
	} else {
		for i := bufferPos + 1; i < engine64BlockSize-16; i++ {
			e.buffer[i] = 0
		}
	}

	// The byte count is a uint64, so the 128-bit bit length is
	// length<<3: its high 64 bits are the top three bits of length and
	// its low 64 bits are length*8 modulo 2^64.
	totalBits := e.length * 8
	totalBitsHigh := e.length >> 61
	for i := 0; i < 8; i++ {
		e.buffer[engine64BlockSize-9-i] = byte(totalBitsHigh >> (8 * i))
	}
	for i := 0; i < 8; i++ {
		e.buffer[engine64BlockSize-1-i] = byte(totalBits >> (8 * i))
	}
	e.processBlock(&e.buffer)

	var full [64]byte
	for i, word := range e.state {
		for j := 0; j < 8; j++ {
			full[i*8+j] = byte(word >> (56 - 8*j))
		}
	}

	out := make([]byte, e.outputSize)
	copy(out, full[:e.outputSize])
	return out
}

// reset clears the buffering/length state shared by both SHA-384 and
// SHA-512. Restoring the initial hash state itself is the caller's
// job, since that value differs between the two algorithms.
func (e *engine64) reset() {
	secure.Zero(e.buffer[:])
	e.length = 0
	e.buffer = [engine64BlockSize]byte{}
}
