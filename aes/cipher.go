package aes

import (
	symc "github.com/wovocrypt/go-symc"
	"github.com/wovocrypt/go-symc/internal/secure"
)

// cipherCore runs the shared encrypt/decrypt round pipeline over an
// already-expanded key schedule. Cipher128/192/256 each hold one of
// these sized to their own number of rounds.
type cipherCore struct {
	rounds   int
	schedule [][4]byte
}

func newCore(key []byte, nk, nr int) cipherCore {
	return cipherCore{rounds: nr, schedule: expandKey(key, nk, nr)}
}

func (c *cipherCore) encryptBlock(block *Block) {
	addRoundKey(block, roundKey(c.schedule, 0))

	for round := 1; round < c.rounds; round++ {
		subBytes(block)
		shiftRows(block)
		mixColumns(block)
		addRoundKey(block, roundKey(c.schedule, round))
	}

	subBytes(block)
	shiftRows(block)
	addRoundKey(block, roundKey(c.schedule, c.rounds))
}

func (c *cipherCore) decryptBlock(block *Block) {
	addRoundKey(block, roundKey(c.schedule, c.rounds))

	for round := c.rounds - 1; round >= 1; round-- {
		invShiftRows(block)
		invSubBytes(block)
		addRoundKey(block, roundKey(c.schedule, round))
		invMixColumns(block)
	}

	invShiftRows(block)
	invSubBytes(block)
	addRoundKey(block, roundKey(c.schedule, 0))
}

func (c *cipherCore) zero() {
	for i := range c.schedule {
		secure.Zero(c.schedule[i][:])
	}
}

// Cipher128 is AES with a 128-bit key (Nk=4, 10 rounds).
type Cipher128 struct{ core cipherCore }

// Cipher192 is AES with a 192-bit key (Nk=6, 12 rounds).
type Cipher192 struct{ core cipherCore }

// Cipher256 is AES with a 256-bit key (Nk=8, 14 rounds).
type Cipher256 struct{ core cipherCore }

// New128 builds an AES-128 cipher from a 16-byte key.
func New128(key []byte) (*Cipher128, error) {
	if len(key) != 16 {
		return nil, symc.NewError("aes.New128", symc.InvalidLength)
	}
	return &Cipher128{core: newCore(key, 4, 10)}, nil
}

// New192 builds an AES-192 cipher from a 24-byte key.
func New192(key []byte) (*Cipher192, error) {
	if len(key) != 24 {
		return nil, symc.NewError("aes.New192", symc.InvalidLength)
	}
	return &Cipher192{core: newCore(key, 6, 12)}, nil
}

// New256 builds an AES-256 cipher from a 32-byte key.
func New256(key []byte) (*Cipher256, error) {
	if len(key) != 32 {
		return nil, symc.NewError("aes.New256", symc.InvalidLength)
	}
	return &Cipher256{core: newCore(key, 8, 14)}, nil
}

// EncryptBlock encrypts block in place.
func (c *Cipher128) EncryptBlock(block *Block) { c.core.encryptBlock(block) }

// DecryptBlock decrypts block in place.
func (c *Cipher128) DecryptBlock(block *Block) { c.core.decryptBlock(block) }

// Zero scrubs the expanded key schedule.
func (c *Cipher128) Zero() { c.core.zero() }

// EncryptBlock encrypts block in place.
func (c *Cipher192) EncryptBlock(block *Block) { c.core.encryptBlock(block) }

// DecryptBlock decrypts block in place.
func (c *Cipher192) DecryptBlock(block *Block) { c.core.decryptBlock(block) }

// Zero scrubs the expanded key schedule.
func (c *Cipher192) Zero() { c.core.zero() }

// EncryptBlock encrypts block in place.
func (c *Cipher256) EncryptBlock(block *Block) { c.core.encryptBlock(block) }

// DecryptBlock decrypts block in place.
func (c *Cipher256) DecryptBlock(block *Block) { c.core.decryptBlock(block) }

// Zero scrubs the expanded key schedule.
func (c *Cipher256) Zero() { c.core.zero() }

// BlockCipher is satisfied by every Cipher128/192/256, matching the
// shape mode.BlockCipher expects.
type BlockCipher interface {
	EncryptBlock(*Block)
	DecryptBlock(*Block)
	Zero()
}

// NewAny builds the AES cipher matching key's length (16, 24 or 32
// bytes), dispatching the way crypto/aes.NewCipher does.
func NewAny(key []byte) (BlockCipher, error) {
	switch len(key) {
	case 16:
		return New128(key)
	case 24:
		return New192(key)
	case 32:
		return New256(key)
	default:
		return nil, symc.NewError("aes.NewAny", symc.InvalidLength)
	}
}
