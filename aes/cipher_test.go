package aes

import "testing"

// TestKeyExpansionFIPS197AppendixA3 checks the AES-256 key schedule
// against the official FIPS-197 Appendix A.3 vector.
func TestKeyExpansionFIPS197AppendixA3(t *testing.T) {
	key := []byte{
		0x60, 0x3d, 0xeb, 0x10, 0x15, 0xca, 0x71, 0xbe, 0x2b, 0x73, 0xae, 0xf0,
		0x85, 0x7d, 0x77, 0x81, 0x1f, 0x35, 0x2c, 0x07, 0x3b, 0x61, 0x08, 0xd7,
		0x2d, 0x98, 0x10, 0xa3, 0x09, 0x14, 0xdf, 0xf4,
	}
	want := [][4]byte{
		{0x60, 0x3d, 0xeb, 0x10}, {0x15, 0xca, 0x71, 0xbe}, {0x2b, 0x73, 0xae, 0xf0}, {0x85, 0x7d, 0x77, 0x81},
		{0x1f, 0x35, 0x2c, 0x07}, {0x3b, 0x61, 0x08, 0xd7}, {0x2d, 0x98, 0x10, 0xa3}, {0x09, 0x14, 0xdf, 0xf4},
		{0x9b, 0xa3, 0x54, 0x11}, {0x8e, 0x69, 0x25, 0xaf}, {0xa5, 0x1a, 0x8b, 0x5f}, {0x20, 0x67, 0xfc, 0xde},
		{0xa8, 0xb0, 0x9c, 0x1a}, {0x93, 0xd1, 0x94, 0xcd}, {0xbe, 0x49, 0x84, 0x6e}, {0xb7, 0x5d, 0x5b, 0x9a},
		{0xd5, 0x9a, 0xec, 0xb8}, {0x5b, 0xf3, 0xc9, 0x17}, {0xfe, 0xe9, 0x42, 0x48}, {0xde, 0x8e, 0xbe, 0x96},
		{0xb5, 0xa9, 0x32, 0x8a}, {0x26, 0x78, 0xa6, 0x47}, {0x98, 0x31, 0x22, 0x29}, {0x2f, 0x6c, 0x79, 0xb3},
		{0x81, 0x2c, 0x81, 0xad}, {0xda, 0xdf, 0x48, 0xba}, {0x24, 0x36, 0x0a, 0xf2}, {0xfa, 0xb8, 0xb4, 0x64},
		{0x98, 0xc5, 0xbf, 0xc9}, {0xbe, 0xbd, 0x19, 0x8e}, {0x26, 0x8c, 0x3b, 0xa7}, {0x09, 0xe0, 0x42, 0x14},
		{0x68, 0x00, 0x7b, 0xac}, {0xb2, 0xdf, 0x33, 0x16}, {0x96, 0xe9, 0x39, 0xe4}, {0x6c, 0x51, 0x8d, 0x80},
		{0xc8, 0x14, 0xe2, 0x04}, {0x76, 0xa9, 0xfb, 0x8a}, {0x50, 0x25, 0xc0, 0x2d}, {0x59, 0xc5, 0x82, 0x39},
		{0xde, 0x13, 0x69, 0x67}, {0x6c, 0xcc, 0x5a, 0x71}, {0xfa, 0x25, 0x63, 0x95}, {0x96, 0x74, 0xee, 0x15},
		{0x58, 0x86, 0xca, 0x5d}, {0x2e, 0x2f, 0x31, 0xd7}, {0x7e, 0x0a, 0xf1, 0xfa}, {0x27, 0xcf, 0x73, 0xc3},
		{0x74, 0x9c, 0x47, 0xab}, {0x18, 0x50, 0x1d, 0xda}, {0xe2, 0x75, 0x7e, 0x4f}, {0x74, 0x01, 0x90, 0x5a},
		{0xca, 0xfa, 0xaa, 0xe3}, {0xe4, 0xd5, 0x9b, 0x34}, {0x9a, 0xdf, 0x6a, 0xce}, {0xbd, 0x10, 0x19, 0x0d},
		{0xfe, 0x48, 0x90, 0xd1}, {0xe6, 0x18, 0x8d, 0x0b}, {0x04, 0x6d, 0xf3, 0x44}, {0x70, 0x6c, 0x63, 0x1e},
	}

	got := expandKey(key, 8, 14)
	if len(got) != len(want) {
		t.Fatalf("expanded key has %d words, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("word %d = %x, want %x", i, got[i], want[i])
		}
	}
}

// TestAES256NISTSP80038AF15 checks single-block encrypt/decrypt against
// NIST SP 800-38A Appendix F.1.5.
func TestAES256NISTSP80038AF15(t *testing.T) {
	key := []byte{
		0x60, 0x3d, 0xeb, 0x10, 0x15, 0xca, 0x71, 0xbe,
		0x2b, 0x73, 0xae, 0xf0, 0x85, 0x7d, 0x77, 0x81,
		0x1f, 0x35, 0x2c, 0x07, 0x3b, 0x61, 0x08, 0xd7,
		0x2d, 0x98, 0x10, 0xa3, 0x09, 0x14, 0xdf, 0xf4,
	}
	plaintext := Block{
		0x6b, 0xc1, 0xbe, 0xe2, 0x2e, 0x40, 0x9f, 0x96,
		0xe9, 0x3d, 0x7e, 0x11, 0x73, 0x93, 0x17, 0x2a,
	}
	wantCiphertext := Block{
		0xf3, 0xee, 0xd1, 0xbd, 0xb5, 0xd2, 0xa0, 0x3c,
		0x06, 0x4b, 0x5a, 0x7e, 0x3d, 0xb1, 0x81, 0xf8,
	}

	cipher, err := New256(key)
	if err != nil {
		t.Fatalf("New256: %v", err)
	}

	block := plaintext
	cipher.EncryptBlock(&block)
	if block != wantCiphertext {
		t.Fatalf("EncryptBlock = %x, want %x", block, wantCiphertext)
	}

	cipher.DecryptBlock(&block)
	if block != plaintext {
		t.Fatalf("DecryptBlock did not restore plaintext: got %x", block)
	}
}

// TestAES128NISTSP80038AF11 checks single-block encrypt/decrypt against
// NIST SP 800-38A Appendix F.1.1.
func TestAES128NISTSP80038AF11(t *testing.T) {
	key := []byte{
		0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6,
		0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c,
	}
	plaintext := Block{
		0x6b, 0xc1, 0xbe, 0xe2, 0x2e, 0x40, 0x9f, 0x96,
		0xe9, 0x3d, 0x7e, 0x11, 0x73, 0x93, 0x17, 0x2a,
	}
	wantCiphertext := Block{
		0x3a, 0xd7, 0x7b, 0xb4, 0x0d, 0x7a, 0x36, 0x60,
		0xa8, 0x9e, 0xca, 0xf3, 0x24, 0x66, 0xef, 0x97,
	}

	cipher, err := New128(key)
	if err != nil {
		t.Fatalf("New128: %v", err)
	}

	block := plaintext
	cipher.EncryptBlock(&block)
	if block != wantCiphertext {
		t.Fatalf("EncryptBlock = %x, want %x", block, wantCiphertext)
	}

	cipher.DecryptBlock(&block)
	if block != plaintext {
		t.Fatalf("DecryptBlock did not restore plaintext: got %x", block)
	}
}

// TestAES192NISTSP80038AF13 checks single-block encrypt/decrypt against
// NIST SP 800-38A Appendix F.1.3.
func TestAES192NISTSP80038AF13(t *testing.T) {
	key := []byte{
		0x8e, 0x73, 0xb0, 0xf7, 0xda, 0x0e, 0x64, 0x52,
		0xc8, 0x10, 0xf3, 0x2b, 0x80, 0x90, 0x79, 0xe5,
		0x62, 0xf8, 0xea, 0xd2, 0x52, 0x2c, 0x6b, 0x7b,
	}
	plaintext := Block{
		0x6b, 0xc1, 0xbe, 0xe2, 0x2e, 0x40, 0x9f, 0x96,
		0xe9, 0x3d, 0x7e, 0x11, 0x73, 0x93, 0x17, 0x2a,
	}
	wantCiphertext := Block{
		0xbd, 0x33, 0x4f, 0x1d, 0x6e, 0x45, 0xf2, 0x5f,
		0xf7, 0x12, 0xa2, 0x14, 0x57, 0x1f, 0xa5, 0xcc,
	}

	cipher, err := New192(key)
	if err != nil {
		t.Fatalf("New192: %v", err)
	}

	block := plaintext
	cipher.EncryptBlock(&block)
	if block != wantCiphertext {
		t.Fatalf("EncryptBlock = %x, want %x", block, wantCiphertext)
	}

	cipher.DecryptBlock(&block)
	if block != plaintext {
		t.Fatalf("DecryptBlock did not restore plaintext: got %x", block)
	}
}

func TestNewAnyDispatchesByKeyLength(t *testing.T) {
	cases := []struct {
		keyLen int
	}{{16}, {24}, {32}}

	for _, c := range cases {
		key := make([]byte, c.keyLen)
		cipher, err := NewAny(key)
		if err != nil {
			t.Fatalf("NewAny(%d bytes): %v", c.keyLen, err)
		}
		block := Block{}
		cipher.EncryptBlock(&block)
		cipher.DecryptBlock(&block)
		if block != (Block{}) {
			t.Fatalf("round trip through NewAny(%d) did not restore zero block", c.keyLen)
		}
	}

	if _, err := NewAny(make([]byte, 20)); err == nil {
		t.Fatal("expected error for invalid key length")
	}
}

func TestKeyZero(t *testing.T) {
	k := NewKey256([32]byte{1, 2, 3})
	k.Zero()
	if k != (Key256{}) {
		t.Fatal("Zero did not clear key material")
	}
}
