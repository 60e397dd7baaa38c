package hash

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

var sha256GoldData = []struct {
	message  string
	expected string
}{
	{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{"a", "ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb"},
	{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{"message digest", "f7846f55cf23e14eebeab5b4e1550cad5b509e3348fbc4efa3a1413d393cb650"},
	{"abcdefghijklmnopqrstuvwxyz", "71c480df93d6ae2f1efad1447c66c9525e316218cf51fc8d9ed832f2daf18b73"},
	{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "db4bfcbd4da0cd85a60c3c37d3fbd8805c77f15fc6b1fdfe614ee0a7c8fdb4c0"},
}

func TestSHA256GoldData(t *testing.T) {
	for _, d := range sha256GoldData {
		got := Sum256([]byte(d.message))
		want, err := hex.DecodeString(d.expected)
		if err != nil {
			t.Fatalf("bad gold hex: %v", err)
		}
		if !bytes.Equal(got[:], want) {
			t.Fatalf("SHA256(%q) = %x, want %s", d.message, got, d.expected[:64])
		}
	}
}

func TestSHA256MillionA(t *testing.T) {
	message := bytes.Repeat([]byte{'a'}, 1000000)
	got := Sum256(message)
	want, _ := hex.DecodeString("cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("SHA256(1M 'a') = %x, want %x", got, want)
	}
}

func TestSHA256MultiUpdate(t *testing.T) {
	h := NewSHA256()
	h.Update([]byte("a"))
	h.Update([]byte("b"))
	h.Update([]byte("c"))
	got := h.Finalize()
	want, _ := hex.DecodeString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	if !bytes.Equal(got, want) {
		t.Fatalf("multi-update SHA256 = %x, want %x", got, want)
	}
}

func TestSHA256MultipleBlocks(t *testing.T) {
	message := bytes.Repeat([]byte{'x'}, 200)
	oneShot := Sum256(message)

	h := NewSHA256()
	h.Update(message[:64])
	h.Update(message[64:128])
	h.Update(message[128:])
	streamed := h.Finalize()

	if !bytes.Equal(oneShot[:], streamed) {
		t.Fatalf("streamed SHA256 = %x, want %x", streamed, oneShot)
	}
}

func TestSHA256ResetFunctionality(t *testing.T) {
	h := NewSHA256()
	h.Update([]byte("secret"))
	h.Reset()

	fresh := NewSHA256()
	if h.e.length != fresh.e.length || h.e.state != fresh.e.state {
		t.Fatalf("Reset did not restore initial state")
	}
}

func TestSHA256FinalizeAndReset(t *testing.T) {
	h := NewSHA256()
	h.Update([]byte("abc"))

	digest := h.FinalizeAndReset()
	want := Sum256([]byte("abc"))
	if !bytes.Equal(digest, want[:]) {
		t.Fatalf("FinalizeAndReset digest = %x, want %x", digest, want)
	}

	fresh := NewSHA256()
	if h.e.length != fresh.e.length || h.e.state != fresh.e.state {
		t.Fatalf("FinalizeAndReset did not reset h to initial state")
	}

	h.Update([]byte("xyz"))
	got := h.Finalize()
	wantNext := Sum256([]byte("xyz"))
	if !bytes.Equal(got, wantNext[:]) {
		t.Fatalf("hashing after FinalizeAndReset = %x, want %x", got, wantNext)
	}
}

func TestSHA256LengthTracking(t *testing.T) {
	h := NewSHA256()
	h.Update([]byte("abc"))
	if h.e.length != 3 {
		t.Fatalf("length = %d, want 3", h.e.length)
	}
	h.Update([]byte("def"))
	if h.e.length != 6 {
		t.Fatalf("length = %d, want 6", h.e.length)
	}
	h.Update(make([]byte, 100))
	if h.e.length != 106 {
		t.Fatalf("length = %d, want 106", h.e.length)
	}
}

func TestSHA256BlockSizeConstant(t *testing.T) {
	if NewSHA256().BlockSize() != 64 {
		t.Fatalf("BlockSize() != 64")
	}
}

// SHA-224 shares SHA-256's compression function, so its tests follow the
// same structure with different gold data and a shorter digest.
var sha224GoldData = []struct {
	message  string
	expected string
}{
	{"", "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f"},
	{"a", "abd37534c7d9a2efb9465de931cd7055ffdb8879563ae98078d6d6d5"},
	{"abc", "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
	{"message digest", "2cb21c83ae2f004de7e81c3c7019cbcb65b71ab656b22d6d0c39b8eb"},
	{"abcdefghijklmnopqrstuvwxyz", "45a5f72c39c5cff2522eb3429799e49e5f44b356ef926bcf390dccc2"},
	{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "bff72b4fcb7d75e5632900ac5f90d219e05e97a7bde72e740db393d9"},
}

func TestSHA224GoldData(t *testing.T) {
	for _, d := range sha224GoldData {
		got := Sum224([]byte(d.message))
		want, err := hex.DecodeString(d.expected)
		if err != nil {
			t.Fatalf("bad gold hex: %v", err)
		}
		if !bytes.Equal(got[:], want) {
			t.Fatalf("SHA224(%q) = %x, want %s", d.message, got, d.expected)
		}
	}
}

func TestSHA224MillionA(t *testing.T) {
	message := bytes.Repeat([]byte{'a'}, 1000000)
	got := Sum224(message)
	want, _ := hex.DecodeString("20794655980c91d8bbb4c1ea97618a4bf03f42581948b2ee4ee7ad67")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("SHA224(1M 'a') = %x, want %x", got, want)
	}
}

func TestSHA224MultipleBlocks(t *testing.T) {
	message := bytes.Repeat([]byte{'x'}, 200)
	oneShot := Sum224(message)

	h := NewSHA224()
	h.Update(message[:64])
	h.Update(message[64:128])
	h.Update(message[128:])
	streamed := h.Finalize()

	if !bytes.Equal(oneShot[:], streamed) {
		t.Fatalf("streamed SHA224 = %x, want %x", streamed, oneShot)
	}
}

func TestSHA224OutputSize(t *testing.T) {
	if NewSHA224().OutputSize() != 28 {
		t.Fatalf("OutputSize() != 28")
	}
}

func TestSHA256AsHasherInterface(t *testing.T) {
	var h Hasher = NewSHA256()
	h.Update([]byte(strings.Repeat("y", 65)))
	if len(h.Finalize()) != 32 {
		t.Fatalf("interface-dispatched Finalize produced wrong length")
	}
}
