package ipcrypt

import (
	"encoding/hex"
	"testing"

	"github.com/vdparikh/ipcrypt/subtle"
)

func keyFromHex(t *testing.T, s string) [subtle.KeySize]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != subtle.KeySize {
		t.Fatalf("bad key literal %q", s)
	}
	var k [subtle.KeySize]byte
	copy(k[:], b)
	return k
}

// TestFormatPreservingIPv4 is spec.md §8 item 2.
func TestFormatPreservingIPv4(t *testing.T) {
	key := keyFromHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	ctx := NewDContext(key)
	defer ctx.Deinit()

	cipher, err := ctx.EncryptIPString("192.0.2.1")
	if err != nil {
		t.Fatalf("EncryptIPString: %v", err)
	}
	plain, err := ctx.DecryptIPString(cipher)
	if err != nil {
		t.Fatalf("DecryptIPString: %v", err)
	}
	if plain != "192.0.2.1" {
		t.Fatalf("round-trip: got %q, want %q", plain, "192.0.2.1")
	}
}

// TestFormatPreservingIPv6 is spec.md §8 item 3.
func TestFormatPreservingIPv6(t *testing.T) {
	key := keyFromHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	ctx := NewDContext(key)
	defer ctx.Deinit()

	cipher, err := ctx.EncryptIPString("2001:db8::1")
	if err != nil {
		t.Fatalf("EncryptIPString: %v", err)
	}
	plain, err := ctx.DecryptIPString(cipher)
	if err != nil {
		t.Fatalf("DecryptIPString: %v", err)
	}
	if plain != "2001:db8::1" {
		t.Fatalf("round-trip: got %q, want %q", plain, "2001:db8::1")
	}
}

func TestInvalidIPStringIsReportedError(t *testing.T) {
	ctx := NewDContext(keyFromHex(t, "2b7e151628aed2a6abf7158809cf4f3c"))
	defer ctx.Deinit()

	if _, err := ctx.EncryptIPString("not-an-ip"); err == nil {
		t.Fatal("expected an error for a malformed IP string, got nil")
	}
}

func TestNDBundleTweakPreservedAndRoundTrips(t *testing.T) {
	key := keyFromHex(t, "0f0e0d0c0b0a09080706050403020100")
	ctx := NewNDContext(key)
	defer ctx.Deinit()

	tweak := [subtle.TweakSize]byte{0, 1, 2, 3, 4, 5, 6, 7}
	ip16, err := ParseIP16("192.0.2.1")
	if err != nil {
		t.Fatalf("ParseIP16: %v", err)
	}

	bundle := ctx.EncryptToBundle(tweak, ip16)
	var gotTweak [subtle.TweakSize]byte
	copy(gotTweak[:], bundle[:subtle.TweakSize])
	if gotTweak != tweak {
		t.Fatalf("tweak not reproduced verbatim in bundle")
	}

	plain := ctx.DecryptBundle(bundle)
	if plain != ip16 {
		t.Fatalf("round-trip: got %x, want %x", plain, ip16)
	}
}

func TestNDXBundleTweakPreservedAndRoundTrips(t *testing.T) {
	var key [2 * subtle.KeySize]byte
	for i := range key {
		key[i] = byte(i)
	}
	ctx := NewNDXContext(key)
	defer ctx.Deinit()

	var tweak [subtle.XEXTweakSize]byte
	ip16, err := ParseIP16("192.0.2.1")
	if err != nil {
		t.Fatalf("ParseIP16: %v", err)
	}

	bundle := ctx.EncryptToBundle(tweak, ip16)
	var gotTweak [subtle.XEXTweakSize]byte
	copy(gotTweak[:], bundle[:subtle.XEXTweakSize])
	if gotTweak != tweak {
		t.Fatalf("tweak not reproduced verbatim in bundle")
	}

	plain := ctx.DecryptBundle(bundle)
	if plain != ip16 {
		t.Fatalf("round-trip: got %x, want %x", plain, ip16)
	}
}

// TestDeinitZeroizes is spec.md §8 item 6.
func TestDeinitZeroizes(t *testing.T) {
	ctx := NewDContext(keyFromHex(t, "2b7e151628aed2a6abf7158809cf4f3c"))
	ctx.Deinit()
	for i := range ctx.rks {
		for j := range ctx.rks[i] {
			if ctx.rks[i][j] != 0 {
				t.Fatalf("Deinit left nonzero byte at rks[%d][%d]", i, j)
			}
		}
	}
}

func TestDeterministicEncryptIsRepeatable(t *testing.T) {
	ctx := NewDContext(keyFromHex(t, "2b7e151628aed2a6abf7158809cf4f3c"))
	defer ctx.Deinit()

	ip16, _ := ParseIP16("198.51.100.7")
	c1 := ctx.Encrypt(ip16)
	c2 := ctx.Encrypt(ip16)
	if c1 != c2 {
		t.Fatalf("deterministic mode produced different ciphertexts for the same input: %x vs %x", c1, c2)
	}
}
