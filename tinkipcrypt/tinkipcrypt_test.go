package tinkipcrypt

import (
	"math/rand"
	"testing"

	"github.com/google/tink/go/keyset"
)

func TestDModeRoundTripViaKeysetHandle(t *testing.T) {
	handle, err := keyset.NewHandle(DKeyTemplate())
	if err != nil {
		t.Fatalf("keyset.NewHandle: %v", err)
	}
	ctx, err := NewDContext(handle)
	if err != nil {
		t.Fatalf("NewDContext: %v", err)
	}
	defer ctx.Deinit()

	cipher, err := ctx.EncryptIPString("203.0.113.9")
	if err != nil {
		t.Fatalf("EncryptIPString: %v", err)
	}
	plain, err := ctx.DecryptIPString(cipher)
	if err != nil {
		t.Fatalf("DecryptIPString: %v", err)
	}
	if plain != "203.0.113.9" {
		t.Fatalf("round-trip: got %q, want %q", plain, "203.0.113.9")
	}
}

func TestNDXModeRoundTripViaKeysetHandle(t *testing.T) {
	handle, err := keyset.NewHandle(NDXKeyTemplate())
	if err != nil {
		t.Fatalf("keyset.NewHandle: %v", err)
	}
	ctx, err := NewNDXContext(handle)
	if err != nil {
		t.Fatalf("NewNDXContext: %v", err)
	}
	defer ctx.Deinit()

	var tweak [16]byte
	rand.New(rand.NewSource(1)).Read(tweak[:])

	cipher, err := ctx.EncryptIPString(tweak, "2001:db8::abcd")
	if err != nil {
		t.Fatalf("EncryptIPString: %v", err)
	}
	plain, err := ctx.DecryptIPString(cipher)
	if err != nil {
		t.Fatalf("DecryptIPString: %v", err)
	}
	if plain != "2001:db8::abcd" {
		t.Fatalf("round-trip: got %q, want %q", plain, "2001:db8::abcd")
	}
}

// TestWrongKeySizeRejected checks that extracting a primary key of the
// wrong size reports an error instead of silently truncating/padding.
func TestWrongKeySizeRejected(t *testing.T) {
	handle, err := keyset.NewHandle(DKeyTemplate())
	if err != nil {
		t.Fatalf("keyset.NewHandle: %v", err)
	}
	if _, err := NewNDXContext(handle); err == nil {
		t.Fatal("expected an error extracting a 32-byte key from a 16-byte D keyset")
	}
}

func TestKeysetHandleFromExistingKey(t *testing.T) {
	var key [16]byte
	for i := range key {
		key[i] = byte(i)
	}
	handle, err := NewDKeysetHandleFromKey(key)
	if err != nil {
		t.Fatalf("NewDKeysetHandleFromKey: %v", err)
	}
	ctx, err := NewDContext(handle)
	if err != nil {
		t.Fatalf("NewDContext: %v", err)
	}
	defer ctx.Deinit()

	cipher, err := ctx.EncryptIPString("10.0.0.1")
	if err != nil {
		t.Fatalf("EncryptIPString: %v", err)
	}
	plain, err := ctx.DecryptIPString(cipher)
	if err != nil {
		t.Fatalf("DecryptIPString: %v", err)
	}
	if plain != "10.0.0.1" {
		t.Fatalf("round-trip: got %q, want %q", plain, "10.0.0.1")
	}
}
