package tinkipcrypt

import (
	"fmt"

	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/vdparikh/ipcrypt"
	"github.com/vdparikh/ipcrypt/subtle"
)

// extractPrimaryKey pulls the raw key bytes for handle's primary key out
// of an (unencrypted) keyset, mirroring the teacher's keyset.Handle ->
// insecurecleartextkeyset.KeysetMaterial -> key-ID lookup pattern.
func extractPrimaryKey(handle *keyset.Handle, wantSize int) ([]byte, error) {
	if handle == nil {
		return nil, fmt.Errorf("tinkipcrypt: keyset handle cannot be nil")
	}
	ensureKeyManagersRegistered()

	primitives, err := handle.Primitives()
	if err != nil {
		return nil, fmt.Errorf("tinkipcrypt: failed to get primitives from handle: %w", err)
	}
	primary := primitives.Primary
	if primary == nil {
		return nil, fmt.Errorf("tinkipcrypt: no primary key found in keyset")
	}

	ks := insecurecleartextkeyset.KeysetMaterial(handle)
	for _, k := range ks.Key {
		if k.KeyId != primary.KeyID {
			continue
		}
		kd := k.KeyData
		if kd == nil || kd.GetKeyMaterialType() != 2 { // SYMMETRIC
			continue
		}
		if len(kd.Value) != wantSize {
			return nil, fmt.Errorf("tinkipcrypt: key has %d bytes, want %d", len(kd.Value), wantSize)
		}
		return kd.Value, nil
	}
	return nil, fmt.Errorf("tinkipcrypt: key with ID %d not found or unsupported key type", primary.KeyID)
}

// NewDContext builds a deterministic-mode ipcrypt context from a Tink
// keyset handle created with DKeyTemplate().
func NewDContext(handle *keyset.Handle) (*ipcrypt.DContext, error) {
	keyBytes, err := extractPrimaryKey(handle, subtle.KeySize)
	if err != nil {
		return nil, err
	}
	var key [subtle.KeySize]byte
	copy(key[:], keyBytes)
	return ipcrypt.NewDContext(key), nil
}

// NewNDContext builds an ND-mode ipcrypt context from a Tink keyset
// handle created with NDKeyTemplate().
func NewNDContext(handle *keyset.Handle) (*ipcrypt.NDContext, error) {
	keyBytes, err := extractPrimaryKey(handle, subtle.KeySize)
	if err != nil {
		return nil, err
	}
	var key [subtle.KeySize]byte
	copy(key[:], keyBytes)
	return ipcrypt.NewNDContext(key), nil
}

// NewNDXContext builds an NDX-mode ipcrypt context from a Tink keyset
// handle created with NDXKeyTemplate().
func NewNDXContext(handle *keyset.Handle) (*ipcrypt.NDXContext, error) {
	keyBytes, err := extractPrimaryKey(handle, 2*subtle.KeySize)
	if err != nil {
		return nil, err
	}
	var key [2 * subtle.KeySize]byte
	copy(key[:], keyBytes)
	return ipcrypt.NewNDXContext(key), nil
}
