// Package tinkipcrypt provides Tink integration for ipcrypt: key managers
// and keyset-handle-based factories for the deterministic, ND, and NDX
// modes, following the same registry.KeyManager pattern the teacher
// project uses for its own cipher.
package tinkipcrypt

import (
	"crypto/rand"
	"fmt"

	"github.com/google/tink/go/core/registry"
	"github.com/google/tink/go/proto/tink_go_proto"
	"google.golang.org/protobuf/proto"
)

// Type URLs for the three ipcrypt modes' Tink key types.
const (
	DKeyTypeURL   = "type.googleapis.com/github.vdparikh.ipcrypt.DKey"
	NDKeyTypeURL  = "type.googleapis.com/github.vdparikh.ipcrypt.NDKey"
	NDXKeyTypeURL = "type.googleapis.com/github.vdparikh.ipcrypt.NDXKey"
)

// keyManager implements registry.KeyManager for one ipcrypt mode's key
// type. All three modes differ only in type URL and expected key size;
// Primitive just hands the raw key bytes back (the primary key material
// Tink is meant to manage here), leaving interpretation as a
// DContext/NDContext/NDXContext to the New* factory functions in
// factory.go.
type keyManager struct {
	typeURL string
	keySize int
}

// NewDKeyManager returns the key manager for deterministic-mode
// (16-byte) keys.
func NewDKeyManager() registry.KeyManager {
	return &keyManager{typeURL: DKeyTypeURL, keySize: 16}
}

// NewNDKeyManager returns the key manager for ND-mode (16-byte) keys.
func NewNDKeyManager() registry.KeyManager {
	return &keyManager{typeURL: NDKeyTypeURL, keySize: 16}
}

// NewNDXKeyManager returns the key manager for NDX-mode (32-byte) keys.
func NewNDXKeyManager() registry.KeyManager {
	return &keyManager{typeURL: NDXKeyTypeURL, keySize: 32}
}

// Primitive validates the serialized key's length and returns it
// unchanged; factory.go's New functions do the actual context
// construction once they also have the mode-specific semantics in hand.
func (km *keyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) != km.keySize {
		return nil, fmt.Errorf("tinkipcrypt: invalid key size: got %d bytes, want %d", len(serializedKey), km.keySize)
	}
	key := make([]byte, km.keySize)
	copy(key, serializedKey)
	return key, nil
}

// DoesSupport returns true if this key manager supports typeURL.
func (km *keyManager) DoesSupport(typeURL string) bool {
	return typeURL == km.typeURL
}

// TypeURL returns the type URL of the keys managed by this key manager.
func (km *keyManager) TypeURL() string {
	return km.typeURL
}

// NewKey is unsupported; ipcrypt keys carry no structured protobuf
// message, only raw key bytes, so keysets are always built through
// NewKeyData or New{D,ND,NDX}KeysetHandleFromKey.
func (km *keyManager) NewKey(serializedKeyTemplate []byte) (proto.Message, error) {
	return nil, fmt.Errorf("tinkipcrypt: NewKey not supported, use NewKeyData")
}

// NewKeyData generates a new random key of this manager's key size and
// wraps it in a Tink KeyData message.
func (km *keyManager) NewKeyData(serializedKeyTemplate []byte) (*tink_go_proto.KeyData, error) {
	key := make([]byte, km.keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("tinkipcrypt: failed to generate random key: %w", err)
	}
	return &tink_go_proto.KeyData{
		TypeUrl:         km.typeURL,
		Value:           key,
		KeyMaterialType: 2, // SYMMETRIC
	}, nil
}

var (
	_ registry.KeyManager = (*keyManager)(nil)
)

// DKeyTemplate returns the key template for deterministic-mode keys.
func DKeyTemplate() *tink_go_proto.KeyTemplate {
	return &tink_go_proto.KeyTemplate{
		TypeUrl:          DKeyTypeURL,
		OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
	}
}

// NDKeyTemplate returns the key template for ND-mode keys.
func NDKeyTemplate() *tink_go_proto.KeyTemplate {
	return &tink_go_proto.KeyTemplate{
		TypeUrl:          NDKeyTypeURL,
		OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
	}
}

// NDXKeyTemplate returns the key template for NDX-mode keys.
func NDXKeyTemplate() *tink_go_proto.KeyTemplate {
	return &tink_go_proto.KeyTemplate{
		TypeUrl:          NDXKeyTypeURL,
		OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
	}
}
