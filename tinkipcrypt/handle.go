package tinkipcrypt

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/proto/tink_go_proto"
)

// newKeysetHandleFromKey wraps a raw key (e.g. one supplied by an HSM or
// an existing deployment) in a single-key, unencrypted Tink keyset
// handle under typeURL. Mirrors the teacher's NewKeysetHandleFromKey.
func newKeysetHandleFromKey(typeURL string, key []byte) (*keyset.Handle, error) {
	keyIDBytes := make([]byte, 4)
	if _, err := rand.Read(keyIDBytes); err != nil {
		return nil, fmt.Errorf("tinkipcrypt: failed to generate key ID: %w", err)
	}
	keyID := binary.BigEndian.Uint32(keyIDBytes)

	keyData := &tink_go_proto.KeyData{
		TypeUrl:         typeURL,
		Value:           key,
		KeyMaterialType: 2, // SYMMETRIC
	}
	keysetKey := &tink_go_proto.Keyset_Key{
		KeyData:          keyData,
		KeyId:            keyID,
		Status:           tink_go_proto.KeyStatusType_ENABLED,
		OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
	}
	ks := &tink_go_proto.Keyset{
		PrimaryKeyId: keyID,
		Key:          []*tink_go_proto.Keyset_Key{keysetKey},
	}

	buf := &keyset.MemReaderWriter{Keyset: ks}
	return insecurecleartextkeyset.Read(buf)
}

// NewDKeysetHandleFromKey wraps a 16-byte deterministic-mode key in a
// keyset handle.
func NewDKeysetHandleFromKey(key [16]byte) (*keyset.Handle, error) {
	return newKeysetHandleFromKey(DKeyTypeURL, key[:])
}

// NewNDKeysetHandleFromKey wraps a 16-byte ND-mode key in a keyset
// handle.
func NewNDKeysetHandleFromKey(key [16]byte) (*keyset.Handle, error) {
	return newKeysetHandleFromKey(NDKeyTypeURL, key[:])
}

// NewNDXKeysetHandleFromKey wraps a 32-byte NDX-mode key in a keyset
// handle.
func NewNDXKeysetHandleFromKey(key [32]byte) (*keyset.Handle, error) {
	return newKeysetHandleFromKey(NDXKeyTypeURL, key[:])
}
