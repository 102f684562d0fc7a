package tinkipcrypt

import (
	"sync"

	"github.com/google/tink/go/core/registry"
)

var registerOnce sync.Once

// init registers the key managers up front so that keyset.NewHandle
// accepts DKeyTemplate, NDKeyTemplate and NDXKeyTemplate.
func init() {
	ensureKeyManagersRegistered()
}

// ensureKeyManagersRegistered registers all three ipcrypt key managers
// with Tink's global registry. Safe to call repeatedly; registration
// only happens once per process. Mirrors the teacher's
// ensureKeyManagerRegistered sync.Once pattern, extended to three
// managers since ipcrypt has three modes instead of one cipher.
func ensureKeyManagersRegistered() {
	registerOnce.Do(func() {
		_ = registry.RegisterKeyManager(NewDKeyManager())
		_ = registry.RegisterKeyManager(NewNDKeyManager())
		_ = registry.RegisterKeyManager(NewNDXKeyManager())
	})
}
