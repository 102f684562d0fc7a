package ipcrypt

import "runtime"

// secureZero overwrites b with zero bytes and pins b live past the write
// with runtime.KeepAlive, so the compiler cannot prove the store dead and
// elide it — the Go-native equivalent of the "memory barrier" secure-zero
// primitive spec.md's design notes call for. Grounded on the
// ClearKey-style key-wiping pattern in other_examples' from-scratch AES
// implementations, generalized into a shared helper since ipcrypt has
// three context types that all need it.
func secureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
