// Package ipcrypt implements format-preserving and tweakable encryption of
// 128-bit IP addresses, in the three constructions described by the
// ipcrypt family: a deterministic mode, a non-deterministic mode with an
// 8-byte KIASU-BC tweak ("ND"), and a non-deterministic mode with a
// 16-byte XEX tweak ("NDX").
//
// The block-level primitives live in the subtle package; this package
// wraps them with IP-string and hex adapters and the context lifecycle
// (init/deinit) that the three modes share.
package ipcrypt
