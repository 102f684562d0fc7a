package ipcrypt

import "errors"

// Sentinel errors of the external adapters (§6 of the design: IP parsing
// and hex decoding are the only places this package can fail; the
// block-level core is a total function on its fixed-size inputs and never
// returns an error).
var (
	// ErrInvalidIPString is returned when a string does not parse as a
	// valid IPv4 or IPv6 address.
	ErrInvalidIPString = errors.New("ipcrypt: invalid IP address string")

	// ErrInvalidHex is returned when a string is not valid hexadecimal,
	// or decodes to the wrong number of bytes for its expected use.
	ErrInvalidHex = errors.New("ipcrypt: invalid hex string")

	// ErrBufferTooSmall reports a caller-supplied output buffer smaller
	// than an operation requires. Every operation in this package takes
	// and returns fixed-size arrays, so none of them returns it.
	ErrBufferTooSmall = errors.New("ipcrypt: buffer too small")
)
