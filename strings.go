package ipcrypt

import "github.com/vdparikh/ipcrypt/subtle"

// EncryptIPString encrypts an IP address string deterministically and
// returns the result as a lowercase hex string. A malformed ip is a
// reported error, not a silently-produced zero IP16 — spec.md's design
// notes call this out explicitly as the required behavior.
func (c *DContext) EncryptIPString(ip string) (string, error) {
	ip16, err := ParseIP16(ip)
	if err != nil {
		return "", err
	}
	cipher := c.Encrypt(ip16)
	return EncodeHex(cipher[:]), nil
}

// DecryptIPString inverts EncryptIPString, returning the original IP
// address string.
func (c *DContext) DecryptIPString(hexCipher string) (string, error) {
	b, err := DecodeHex(hexCipher, IP16Size)
	if err != nil {
		return "", err
	}
	var cipher [IP16Size]byte
	copy(cipher[:], b)
	plain := c.Decrypt(cipher)
	return FormatIP16(plain), nil
}

// EncryptIPString encrypts an IP address string under tweak and returns
// the 24-byte ND bundle as a lowercase hex string.
func (c *NDContext) EncryptIPString(tweak [subtle.TweakSize]byte, ip string) (string, error) {
	ip16, err := ParseIP16(ip)
	if err != nil {
		return "", err
	}
	bundle := c.EncryptToBundle(tweak, ip16)
	return EncodeHex(bundle[:]), nil
}

// DecryptIPString inverts EncryptIPString, returning the original IP
// address string.
func (c *NDContext) DecryptIPString(hexBundle string) (string, error) {
	b, err := DecodeHex(hexBundle, NDBundleSize)
	if err != nil {
		return "", err
	}
	var bundle [NDBundleSize]byte
	copy(bundle[:], b)
	plain := c.DecryptBundle(bundle)
	return FormatIP16(plain), nil
}

// EncryptIPString encrypts an IP address string under tweak and returns
// the 32-byte NDX bundle as a lowercase hex string.
func (c *NDXContext) EncryptIPString(tweak [subtle.XEXTweakSize]byte, ip string) (string, error) {
	ip16, err := ParseIP16(ip)
	if err != nil {
		return "", err
	}
	bundle := c.EncryptToBundle(tweak, ip16)
	return EncodeHex(bundle[:]), nil
}

// DecryptIPString inverts EncryptIPString, returning the original IP
// address string.
func (c *NDXContext) DecryptIPString(hexBundle string) (string, error) {
	b, err := DecodeHex(hexBundle, NDXBundleSize)
	if err != nil {
		return "", err
	}
	var bundle [NDXBundleSize]byte
	copy(bundle[:], b)
	plain := c.DecryptBundle(bundle)
	return FormatIP16(plain), nil
}
