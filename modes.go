package ipcrypt

import "github.com/vdparikh/ipcrypt/subtle"

// NDBundleSize is the size of an ND ciphertext bundle: 8-byte tweak plus
// 16-byte encrypted block.
const NDBundleSize = subtle.TweakSize + IP16Size

// NDXBundleSize is the size of an NDX ciphertext bundle: 16-byte tweak
// plus 16-byte encrypted block.
const NDXBundleSize = subtle.XEXTweakSize + IP16Size

// EncryptToBundle encrypts plain under tweak and returns the 24-byte ND
// bundle (tweak ∥ ciphertext). The tweak bytes are reproduced verbatim;
// the encryption operation never modifies them.
func (c *NDContext) EncryptToBundle(tweak [subtle.TweakSize]byte, plain [IP16Size]byte) [NDBundleSize]byte {
	var bundle [NDBundleSize]byte
	copy(bundle[:subtle.TweakSize], tweak[:])
	cipher := c.Encrypt(tweak, plain)
	copy(bundle[subtle.TweakSize:], cipher[:])
	return bundle
}

// DecryptBundle decrypts a 24-byte ND bundle, returning the original
// plaintext.
func (c *NDContext) DecryptBundle(bundle [NDBundleSize]byte) [IP16Size]byte {
	var tweak [subtle.TweakSize]byte
	var cipher [IP16Size]byte
	copy(tweak[:], bundle[:subtle.TweakSize])
	copy(cipher[:], bundle[subtle.TweakSize:])
	return c.Decrypt(tweak, cipher)
}

// EncryptToBundle encrypts plain under tweak and returns the 32-byte NDX
// bundle (tweak ∥ ciphertext).
func (c *NDXContext) EncryptToBundle(tweak [subtle.XEXTweakSize]byte, plain [IP16Size]byte) [NDXBundleSize]byte {
	var bundle [NDXBundleSize]byte
	copy(bundle[:subtle.XEXTweakSize], tweak[:])
	cipher := c.Encrypt(tweak, plain)
	copy(bundle[subtle.XEXTweakSize:], cipher[:])
	return bundle
}

// DecryptBundle decrypts a 32-byte NDX bundle, returning the original
// plaintext.
func (c *NDXContext) DecryptBundle(bundle [NDXBundleSize]byte) [IP16Size]byte {
	var tweak [subtle.XEXTweakSize]byte
	var cipher [IP16Size]byte
	copy(tweak[:], bundle[:subtle.XEXTweakSize])
	copy(cipher[:], bundle[subtle.XEXTweakSize:])
	return c.Decrypt(tweak, cipher)
}
