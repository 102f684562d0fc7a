package ipcrypt

import "github.com/vdparikh/ipcrypt/subtle"

// DContext is the deterministic-mode context: it owns one AES-128
// round-key schedule derived from a 16-byte key. Immutable once built,
// shareable across goroutines; Deinit is a data race if any goroutine is
// still reading from the context concurrently (see spec.md §5).
type DContext struct {
	rks subtle.RoundKeySchedule
}

// NewDContext derives a deterministic-mode context from a 16-byte key.
func NewDContext(key [subtle.KeySize]byte) *DContext {
	return &DContext{rks: subtle.ExpandKey128(&key)}
}

// Deinit overwrites the context's key schedule with zeros. The context
// must not be used again afterward, and must not be deinitialized
// concurrently with any in-flight Encrypt/Decrypt call.
func (c *DContext) Deinit() {
	for i := range c.rks {
		secureZero(c.rks[i][:])
	}
}

// Encrypt performs deterministic, format-preserving block encryption:
// the same 16-byte input always produces the same 16-byte output under a
// given context.
func (c *DContext) Encrypt(plain [IP16Size]byte) [IP16Size]byte {
	var out [IP16Size]byte
	subtle.EncryptBlock(&c.rks, &out, &plain)
	return out
}

// Decrypt inverts Encrypt.
func (c *DContext) Decrypt(cipher [IP16Size]byte) [IP16Size]byte {
	var out [IP16Size]byte
	subtle.DecryptBlock(&c.rks, &out, &cipher)
	return out
}

// NDContext is the ND-mode (KIASU-BC) context: same representation as
// DContext, differing only in which operations it offers — every
// encrypt/decrypt call additionally takes an 8-byte tweak.
type NDContext struct {
	rks subtle.RoundKeySchedule
}

// NewNDContext derives an ND-mode context from a 16-byte key.
func NewNDContext(key [subtle.KeySize]byte) *NDContext {
	return &NDContext{rks: subtle.ExpandKey128(&key)}
}

// Deinit overwrites the context's key schedule with zeros.
func (c *NDContext) Deinit() {
	for i := range c.rks {
		secureZero(c.rks[i][:])
	}
}

// Encrypt performs KIASU-BC tweaked block encryption under tweak. The
// tweak is caller-supplied randomness (ipcrypt never generates tweaks
// itself); the same tweak and plaintext always produce the same
// ciphertext.
func (c *NDContext) Encrypt(tweak [subtle.TweakSize]byte, plain [IP16Size]byte) [IP16Size]byte {
	var out [IP16Size]byte
	subtle.EncryptBlockTweaked(&c.rks, &tweak, &out, &plain)
	return out
}

// Decrypt inverts Encrypt for the same tweak.
func (c *NDContext) Decrypt(tweak [subtle.TweakSize]byte, cipher [IP16Size]byte) [IP16Size]byte {
	var out [IP16Size]byte
	subtle.DecryptBlockTweaked(&c.rks, &tweak, &out, &cipher)
	return out
}

// NDXContext is the NDX-mode (XEX) context: it exclusively owns two
// independent AES-128 schedules, one for block encryption and one for
// tweak encryption, each derived from one 16-byte half of a 32-byte key.
type NDXContext struct {
	primary   subtle.RoundKeySchedule
	secondary subtle.RoundKeySchedule
}

// NewNDXContext derives an NDX-mode context from a 32-byte key: the first
// 16 bytes become the primary schedule, the second 16 bytes become the
// tweak schedule.
func NewNDXContext(key [2 * subtle.KeySize]byte) *NDXContext {
	var k1, k2 [subtle.KeySize]byte
	copy(k1[:], key[:subtle.KeySize])
	copy(k2[:], key[subtle.KeySize:])
	return &NDXContext{
		primary:   subtle.ExpandKey128(&k1),
		secondary: subtle.ExpandKey128(&k2),
	}
}

// Deinit overwrites both key schedules with zeros.
func (c *NDXContext) Deinit() {
	for i := range c.primary {
		secureZero(c.primary[i][:])
	}
	for i := range c.secondary {
		secureZero(c.secondary[i][:])
	}
}

// Encrypt performs XEX-construction tweaked block encryption under a
// 16-byte tweak.
func (c *NDXContext) Encrypt(tweak [subtle.XEXTweakSize]byte, plain [IP16Size]byte) [IP16Size]byte {
	var out [IP16Size]byte
	subtle.EncryptBlockXEX(&c.primary, &c.secondary, &tweak, &out, &plain)
	return out
}

// Decrypt inverts Encrypt for the same tweak.
func (c *NDXContext) Decrypt(tweak [subtle.XEXTweakSize]byte, cipher [IP16Size]byte) [IP16Size]byte {
	var out [IP16Size]byte
	subtle.DecryptBlockXEX(&c.primary, &c.secondary, &tweak, &out, &cipher)
	return out
}
