// Package subtle implements the low-level AES-128 primitives that back the
// ipcrypt modes: key expansion, forward block encryption, and inverse block
// encryption (decryption) via on-demand derivation of the inverse round-key
// schedule.
//
// Callers outside this module should not need these types directly; use the
// mode façades in the parent ipcrypt package instead. This package exists so
// the key schedule and round functions can be shared, unmodified, by the
// deterministic, ND, and NDX modes, and so that a hardware-accelerated
// backend can be swapped in per architecture without touching the mode
// logic above it.
package subtle

// BlockSize is the AES-128 block size in bytes.
const BlockSize = 16

// KeySize is the AES-128 key size in bytes.
const KeySize = 16

// Rounds is the number of AES-128 rounds.
const Rounds = 10

// RoundKeySchedule holds the eleven 128-bit round keys produced by AES-128
// key expansion. RKS[0] is the initial whitening key, RKS[1..9] are the
// middle-round keys, and RKS[10] is the final-round key. The inverse
// schedule is never stored here; it is derived from this schedule on each
// decrypt call (see decryptBlockGeneric).
type RoundKeySchedule [Rounds + 1][BlockSize]byte

// dispatch table, overridden by architecture-specific init() functions when
// hardware AES acceleration is available. The generic implementations are
// always correct and serve as the portable reference and universal fallback.
var (
	expandKey128 = expandKey128Generic
	encryptBlock = encryptBlockGeneric
	decryptBlock = decryptBlockGeneric
)

// ExpandKey128 performs AES-128 key expansion on a 16-byte key, producing
// the eleven round keys of RoundKeySchedule.
func ExpandKey128(key *[KeySize]byte) RoundKeySchedule {
	return expandKey128(key)
}

// EncryptBlock performs one AES-128 forward block encryption of src into
// dst under rks. dst and src may alias.
func EncryptBlock(rks *RoundKeySchedule, dst, src *[BlockSize]byte) {
	encryptBlock(rks, dst, src)
}

// DecryptBlock performs one AES-128 inverse block encryption (decryption)
// of src into dst under rks, deriving the inverse round-key schedule from
// rks on demand. dst and src may alias.
func DecryptBlock(rks *RoundKeySchedule, dst, src *[BlockSize]byte) {
	decryptBlock(rks, dst, src)
}

// XorSchedule returns a new RoundKeySchedule with every entry of rks XORed
// with mask. This is how the ND (KIASU-BC) mode injects its tweak into the
// key schedule: XOR is distributive
// over the AES-128 inverse-mix-columns transform, so a schedule built this
// way can be fed straight into EncryptBlock/DecryptBlock without any
// special-casing in the round functions themselves.
func XorSchedule(rks *RoundKeySchedule, mask *[BlockSize]byte) RoundKeySchedule {
	var out RoundKeySchedule
	for i := range rks {
		for j := range rks[i] {
			out[i][j] = rks[i][j] ^ mask[j]
		}
	}
	return out
}

// Zero overwrites every byte of rks with zero.
func (rks *RoundKeySchedule) Zero() {
	for i := range rks {
		for j := range rks[i] {
			rks[i][j] = 0
		}
	}
}
