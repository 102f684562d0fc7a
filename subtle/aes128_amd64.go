//go:build amd64

package subtle

import "golang.org/x/sys/cpu"

// On amd64, the AES-NI instruction set computes AddRoundKey *after*
// SubBytes/ShiftRows/MixColumns inside a single AESENC, so the portable
// round numbering in aes128_generic.go maps onto AESENC/AESENCLAST/AESDEC/
// AESDECLAST/AESIMC one-for-one: no round-key reindexing is required for
// this backend (contrast with aes128_arm64.go, where it is).
func init() {
	if cpu.X86.HasAES && cpu.X86.HasSSE41 {
		expandKey128 = expandKey128AESNI
		encryptBlock = encryptBlockAESNI
		decryptBlock = decryptBlockAESNI
	}
}

//go:noescape
func expandKeyAESNIAsm(rks *RoundKeySchedule, key *[KeySize]byte)

//go:noescape
func encryptBlockAESNIAsm(rks *RoundKeySchedule, dst, src *[BlockSize]byte)

//go:noescape
func decryptBlockAESNIAsm(rks *RoundKeySchedule, dst, src *[BlockSize]byte)

func expandKey128AESNI(key *[KeySize]byte) RoundKeySchedule {
	var rks RoundKeySchedule
	expandKeyAESNIAsm(&rks, key)
	return rks
}

func encryptBlockAESNI(rks *RoundKeySchedule, dst, src *[BlockSize]byte) {
	encryptBlockAESNIAsm(rks, dst, src)
}

func decryptBlockAESNI(rks *RoundKeySchedule, dst, src *[BlockSize]byte) {
	decryptBlockAESNIAsm(rks, dst, src)
}
