//go:build arm64

package subtle

import "golang.org/x/sys/cpu"

// ARMv8 Crypto Extensions fold AddRoundKey into the *start* of AESE/AESD
// (before SubBytes/ShiftRows), the opposite convention from AES-NI's
// AESENC/AESDEC (AddRoundKey at the end). That shifts which round key
// lines up with which instruction call by one position; see the unrolled
// call sequence in aes128_arm64.s, grounded directly on original_source's
// AArch64 aes_encrypt/aes_decrypt (the AES_XENCRYPT/AES_XDECRYPT branch of
// ipcrypt2.c).
//
// Key expansion has no single matching NEON instruction (AES_KEYGEN on
// AArch64 synthesizes it from AESE against a zero key plus a lane
// shuffle); since expansion runs once per context init and isn't a hot
// path, this backend reuses the portable software key schedule and only
// accelerates the per-block round functions.
func init() {
	if cpu.ARM64.HasAES {
		encryptBlock = encryptBlockAESEArm
		decryptBlock = decryptBlockAESEArm
	}
}

//go:noescape
func encryptBlockAESEArmAsm(rks *RoundKeySchedule, dst, src *[BlockSize]byte)

//go:noescape
func decryptBlockAESEArmAsm(rks *RoundKeySchedule, irks *[Rounds - 1][BlockSize]byte, dst, src *[BlockSize]byte)

func encryptBlockAESEArm(rks *RoundKeySchedule, dst, src *[BlockSize]byte) {
	encryptBlockAESEArmAsm(rks, dst, src)
}

func decryptBlockAESEArm(rks *RoundKeySchedule, dst, src *[BlockSize]byte) {
	var irks [Rounds - 1][BlockSize]byte
	for j := 0; j < Rounds-1; j++ {
		irks[j] = rks[Rounds-1-j]
		invMixColumns(&irks[j])
	}
	decryptBlockAESEArmAsm(rks, &irks, dst, src)
}
