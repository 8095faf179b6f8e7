// Package edwards implements public key derivation and signing for Ed25519
// secret keys that are already expanded: a 32 byte scalar half kL followed
// by a 32 byte nonce half kR, as used by extended and BIP32 style keys.
package edwards

import (
	"crypto/sha512"

	"filippo.io/edwards25519"

	"github.com/ledgerkit/chaincrypto/crypto"
)

const (
	// ExtendedSize is the size of kL || kR.
	ExtendedSize = 64
	// PubKeySize is the size of a compressed Edwards point.
	PubKeySize = 32
	// SignatureSize is the size of an R || S signature.
	SignatureSize = 64
)

// Clamp applies the Ed25519 scalar clamping to kL in place.
func Clamp(kL []byte) {
	kL[0] &= 0b1111_1000
	kL[31] &= 0b0011_1111
	kL[31] |= 0b0100_0000
}

// ClampBIP32 clamps kL and additionally clears the third highest bit, which
// keeps child scalars in range during BIP32-Ed25519 derivation.
func ClampBIP32(kL []byte) {
	kL[0] &= 0b1111_1000
	kL[31] &= 0b0001_1111
	kL[31] |= 0b0100_0000
}

// scalar reduces the raw little-endian kL modulo the group order. kL is
// not clamped again, so imported keys keep their exact kL·B.
func scalar(kL []byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], kL[:32])
	defer crypto.Zeroize(wide[:])

	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only fails on a length mismatch.
		panic(err)
	}
	return s
}

// PublicKey computes kL·B.
func PublicKey(extended []byte) [PubKeySize]byte {
	var pub [PubKeySize]byte
	point := new(edwards25519.Point).ScalarBaseMult(scalar(extended[:32]))
	copy(pub[:], point.Bytes())
	return pub
}

// Sign signs msg with an expanded secret key whose public key is pub. The
// result verifies as a standard Ed25519 signature under pub.
func Sign(extended []byte, pub [PubKeySize]byte, msg []byte) [SignatureSize]byte {
	a := scalar(extended[:32])

	h := sha512.New()
	h.Write(extended[32:64])
	h.Write(msg)
	nonce := h.Sum(make([]byte, 0, sha512.Size))
	defer crypto.Zeroize(nonce)

	r, err := edwards25519.NewScalar().SetUniformBytes(nonce)
	if err != nil {
		panic(err)
	}
	R := new(edwards25519.Point).ScalarBaseMult(r)

	h.Reset()
	h.Write(R.Bytes())
	h.Write(pub[:])
	h.Write(msg)
	hram, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(make([]byte, 0, sha512.Size)))
	if err != nil {
		panic(err)
	}

	S := edwards25519.NewScalar().MultiplyAdd(hram, a, r)

	var sig [SignatureSize]byte
	copy(sig[:32], R.Bytes())
	copy(sig[32:], S.Bytes())
	return sig
}
