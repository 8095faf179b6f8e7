package crypto

import (
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
)

// Sha256 returns the SHA-256 digest of bz. It is the message digest of
// secp256k1 signatures and the seed derivation of GenPrivKeyFromSecret.
func Sha256(bz []byte) []byte {
	digest := sha256.Sum256(bz)
	return digest[:]
}

// AddressHash returns the blake2b-224 hash of bz.
func AddressHash(bz []byte) Address {
	h, err := blake2b.New(AddressSize, nil)
	if err != nil {
		// only reachable with an invalid size or key
		panic(err)
	}
	h.Write(bz)

	var addr Address
	copy(addr[:], h.Sum(nil))
	return addr
}
