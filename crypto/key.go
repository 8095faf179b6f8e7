package crypto

import "io"

// AsymmetricPublicKey is the public half of a key algorithm: metadata about
// its public keys and validated construction from raw bytes.
type AsymmetricPublicKey[P PubKey] interface {
	// PublicBech32HRP is the bech32 human readable part for public keys.
	PublicBech32HRP() string
	// PublicKeySize is the fixed byte length of a public key.
	PublicKeySize() int
	// PublicFromBinary copies data into a public key. It fails with
	// ErrPubKeySizeInvalid when len(data) != PublicKeySize() and performs no
	// other validation.
	PublicFromBinary(data []byte) (P, error)
}

// AsymmetricKey is a key algorithm able to produce secret keys of type S and
// compute their public keys of type P.
type AsymmetricKey[S PrivKey, P PubKey] interface {
	// PublicAlgorithm returns the algorithm that owns the public key type.
	// Several secret key formats may share a public key algorithm.
	PublicAlgorithm() AsymmetricPublicKey[P]
	// SecretBech32HRP is the bech32 human readable part for secret keys.
	SecretBech32HRP() string
	// SecretKeySize is the fixed byte length of a secret key.
	SecretKeySize() int
	// Generate reads exactly SecretKeySize() bytes from rand. It panics if
	// rand fails.
	Generate(rand io.Reader) S
	// ComputePublic deterministically derives the public key of secret.
	ComputePublic(secret S) P
	// SecretFromBinary copies data into a secret key. It fails with
	// ErrPrivKeySizeInvalid when len(data) != SecretKeySize(); any bit
	// pattern of the right length is accepted.
	SecretFromBinary(data []byte) (S, error)
}

// ExtendedPubKey is a public key bundled with chain code material, as
// produced by hierarchical deterministic derivation.
type ExtendedPubKey interface {
	// SupportsPubKeySize reports whether the raw public key can be written
	// out as size bytes. Keys of other curves never support a size.
	SupportsPubKeySize(size int) bool
	// PubKeyWithoutChainCode copies the raw public key, without the chain
	// code, into dst. len(dst) is the public key size of the algorithm the
	// caller is building a key for and must be supported.
	PubKeyWithoutChainCode(dst []byte)
}

// ExtendedPublicKeyDeriver is implemented by algorithms whose public keys
// can be taken out of an extended public key.
type ExtendedPublicKeyDeriver[P PubKey] interface {
	// PublicFromExtended drops the chain code of x and keeps the raw public
	// key. The derivation is one-way.
	PublicFromExtended(x ExtendedPubKey) P
}
