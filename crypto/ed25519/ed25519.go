package ed25519

import (
	"bytes"
	"fmt"
	"io"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/ledgerkit/chaincrypto/crypto"
)

const (
	// PrivKeySize is the size, in bytes, of a secret key seed.
	PrivKeySize = ed25519.SeedSize
	// PubKeySize is the size, in bytes, of public keys as used in this package.
	PubKeySize = ed25519.PublicKeySize
	// SignatureSize is the size of an Edwards25519 signature.
	SignatureSize = ed25519.SignatureSize

	KeyType = "ed25519"

	// SecretBech32HRP is the bech32 human readable part of secret keys.
	SecretBech32HRP = "ed25519_sk"
	// PublicBech32HRP is the bech32 human readable part of public keys.
	PublicBech32HRP = "ed25519_pk"
)

// Verification follows ZIP-215 so that every node agrees on the validity
// of non-canonical encodings.
var verifyOptions = &ed25519.Options{
	Verify: ed25519.VerifyOptionsZIP_215,
}

var (
	_ crypto.PrivKey                          = (*PrivKey)(nil)
	_ crypto.PubKey                           = PubKey{}
	_ crypto.AsymmetricKey[*PrivKey, PubKey]  = Algorithm{}
	_ crypto.AsymmetricPublicKey[PubKey]      = Algorithm{}
	_ crypto.ExtendedPublicKeyDeriver[PubKey] = Algorithm{}
)

// Algorithm is the Ed25519 signing algorithm.
type Algorithm struct{}

func (Algorithm) PublicAlgorithm() crypto.AsymmetricPublicKey[PubKey] { return Algorithm{} }
func (Algorithm) PublicBech32HRP() string                             { return PublicBech32HRP }
func (Algorithm) PublicKeySize() int                                  { return PubKeySize }
func (Algorithm) SecretBech32HRP() string                             { return SecretBech32HRP }
func (Algorithm) SecretKeySize() int                                  { return PrivKeySize }

func (Algorithm) Generate(rand io.Reader) *PrivKey { return GenPrivKeyFromReader(rand) }

func (Algorithm) ComputePublic(secret *PrivKey) PubKey { return secret.pubKey() }

func (Algorithm) SecretFromBinary(data []byte) (*PrivKey, error) { return PrivKeyFromBytes(data) }

func (Algorithm) PublicFromBinary(data []byte) (PubKey, error) { return PubKeyFromBytes(data) }

func (Algorithm) PublicFromExtended(x crypto.ExtendedPubKey) PubKey { return PubKeyFromExtended(x) }

// -------------------------------------

// PrivKey is an Ed25519 secret key seed.
type PrivKey struct {
	_   [0]func() // not comparable
	key [PrivKeySize]byte
}

// GenPrivKey generates a new secret key using OS randomness.
func GenPrivKey() *PrivKey {
	return GenPrivKeyFromReader(crypto.CReader())
}

// GenPrivKeyFromReader reads exactly PrivKeySize bytes from rand and uses
// them as the seed. It panics if rand fails.
func GenPrivKeyFromReader(rand io.Reader) *PrivKey {
	privKey := new(PrivKey)
	crypto.ReadEntropy(rand, privKey.key[:])
	return privKey
}

// PrivKeyFromBytes copies bz into a new secret key. Any 32 byte seed is
// valid.
func PrivKeyFromBytes(bz []byte) (*PrivKey, error) {
	if err := crypto.CheckSize(crypto.ErrPrivKeySizeInvalid, KeyType, len(bz), PrivKeySize); err != nil {
		return nil, err
	}
	privKey := new(PrivKey)
	copy(privKey.key[:], bz)
	return privKey, nil
}

// Bytes returns a copy of the seed.
func (privKey *PrivKey) Bytes() []byte {
	bz := make([]byte, PrivKeySize)
	copy(bz, privKey.key[:])
	return bz
}

// Sign produces a signature on the provided message.
func (privKey *PrivKey) Sign(msg []byte) ([]byte, error) {
	expanded := ed25519.NewKeyFromSeed(privKey.key[:])
	defer crypto.Zeroize(expanded)
	return ed25519.Sign(expanded, msg), nil
}

// PubKey gets the corresponding public key from the secret key.
func (privKey *PrivKey) PubKey() crypto.PubKey {
	return privKey.pubKey()
}

func (privKey *PrivKey) pubKey() PubKey {
	expanded := ed25519.NewKeyFromSeed(privKey.key[:])
	defer crypto.Zeroize(expanded)

	var pubKey PubKey
	copy(pubKey[:], expanded[PrivKeySize:])
	return pubKey
}

func (*PrivKey) Type() string {
	return KeyType
}

// Zeroize overwrites the seed.
func (privKey *PrivKey) Zeroize() {
	crypto.Zeroize(privKey.key[:])
}

func (*PrivKey) String() string   { return "PrivKeyEd25519{...}" }
func (*PrivKey) GoString() string { return "PrivKeyEd25519{...}" }

// -------------------------------------

// PubKey implements crypto.PubKey for the Ed25519 signature scheme.
type PubKey [PubKeySize]byte

// PubKeyFromBytes copies bz into a public key. The point encoding is not
// checked here; VerifySignature rejects keys that do not decode.
func PubKeyFromBytes(bz []byte) (PubKey, error) {
	var pubKey PubKey
	if err := crypto.CheckSize(crypto.ErrPubKeySizeInvalid, KeyType, len(bz), PubKeySize); err != nil {
		return pubKey, err
	}
	copy(pubKey[:], bz)
	return pubKey, nil
}

// PubKeyFromExtended keeps the raw public key of x and discards its chain
// code.
func PubKeyFromExtended(x crypto.ExtendedPubKey) PubKey {
	var pubKey PubKey
	x.PubKeyWithoutChainCode(pubKey[:])
	return pubKey
}

// Address is the blake2b-224 hash of the public key.
func (pubKey PubKey) Address() crypto.Address {
	return crypto.AddressHash(pubKey[:])
}

// Bytes returns a copy of the public key.
func (pubKey PubKey) Bytes() []byte {
	bz := make([]byte, PubKeySize)
	copy(bz, pubKey[:])
	return bz
}

func (pubKey PubKey) VerifySignature(msg []byte, sig []byte) bool {
	// make sure we use the same algorithm to sign
	if len(sig) != SignatureSize {
		return false
	}

	return ed25519.VerifyWithOptions(ed25519.PublicKey(pubKey[:]), msg, sig, verifyOptions)
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeyEd25519{%X}", pubKey[:])
}

func (PubKey) Type() string {
	return KeyType
}

func (pubKey PubKey) Equals(other crypto.PubKey) bool {
	if otherEd, ok := other.(PubKey); ok {
		return bytes.Equal(pubKey[:], otherEd[:])
	}

	return false
}

// -------------------------------------

// Signature is an Ed25519 signature.
type Signature [SignatureSize]byte

// SignatureFromBytes copies bz into a signature.
func SignatureFromBytes(bz []byte) (Signature, error) {
	var sig Signature
	if err := crypto.CheckSize(crypto.ErrSignatureSizeInvalid, KeyType, len(bz), SignatureSize); err != nil {
		return sig, err
	}
	copy(sig[:], bz)
	return sig, nil
}

func (sig Signature) Bytes() []byte {
	bz := make([]byte, SignatureSize)
	copy(bz, sig[:])
	return bz
}
