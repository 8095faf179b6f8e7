// Package dilithium implements CRYSTALS-Dilithium mode 2 keys. The secret
// key is the 32-byte seed the expanded key pair is derived from.
package dilithium

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/dilithium/mode2"

	"github.com/ledgerkit/chaincrypto/crypto"
)

const (
	// PrivKeySize is the size of the seed.
	PrivKeySize   = mode2.SeedSize
	PubKeySize    = mode2.PublicKeySize
	SignatureSize = mode2.SignatureSize

	KeyType = "dilithium2"

	SecretBech32HRP = "dilithium2_sk"
	PublicBech32HRP = "dilithium2_pk"
)

var (
	_ crypto.PrivKey                         = (*PrivKey)(nil)
	_ crypto.PubKey                          = PubKey{}
	_ crypto.AsymmetricKey[*PrivKey, PubKey] = Algorithm{}
	_ crypto.AsymmetricPublicKey[PubKey]     = Algorithm{}
)

// Algorithm is Dilithium mode 2.
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

// -------------------------------------

// PrivKey is a Dilithium2 seed.
type PrivKey struct {
	_   [0]func() // not comparable
	key [PrivKeySize]byte
}

func GenPrivKey() *PrivKey {
	return GenPrivKeyFromReader(crypto.CReader())
}

// GenPrivKeyFromReader reads exactly PrivKeySize bytes from rand and panics
// if rand fails.
func GenPrivKeyFromReader(rand io.Reader) *PrivKey {
	privKey := new(PrivKey)
	crypto.ReadEntropy(rand, privKey.key[:])
	return privKey
}

// GenPrivKeyFromSecret hashes the secret with SHA2, and uses
// that 32 byte output as the seed.
// NOTE: secret should be the output of a KDF like bcrypt,
// if it's derived from user input.
func GenPrivKeyFromSecret(secret []byte) *PrivKey {
	seed := crypto.Sha256(secret) // Not Ripemd160 because we want 32 bytes.
	defer crypto.Zeroize(seed)

	privKey := new(PrivKey)
	copy(privKey.key[:], seed)
	return privKey
}

func PrivKeyFromBytes(bz []byte) (*PrivKey, error) {
	if err := crypto.CheckSize(crypto.ErrPrivKeySizeInvalid, KeyType, len(bz), PrivKeySize); err != nil {
		return nil, err
	}
	privKey := new(PrivKey)
	copy(privKey.key[:], bz)
	return privKey, nil
}

func (privKey *PrivKey) Bytes() []byte {
	bz := make([]byte, PrivKeySize)
	copy(bz, privKey.key[:])
	return bz
}

// Sign produces a deterministic signature on msg.
func (privKey *PrivKey) Sign(msg []byte) ([]byte, error) {
	_, sk := mode2.NewKeyFromSeed(&privKey.key)

	sig := make([]byte, SignatureSize)
	mode2.SignTo(sk, msg, sig)
	return sig, nil
}

func (privKey *PrivKey) PubKey() crypto.PubKey {
	return privKey.pubKey()
}

func (privKey *PrivKey) pubKey() PubKey {
	pk, _ := mode2.NewKeyFromSeed(&privKey.key)

	var pubKey PubKey
	pk.Pack((*[PubKeySize]byte)(&pubKey))
	return pubKey
}

func (*PrivKey) Type() string {
	return KeyType
}

func (privKey *PrivKey) Zeroize() {
	crypto.Zeroize(privKey.key[:])
}

func (*PrivKey) String() string   { return "PrivKeyDil2{...}" }
func (*PrivKey) GoString() string { return "PrivKeyDil2{...}" }

// -------------------------------------

// PubKey is a packed Dilithium2 public key.
type PubKey [PubKeySize]byte

// PubKeyFromBytes copies bz into a public key without unpacking it.
func PubKeyFromBytes(bz []byte) (PubKey, error) {
	var pubKey PubKey
	if err := crypto.CheckSize(crypto.ErrPubKeySizeInvalid, KeyType, len(bz), PubKeySize); err != nil {
		return pubKey, err
	}
	copy(pubKey[:], bz)
	return pubKey, nil
}

func (pubKey PubKey) Address() crypto.Address {
	return crypto.AddressHash(pubKey[:])
}

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

	var pk mode2.PublicKey
	pk.Unpack((*[PubKeySize]byte)(&pubKey))
	return mode2.Verify(&pk, msg, sig)
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeyDil2{%X}", pubKey[:])
}

func (PubKey) Type() string {
	return KeyType
}

func (pubKey PubKey) Equals(other crypto.PubKey) bool {
	if otherDil, ok := other.(PubKey); ok {
		return bytes.Equal(pubKey[:], otherDil[:])
	}
	return false
}

// -------------------------------------

// Signature is a packed Dilithium2 signature.
type Signature [SignatureSize]byte

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
