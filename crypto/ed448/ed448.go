// Package ed448 implements Ed448 (RFC 8032) keys on Curve448 with an empty
// signing context.
package ed448

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/ed448"

	"github.com/ledgerkit/chaincrypto/crypto"
)

const (
	// PrivKeySize is the size of an Ed448 seed.
	PrivKeySize = ed448.SeedSize
	PubKeySize  = ed448.PublicKeySize
	// SignatureSize is the size of the R || S encoding.
	SignatureSize = ed448.SignatureSize

	KeyType = "ed448"

	SecretBech32HRP = "ed448_sk"
	PublicBech32HRP = "ed448_pk"
)

var (
	_ crypto.PrivKey                         = (*PrivKey)(nil)
	_ crypto.PubKey                          = PubKey{}
	_ crypto.AsymmetricKey[*PrivKey, PubKey] = Algorithm{}
	_ crypto.AsymmetricPublicKey[PubKey]     = Algorithm{}
)

// Algorithm is Ed448.
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

// PrivKey is an Ed448 seed.
type PrivKey struct {
	_   [0]func() // not comparable
	key [PrivKeySize]byte
}

// GenPrivKey generates a new Ed448 private key from OS randomness.
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

// PrivKeyFromBytes copies bz into a new secret key.
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

func (privKey *PrivKey) expand() ed448.PrivateKey {
	return ed448.NewKeyFromSeed(privKey.key[:])
}

func (privKey *PrivKey) Sign(msg []byte) ([]byte, error) {
	priv := privKey.expand()
	defer crypto.Zeroize(priv)
	return ed448.Sign(priv, msg, ""), nil
}

func (privKey *PrivKey) PubKey() crypto.PubKey {
	return privKey.pubKey()
}

func (privKey *PrivKey) pubKey() PubKey {
	priv := privKey.expand()
	defer crypto.Zeroize(priv)

	var pubKey PubKey
	copy(pubKey[:], priv[PrivKeySize:])
	return pubKey
}

func (*PrivKey) Type() string {
	return KeyType
}

func (privKey *PrivKey) Zeroize() {
	crypto.Zeroize(privKey.key[:])
}

func (*PrivKey) String() string   { return "PrivKeyEd448{...}" }
func (*PrivKey) GoString() string { return "PrivKeyEd448{...}" }

// -------------------------------------

// PubKey is an encoded Ed448 point.
type PubKey [PubKeySize]byte

// PubKeyFromBytes copies bz into a public key without decoding the point.
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
	if len(sig) != SignatureSize {
		return false
	}
	return ed448.Verify(pubKey[:], msg, sig, "")
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeyEd448{%X}", pubKey[:])
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

// Signature is an Ed448 signature.
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
