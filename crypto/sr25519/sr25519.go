// Package sr25519 implements Schnorr signatures over the Ristretto group
// (schnorrkel), as used by Substrate based ledgers.
package sr25519

import (
	"bytes"
	"fmt"
	"io"

	"github.com/oasisprotocol/curve25519-voi/primitives/sr25519"
	"github.com/pkg/errors"

	"github.com/ledgerkit/chaincrypto/crypto"
)

const (
	// PrivKeySize is the size of a mini secret key.
	PrivKeySize = 32
	// PubKeySize is the size of a compressed Ristretto point.
	PubKeySize = 32
	// SignatureSize is the size of a schnorrkel signature.
	SignatureSize = 64

	KeyType = "sr25519"

	SecretBech32HRP = "sr25519_sk"
	PublicBech32HRP = "sr25519_pk"
)

var signingCtx = sr25519.NewSigningContext([]byte{})

var (
	_ crypto.PrivKey                         = (*PrivKey)(nil)
	_ crypto.PubKey                          = PubKey{}
	_ crypto.AsymmetricKey[*PrivKey, PubKey] = Algorithm{}
	_ crypto.AsymmetricPublicKey[PubKey]     = Algorithm{}
)

// Algorithm is sr25519.
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

// PrivKey is a sr25519 mini secret key. The expanded key pair is derived
// on use and never stored.
type PrivKey struct {
	_   [0]func() // not comparable
	key [PrivKeySize]byte
}

// GenPrivKey generates a new sr25519 private key.
// It uses OS randomness to generate the private key.
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

// PrivKeyFromBytes copies bz into a new secret key. Every 32 byte string is
// a valid mini secret key.
func PrivKeyFromBytes(bz []byte) (*PrivKey, error) {
	if err := crypto.CheckSize(crypto.ErrPrivKeySizeInvalid, KeyType, len(bz), PrivKeySize); err != nil {
		return nil, err
	}
	privKey := new(PrivKey)
	copy(privKey.key[:], bz)
	return privKey, nil
}

var zeroSecretKey [sr25519.SecretKeySize]byte

// withSecretKey expands the mini secret key for the duration of fn. The
// expanded nonce is overwritten when fn returns. curve25519-voi offers no
// way to clear the scalar in place, so it is only dropped.
func (privKey *PrivKey) withSecretKey(fn func(sk *sr25519.SecretKey)) {
	var msk sr25519.MiniSecretKey
	defer crypto.Zeroize(msk[:])
	if err := msk.UnmarshalBinary(privKey.key[:]); err != nil {
		// the length is fixed, so this cannot happen
		panic(err)
	}

	sk := msk.ExpandEd25519()
	defer func() {
		if err := sk.UnmarshalBinary(zeroSecretKey[:]); err != nil {
			panic(err)
		}
	}()
	fn(sk)
}

func (privKey *PrivKey) Bytes() []byte {
	bz := make([]byte, PrivKeySize)
	copy(bz, privKey.key[:])
	return bz
}

// Sign produces a signature on the provided message. Signatures are
// randomized, so signing the same message twice gives different results.
func (privKey *PrivKey) Sign(msg []byte) ([]byte, error) {
	st := signingCtx.NewTranscriptBytes(msg)

	var (
		sig *sr25519.Signature
		err error
	)
	privKey.withSecretKey(func(sk *sr25519.SecretKey) {
		sig, err = sk.KeyPair().Sign(crypto.CReader(), st)
	})
	if err != nil {
		return nil, errors.Wrap(err, "sr25519: failed to sign message")
	}

	sigBytes, err := sig.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "sr25519: failed to serialize signature")
	}

	return sigBytes, nil
}

func (privKey *PrivKey) PubKey() crypto.PubKey {
	return privKey.pubKey()
}

func (privKey *PrivKey) pubKey() PubKey {
	var (
		b   []byte
		err error
	)
	privKey.withSecretKey(func(sk *sr25519.SecretKey) {
		b, err = sk.PublicKey().MarshalBinary()
	})
	if err != nil {
		panic("sr25519: failed to serialize public key: " + err.Error())
	}

	var pubKey PubKey
	copy(pubKey[:], b)
	return pubKey
}

func (*PrivKey) Type() string {
	return KeyType
}

func (privKey *PrivKey) Zeroize() {
	crypto.Zeroize(privKey.key[:])
}

func (*PrivKey) String() string   { return "PrivKeySr25519{...}" }
func (*PrivKey) GoString() string { return "PrivKeySr25519{...}" }

// -------------------------------------

// PubKey is a compressed Ristretto point.
type PubKey [PubKeySize]byte

// PubKeyFromBytes copies bz into a public key. Whether the bytes encode a
// valid point is only checked when verifying.
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

func (pubKey PubKey) VerifySignature(msg []byte, sigBytes []byte) bool {
	srpk, sig, err := decodeVerifyInput(pubKey, sigBytes)
	if err != nil {
		return false
	}
	return srpk.Verify(signingCtx.NewTranscriptBytes(msg), sig)
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeySr25519{%X}", pubKey[:])
}

func (PubKey) Type() string {
	return KeyType
}

func (pubKey PubKey) Equals(other crypto.PubKey) bool {
	if otherPk, ok := other.(PubKey); ok {
		return bytes.Equal(pubKey[:], otherPk[:])
	}
	return false
}

// -------------------------------------

// Signature is a schnorrkel signature.
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
