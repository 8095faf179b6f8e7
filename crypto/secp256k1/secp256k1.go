// Package secp256k1 implements ECDSA keys on the secp256k1 curve in the
// compressed form used by Bitcoin style ledgers. Messages are hashed with
// SHA-256 and signatures are the 64 byte R || S concatenation in lower-S
// form.
package secp256k1

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/pkg/errors"

	"github.com/ledgerkit/chaincrypto/crypto"
)

const (
	PrivKeySize = 32
	// PubKeySize is the size of a compressed point: a 0x02 or 0x03 prefix
	// byte followed by the x coordinate.
	PubKeySize = 33
	// SignatureSize is the size of an R || S signature.
	SignatureSize = 64

	KeyType = "secp256k1"

	SecretBech32HRP = "secp256k1_sk"
	PublicBech32HRP = "secp256k1_pk"
)

// ErrZeroScalar is returned when signing with a secret key that reduces to
// zero modulo the curve order.
var ErrZeroScalar = errors.New("secp256k1: secret scalar is zero")

var (
	_ crypto.PrivKey                         = (*PrivKey)(nil)
	_ crypto.PubKey                          = PubKey{}
	_ crypto.AsymmetricKey[*PrivKey, PubKey] = Algorithm{}
	_ crypto.AsymmetricPublicKey[PubKey]     = Algorithm{}
)

// Algorithm is secp256k1 ECDSA with compressed public keys.
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

// PrivKey is a 32 byte big endian scalar.
type PrivKey struct {
	_   [0]func() // not comparable
	key [PrivKeySize]byte
}

// GenPrivKey generates a new ECDSA private key on curve secp256k1 private key.
// It uses OS randomness to generate the private key.
func GenPrivKey() *PrivKey {
	return GenPrivKeyFromReader(crypto.CReader())
}

// GenPrivKeyFromReader reads exactly PrivKeySize bytes from rand. The bytes
// are used as is; a value outside [1, n) is reduced modulo the curve order
// when the key is used. It panics if rand fails.
func GenPrivKeyFromReader(rand io.Reader) *PrivKey {
	privKey := new(PrivKey)
	crypto.ReadEntropy(rand, privKey.key[:])
	return privKey
}

var one = new(big.Int).SetInt64(1)

// GenPrivKeySecp256k1 hashes the secret with SHA2, and uses
// that 32 byte output to create the private key.
//
// It makes sure the private key is a valid field element by setting:
//
// c = sha256(secret)
// k = (c mod (n − 1)) + 1, where n = curve order.
//
// NOTE: secret should be the output of a KDF like bcrypt,
// if it's derived from user input.
func GenPrivKeySecp256k1(secret []byte) *PrivKey {
	secHash := crypto.Sha256(secret)
	fe := new(big.Int).SetBytes(secHash)
	n := new(big.Int).Sub(secp256k1.S256().N, one)
	fe.Mod(fe, n)
	fe.Add(fe, one)

	privKey := new(PrivKey)
	fe.FillBytes(privKey.key[:])
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

// PubKey performs the point-scalar multiplication from the privKey on the
// generator point to get the pubkey.
func (privKey *PrivKey) PubKey() crypto.PubKey {
	return privKey.pubKey()
}

func (privKey *PrivKey) pubKey() PubKey {
	priv, pub := secp256k1.PrivKeyFromBytes(privKey.key[:])
	defer priv.Zero()

	var pubKey PubKey
	copy(pubKey[:], pub.SerializeCompressed())
	return pubKey
}

// Sign creates an ECDSA signature on curve Secp256k1, using SHA256 on the msg.
// The returned signature will be of the form R || S (in lower-S form).
func (privKey *PrivKey) Sign(msg []byte) ([]byte, error) {
	priv, _ := secp256k1.PrivKeyFromBytes(privKey.key[:])
	defer priv.Zero()
	if priv.Key.IsZero() {
		return nil, ErrZeroScalar
	}

	sig, err := ecdsa.SignCompact(priv, crypto.Sha256(msg), false)
	if err != nil {
		return nil, errors.Wrap(err, "secp256k1: sign")
	}

	// remove the first byte which is compactSigRecoveryCode
	return sig[1:], nil
}

func (*PrivKey) Type() string {
	return KeyType
}

func (privKey *PrivKey) Zeroize() {
	crypto.Zeroize(privKey.key[:])
}

func (*PrivKey) String() string   { return "PrivKeySecp256k1{...}" }
func (*PrivKey) GoString() string { return "PrivKeySecp256k1{...}" }

// -------------------------------------

// PubKey is a compressed secp256k1 point. The prefix byte is 0x02 if the y
// coordinate is even and 0x03 otherwise, followed by the x coordinate.
type PubKey [PubKeySize]byte

// PubKeyFromBytes copies bz into a public key. The bytes are not checked to
// be a point on the curve; VerifySignature fails for keys that are not.
func PubKeyFromBytes(bz []byte) (PubKey, error) {
	var pubKey PubKey
	if err := crypto.CheckSize(crypto.ErrPubKeySizeInvalid, KeyType, len(bz), PubKeySize); err != nil {
		return pubKey, err
	}
	copy(pubKey[:], bz)
	return pubKey, nil
}

// PubKeyFromExtended takes the compressed public key out of an extended
// public key.
func PubKeyFromExtended(x crypto.ExtendedPubKey) PubKey {
	var pubKey PubKey
	x.PubKeyWithoutChainCode(pubKey[:])
	return pubKey
}

func (Algorithm) PublicFromExtended(x crypto.ExtendedPubKey) PubKey { return PubKeyFromExtended(x) }

func (pubKey PubKey) Address() crypto.Address {
	return crypto.AddressHash(pubKey[:])
}

func (pubKey PubKey) Bytes() []byte {
	bz := make([]byte, PubKeySize)
	copy(bz, pubKey[:])
	return bz
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeySecp256k1{%X}", pubKey[:])
}

func (PubKey) Type() string {
	return KeyType
}

func (pubKey PubKey) Equals(other crypto.PubKey) bool {
	if otherSecp, ok := other.(PubKey); ok {
		return bytes.Equal(pubKey[:], otherSecp[:])
	}
	return false
}

// VerifySignature verifies a signature of the form R || S.
// It rejects signatures which are not in lower-S form.
func (pubKey PubKey) VerifySignature(msg []byte, sigStr []byte) bool {
	if len(sigStr) != SignatureSize {
		return false
	}
	pub, err := secp256k1.ParsePubKey(pubKey[:])
	if err != nil {
		return false
	}

	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(sigStr[:32]) || s.SetByteSlice(sigStr[32:]) {
		return false
	}
	// Reject malleable signatures. libsecp256k1 does this check but btcec
	// doesn't.
	if s.IsOverHalfOrder() {
		return false
	}

	return ecdsa.NewSignature(&r, &s).Verify(crypto.Sha256(msg), pub)
}

// -------------------------------------

// Signature is an R || S secp256k1 signature.
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
