// Package ed25519bip32 implements the BIP32-Ed25519 key format used by
// hierarchical wallets. A secret key (XPrv) is an extended Ed25519 secret
// followed by a chain code; a public key (XPub) is the Ed25519 public key
// followed by the same chain code. Child key derivation is not part of this
// package.
package ed25519bip32

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519"
	"github.com/ledgerkit/chaincrypto/crypto/internal/edwards"
)

const (
	// ChainCodeSize is the size of the chain code carried by both key halves.
	ChainCodeSize = 32
	// PrivKeySize is the size of kL || kR || chain code.
	PrivKeySize = edwards.ExtendedSize + ChainCodeSize
	// PubKeySize is the size of public key || chain code.
	PubKeySize = ed25519.PubKeySize + ChainCodeSize
	// SignatureSize is the size of a signature, shared with ed25519.
	SignatureSize = ed25519.SignatureSize

	KeyType = "ed25519bip32"

	SecretBech32HRP = "xprv"
	PublicBech32HRP = "xpub"
)

var (
	_ crypto.PrivKey                         = (*PrivKey)(nil)
	_ crypto.PubKey                          = PubKey{}
	_ crypto.ExtendedPubKey                  = PubKey{}
	_ crypto.AsymmetricKey[*PrivKey, PubKey] = Algorithm{}
	_ crypto.AsymmetricPublicKey[PubKey]     = Algorithm{}
)

// Algorithm is the BIP32-Ed25519 signing algorithm.
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

// PrivKey is an extended private key (XPrv).
type PrivKey struct {
	_   [0]func() // not comparable
	key [PrivKeySize]byte
}

// GenPrivKey generates a new secret key using OS randomness.
func GenPrivKey() *PrivKey {
	return GenPrivKeyFromReader(crypto.CReader())
}

// GenPrivKeyFromReader reads PrivKeySize bytes from rand and normalizes the
// scalar half so that it is usable for BIP32 derivation. It panics if rand
// fails.
func GenPrivKeyFromReader(rand io.Reader) *PrivKey {
	privKey := new(PrivKey)
	crypto.ReadEntropy(rand, privKey.key[:])
	edwards.ClampBIP32(privKey.key[:32])
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

// ChainCode returns a copy of the chain code.
func (privKey *PrivKey) ChainCode() []byte {
	cc := make([]byte, ChainCodeSize)
	copy(cc, privKey.key[edwards.ExtendedSize:])
	return cc
}

func (privKey *PrivKey) Sign(msg []byte) ([]byte, error) {
	sig := edwards.Sign(privKey.key[:edwards.ExtendedSize], edwards.PublicKey(privKey.key[:]), msg)
	return sig[:], nil
}

func (privKey *PrivKey) PubKey() crypto.PubKey {
	return privKey.pubKey()
}

func (privKey *PrivKey) pubKey() PubKey {
	var pubKey PubKey
	pk := edwards.PublicKey(privKey.key[:])
	copy(pubKey[:ed25519.PubKeySize], pk[:])
	copy(pubKey[ed25519.PubKeySize:], privKey.key[edwards.ExtendedSize:])
	return pubKey
}

func (*PrivKey) Type() string {
	return KeyType
}

func (privKey *PrivKey) Zeroize() {
	crypto.Zeroize(privKey.key[:])
}

func (*PrivKey) String() string   { return "PrivKeyEd25519Bip32{...}" }
func (*PrivKey) GoString() string { return "PrivKeyEd25519Bip32{...}" }

// -------------------------------------

// PubKey is an extended public key (XPub).
type PubKey [PubKeySize]byte

// PubKeyFromBytes copies bz into a public key.
func PubKeyFromBytes(bz []byte) (PubKey, error) {
	var pubKey PubKey
	if err := crypto.CheckSize(crypto.ErrPubKeySizeInvalid, KeyType, len(bz), PubKeySize); err != nil {
		return pubKey, err
	}
	copy(pubKey[:], bz)
	return pubKey, nil
}

// SupportsPubKeySize implements crypto.ExtendedPubKey. Only the 32 byte
// Ed25519 point is available.
func (PubKey) SupportsPubKeySize(size int) bool {
	return size == ed25519.PubKeySize
}

// PubKeyWithoutChainCode implements crypto.ExtendedPubKey.
func (pubKey PubKey) PubKeyWithoutChainCode(dst []byte) {
	copy(dst, pubKey[:ed25519.PubKeySize])
}

// ChainCode returns a copy of the chain code.
func (pubKey PubKey) ChainCode() []byte {
	cc := make([]byte, ChainCodeSize)
	copy(cc, pubKey[ed25519.PubKeySize:])
	return cc
}

// Ed25519 returns the plain Ed25519 public key, without the chain code.
func (pubKey PubKey) Ed25519() ed25519.PubKey {
	return ed25519.PubKeyFromExtended(pubKey)
}

// Address hashes the raw public key only; the chain code is not part of
// the address.
func (pubKey PubKey) Address() crypto.Address {
	return pubKey.Ed25519().Address()
}

func (pubKey PubKey) Bytes() []byte {
	bz := make([]byte, PubKeySize)
	copy(bz, pubKey[:])
	return bz
}

func (pubKey PubKey) VerifySignature(msg []byte, sig []byte) bool {
	return pubKey.Ed25519().VerifySignature(msg, sig)
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeyEd25519Bip32{%X}", pubKey[:])
}

func (PubKey) Type() string {
	return KeyType
}

func (pubKey PubKey) Equals(other crypto.PubKey) bool {
	if otherX, ok := other.(PubKey); ok {
		return bytes.Equal(pubKey[:], otherX[:])
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
