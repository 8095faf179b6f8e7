// Package ed25519extended implements Ed25519 keys whose secret is stored
// already expanded: the clamped scalar kL followed by the nonce key kR.
// Public keys and signatures are plain Ed25519 ones.
package ed25519extended

import (
	"crypto/sha512"
	"io"

	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519"
	"github.com/ledgerkit/chaincrypto/crypto/internal/edwards"
)

const (
	// PrivKeySize is the size of kL || kR.
	PrivKeySize = edwards.ExtendedSize
	// PubKeySize is the size of the public key, shared with ed25519.
	PubKeySize = ed25519.PubKeySize
	// SignatureSize is the size of a signature, shared with ed25519.
	SignatureSize = ed25519.SignatureSize

	KeyType = "ed25519extended"

	// SecretBech32HRP is the bech32 human readable part of secret keys.
	// Public keys use ed25519.PublicBech32HRP.
	SecretBech32HRP = "ed25519e_sk"
)

var (
	_ crypto.PrivKey                                 = (*PrivKey)(nil)
	_ crypto.AsymmetricKey[*PrivKey, ed25519.PubKey] = Algorithm{}
)

// Algorithm is Ed25519 with extended secret keys. Its public key algorithm
// is ed25519.Algorithm.
type Algorithm struct{}

func (Algorithm) PublicAlgorithm() crypto.AsymmetricPublicKey[ed25519.PubKey] {
	return ed25519.Algorithm{}
}

func (Algorithm) SecretBech32HRP() string { return SecretBech32HRP }
func (Algorithm) SecretKeySize() int      { return PrivKeySize }

func (Algorithm) Generate(rand io.Reader) *PrivKey { return GenPrivKeyFromReader(rand) }

func (Algorithm) ComputePublic(secret *PrivKey) ed25519.PubKey { return secret.pubKey() }

func (Algorithm) SecretFromBinary(data []byte) (*PrivKey, error) { return PrivKeyFromBytes(data) }

// PrivKey is an extended Ed25519 secret key.
type PrivKey struct {
	_   [0]func() // not comparable
	key [PrivKeySize]byte
}

// GenPrivKey generates a new secret key using OS randomness.
func GenPrivKey() *PrivKey {
	return GenPrivKeyFromReader(crypto.CReader())
}

// GenPrivKeyFromReader reads PrivKeySize bytes from rand and clamps the
// scalar half. It panics if rand fails.
func GenPrivKeyFromReader(rand io.Reader) *PrivKey {
	privKey := new(PrivKey)
	crypto.ReadEntropy(rand, privKey.key[:])
	edwards.Clamp(privKey.key[:32])
	return privKey
}

// FromEd25519 expands an Ed25519 seed into the extended form. Both keys
// have the same public key.
func FromEd25519(seed *ed25519.PrivKey) *PrivKey {
	seedBytes := seed.Bytes()
	defer crypto.Zeroize(seedBytes)

	digest := sha512.Sum512(seedBytes)
	defer crypto.Zeroize(digest[:])

	privKey := new(PrivKey)
	copy(privKey.key[:], digest[:])
	edwards.Clamp(privKey.key[:32])
	return privKey
}

// PrivKeyFromBytes copies bz into a new secret key. The clamping bits are
// not checked.
func PrivKeyFromBytes(bz []byte) (*PrivKey, error) {
	if err := crypto.CheckSize(crypto.ErrPrivKeySizeInvalid, KeyType, len(bz), PrivKeySize); err != nil {
		return nil, err
	}
	privKey := new(PrivKey)
	copy(privKey.key[:], bz)
	return privKey, nil
}

// Bytes returns a copy of kL || kR.
func (privKey *PrivKey) Bytes() []byte {
	bz := make([]byte, PrivKeySize)
	copy(bz, privKey.key[:])
	return bz
}

func (privKey *PrivKey) Sign(msg []byte) ([]byte, error) {
	sig := edwards.Sign(privKey.key[:], privKey.pubKey(), msg)
	return sig[:], nil
}

func (privKey *PrivKey) PubKey() crypto.PubKey {
	return privKey.pubKey()
}

func (privKey *PrivKey) pubKey() ed25519.PubKey {
	return edwards.PublicKey(privKey.key[:])
}

func (*PrivKey) Type() string {
	return KeyType
}

func (privKey *PrivKey) Zeroize() {
	crypto.Zeroize(privKey.key[:])
}

func (*PrivKey) String() string   { return "PrivKeyEd25519Extended{...}" }
func (*PrivKey) GoString() string { return "PrivKeyEd25519Extended{...}" }
