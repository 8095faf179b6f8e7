// Package secp256k1eth implements secp256k1 keys the way Ethereum uses
// them: uncompressed public keys, Keccak-256 message hashing and 65 byte
// recoverable signatures.
package secp256k1eth

import (
	"bytes"
	"fmt"
	"io"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/ledgerkit/chaincrypto/crypto"
)

var (
	_ crypto.PrivKey                         = (*PrivKey)(nil)
	_ crypto.PubKey                          = PubKey{}
	_ crypto.AsymmetricKey[*PrivKey, PubKey] = Algorithm{}
	_ crypto.AsymmetricPublicKey[PubKey]     = Algorithm{}
)

// Algorithm is Ethereum flavoured secp256k1 ECDSA.
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

// -------------------------------------.

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

// PubKey performs the point-scalar multiplication from the privKey on the
// generator point to get the pubkey.
func (privKey *PrivKey) PubKey() crypto.PubKey {
	return privKey.pubKey()
}

func (privKey *PrivKey) pubKey() PubKey {
	priv, pub := secp256k1.PrivKeyFromBytes(privKey.key[:])
	defer priv.Zero()

	var pubKey PubKey
	copy(pubKey[:], pub.SerializeUncompressed())
	return pubKey
}

// Sign creates an ECDSA signature on curve Secp256k1, using Keccak-256 on
// the msg. The returned signature will be of the form R || S || V (in
// lower-S form).
func (privKey *PrivKey) Sign(msg []byte) ([]byte, error) {
	privateObject, err := ethcrypto.ToECDSA(privKey.key[:])
	if err != nil {
		return nil, err
	}

	return ethcrypto.Sign(ethcrypto.Keccak256(msg), privateObject)
}

func (*PrivKey) Type() string {
	return KeyType
}

func (privKey *PrivKey) Zeroize() {
	crypto.Zeroize(privKey.key[:])
}

func (*PrivKey) String() string   { return "PrivKeySecp256k1eth{...}" }
func (*PrivKey) GoString() string { return "PrivKeySecp256k1eth{...}" }

// -------------------------------------

// PubKey is the uncompressed form of the pubkey. The first byte is 0x04,
// followed by the (x,y)-coordinates.
type PubKey [PubKeySize]byte

// PubKeyFromBytes copies bz into a public key without checking that it is
// a point on the curve.
func PubKeyFromBytes(bz []byte) (PubKey, error) {
	var pubKey PubKey
	if err := crypto.CheckSize(crypto.ErrPubKeySizeInvalid, KeyType, len(bz), PubKeySize); err != nil {
		return pubKey, err
	}
	copy(pubKey[:], bz)
	return pubKey, nil
}

// PubKeyFromExtended takes the uncompressed public key out of an extended
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

// EthAddress returns a Ethereum style addresses: Last_20_Bytes(KECCAK256(pubkey)).
func (pubKey PubKey) EthAddress() common.Address {
	return common.BytesToAddress(ethcrypto.Keccak256(pubKey[1:])[12:])
}

func (pubKey PubKey) Bytes() []byte {
	bz := make([]byte, PubKeySize)
	copy(bz, pubKey[:])
	return bz
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeySecp256k1eth{%X}", pubKey[:])
}

func (pubKey PubKey) Equals(other crypto.PubKey) bool {
	if otherSecp, ok := other.(PubKey); ok {
		return bytes.Equal(pubKey[:], otherSecp[:])
	}
	return false
}

func (PubKey) Type() string {
	return KeyType
}

// VerifySignature verifies a signature of the form R || S || V.
// It rejects signatures which are not in lower-S form.
func (pubKey PubKey) VerifySignature(msg []byte, sigStr []byte) bool {
	if len(sigStr) != SignatureSize {
		return false
	}

	hash := ethcrypto.Keccak256(msg)
	return ethcrypto.VerifySignature(pubKey[:], hash, sigStr[:64])
}

// -------------------------------------

// Signature is an R || S || V secp256k1 signature.
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
