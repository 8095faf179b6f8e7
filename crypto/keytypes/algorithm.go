package keytypes

import (
	"fmt"

	"github.com/ledgerkit/chaincrypto/crypto/dilithium"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519bip32"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519extended"
	"github.com/ledgerkit/chaincrypto/crypto/ed448"
	"github.com/ledgerkit/chaincrypto/crypto/secp256k1"
	"github.com/ledgerkit/chaincrypto/crypto/secp256k1eth"
	"github.com/ledgerkit/chaincrypto/crypto/sr25519"
)

// Algorithm enumerates the supported key algorithms.
type Algorithm uint8

const (
	Ed25519 Algorithm = iota + 1
	Ed25519Extended
	Ed25519BIP32
	Secp256k1
	Secp256k1Eth
	Sr25519
	Ed448
	Dilithium2
)

// ErrUnknownAlgorithm is returned when a key type string or enum value does
// not name a supported algorithm.
type ErrUnknownAlgorithm struct {
	KeyType string
}

func (e ErrUnknownAlgorithm) Error() string {
	return fmt.Sprintf("unsupported key type: %q", e.KeyType)
}

var algorithmNames = map[Algorithm]string{
	Ed25519:         ed25519.KeyType,
	Ed25519Extended: ed25519extended.KeyType,
	Ed25519BIP32:    ed25519bip32.KeyType,
	Secp256k1:       secp256k1.KeyType,
	Secp256k1Eth:    secp256k1eth.KeyType,
	Sr25519:         sr25519.KeyType,
	Ed448:           ed448.KeyType,
	Dilithium2:      dilithium.KeyType,
}

// String returns the key type of a.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ParseAlgorithm returns the algorithm whose key type is keyType.
func ParseAlgorithm(keyType string) (Algorithm, error) {
	for alg, name := range algorithmNames {
		if name == keyType {
			return alg, nil
		}
	}
	return 0, ErrUnknownAlgorithm{KeyType: keyType}
}

// Scheme returns the scheme implementing a.
func (a Algorithm) Scheme() (Scheme, error) {
	s, ok := byAlgorithm[a]
	if !ok {
		return nil, ErrUnknownAlgorithm{KeyType: a.String()}
	}
	return s, nil
}
