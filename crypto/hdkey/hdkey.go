// Package hdkey adapts BIP32 extended keys from btcutil's hdkeychain to
// crypto.ExtendedPubKey, so that secp256k1 public keys can be taken out of
// them. Derivation itself stays in hdkeychain.
package hdkey

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/pkg/errors"

	"github.com/ledgerkit/chaincrypto/crypto"
)

const (
	compressedSize   = 33
	uncompressedSize = 65
)

var _ crypto.ExtendedPubKey = (*BIP32PubKey)(nil)

// BIP32PubKey is a neutered BIP32 extended key.
type BIP32PubKey struct {
	key *hdkeychain.ExtendedKey
}

// NewBIP32PubKey wraps key. A private extended key is neutered first.
func NewBIP32PubKey(key *hdkeychain.ExtendedKey) (*BIP32PubKey, error) {
	if key.IsPrivate() {
		neutered, err := key.Neuter()
		if err != nil {
			return nil, errors.Wrap(err, "hdkey: neuter")
		}
		key = neutered
	}
	return &BIP32PubKey{key: key}, nil
}

// ParseBIP32PubKey parses a base58 xpub or xprv string.
func ParseBIP32PubKey(str string) (*BIP32PubKey, error) {
	key, err := hdkeychain.NewKeyFromString(str)
	if err != nil {
		return nil, errors.Wrap(err, "hdkey: parse extended key")
	}
	return NewBIP32PubKey(key)
}

// Child derives the non-hardened child at index i.
func (x *BIP32PubKey) Child(i uint32) (*BIP32PubKey, error) {
	child, err := x.key.Derive(i)
	if err != nil {
		return nil, errors.Wrapf(err, "hdkey: derive child %d", i)
	}
	return &BIP32PubKey{key: child}, nil
}

// ChainCode returns a copy of the chain code.
func (x *BIP32PubKey) ChainCode() []byte {
	return append([]byte(nil), x.key.ChainCode()...)
}

// SupportsPubKeySize reports whether size is the compressed or
// uncompressed secp256k1 point size.
func (x *BIP32PubKey) SupportsPubKeySize(size int) bool {
	return size == compressedSize || size == uncompressedSize
}

// PubKeyWithoutChainCode writes the compressed point when len(dst) is 33
// and the uncompressed point when it is 65. Any other length is a
// programming error and panics.
func (x *BIP32PubKey) PubKeyWithoutChainCode(dst []byte) {
	pub, err := x.key.ECPubKey()
	if err != nil {
		// the key was parsed or derived by hdkeychain, which validated the point
		panic(err)
	}
	switch len(dst) {
	case compressedSize:
		copy(dst, pub.SerializeCompressed())
	case uncompressedSize:
		copy(dst, pub.SerializeUncompressed())
	default:
		panic(fmt.Sprintf("hdkey: unsupported public key size %d", len(dst)))
	}
}

func (x *BIP32PubKey) String() string {
	return x.key.String()
}
