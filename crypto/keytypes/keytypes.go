// Package keytypes dispatches at runtime to the fixed set of key algorithms.
package keytypes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/dilithium"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519bip32"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519extended"
	"github.com/ledgerkit/chaincrypto/crypto/ed448"
	"github.com/ledgerkit/chaincrypto/crypto/secp256k1"
	"github.com/ledgerkit/chaincrypto/crypto/secp256k1eth"
	"github.com/ledgerkit/chaincrypto/crypto/sr25519"
)

// schemes is in Algorithm order. When two schemes share a public HRP the
// first one wins public key lookups.
var schemes = []Scheme{
	newScheme[*ed25519.PrivKey, ed25519.PubKey](Ed25519, ed25519.KeyType, ed25519.Algorithm{}),
	newScheme[*ed25519extended.PrivKey, ed25519.PubKey](Ed25519Extended, ed25519extended.KeyType, ed25519extended.Algorithm{}),
	newScheme[*ed25519bip32.PrivKey, ed25519bip32.PubKey](Ed25519BIP32, ed25519bip32.KeyType, ed25519bip32.Algorithm{}),
	newScheme[*secp256k1.PrivKey, secp256k1.PubKey](Secp256k1, secp256k1.KeyType, secp256k1.Algorithm{}),
	newScheme[*secp256k1eth.PrivKey, secp256k1eth.PubKey](Secp256k1Eth, secp256k1eth.KeyType, secp256k1eth.Algorithm{}),
	newScheme[*sr25519.PrivKey, sr25519.PubKey](Sr25519, sr25519.KeyType, sr25519.Algorithm{}),
	newScheme[*ed448.PrivKey, ed448.PubKey](Ed448, ed448.KeyType, ed448.Algorithm{}),
	newScheme[*dilithium.PrivKey, dilithium.PubKey](Dilithium2, dilithium.KeyType, dilithium.Algorithm{}),
}

var (
	byAlgorithm = make(map[Algorithm]Scheme, len(schemes))
	byKeyType   = make(map[string]Scheme, len(schemes))
	bySecretHRP = make(map[string]Scheme, len(schemes))
	byPublicHRP = make(map[string]Scheme, len(schemes))
)

func init() {
	for _, s := range schemes {
		byAlgorithm[s.Algorithm()] = s
		byKeyType[s.KeyType()] = s
		bySecretHRP[s.SecretBech32HRP()] = s
		if _, ok := byPublicHRP[s.PublicBech32HRP()]; !ok {
			byPublicHRP[s.PublicBech32HRP()] = s
		}
	}
}

// GenPrivKey generates a key of the given type from OS randomness.
func GenPrivKey(keyType string) (crypto.PrivKey, error) {
	s, err := SchemeByKeyType(keyType)
	if err != nil {
		return nil, err
	}
	return s.Generate(crypto.CReader()), nil
}

// SchemeByKeyType returns the scheme whose secret keys have type keyType.
func SchemeByKeyType(keyType string) (Scheme, error) {
	s, ok := byKeyType[keyType]
	if !ok {
		return nil, ErrUnknownAlgorithm{KeyType: keyType}
	}
	return s, nil
}

// SchemeBySecretHRP returns the scheme whose secret keys are encoded with
// the bech32 prefix hrp.
func SchemeBySecretHRP(hrp string) (Scheme, bool) {
	s, ok := bySecretHRP[hrp]
	return s, ok
}

// SchemeByPublicHRP returns the scheme whose public keys are encoded with
// the bech32 prefix hrp.
func SchemeByPublicHRP(hrp string) (Scheme, bool) {
	s, ok := byPublicHRP[hrp]
	return s, ok
}

// Schemes returns all schemes in Algorithm order.
func Schemes() []Scheme {
	return append([]Scheme(nil), schemes...)
}

func SupportedKeyTypesStr() string {
	keyTypes := ListSupportedKeyTypes()
	for i, k := range keyTypes {
		keyTypes[i] = fmt.Sprintf("%q", k)
	}
	return strings.Join(keyTypes, ", ")
}

func ListSupportedKeyTypes() []string {
	keyTypesSlice := make([]string, 0, len(byKeyType))
	for k := range byKeyType {
		keyTypesSlice = append(keyTypesSlice, k)
	}
	sort.Strings(keyTypesSlice)
	return keyTypesSlice
}
