// Package encoding converts keys to and from their bech32 text form. The
// human readable part of each string selects the key algorithm.
package encoding

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/keytypes"
)

// ErrUnsupportedKey describes an error resulting from the use of an
// unsupported key in [PubKeyToBech32] or [PrivKeyToBech32].
type ErrUnsupportedKey struct {
	KeyType string
}

func (e ErrUnsupportedKey) Error() string {
	return fmt.Sprintf("encoding: unsupported key type %q", e.KeyType)
}

// ErrUnknownPrefix describes a bech32 string whose human readable part
// does not belong to any supported algorithm.
type ErrUnknownPrefix struct {
	HRP string
}

func (e ErrUnknownPrefix) Error() string {
	return fmt.Sprintf("encoding: unknown bech32 prefix %q", e.HRP)
}

// ErrMalformed wraps a failure of the bech32 codec itself. The input string
// is not part of the error.
type ErrMalformed struct {
	Err error
}

func (e ErrMalformed) Error() string {
	return fmt.Sprintf("encoding: malformed bech32: %v", e.Err)
}

func (e ErrMalformed) Unwrap() error {
	return e.Err
}

func publicScheme(keyType string) (keytypes.Scheme, bool) {
	for _, s := range keytypes.Schemes() {
		if s.PublicKeyType() == keyType {
			return s, true
		}
	}
	return nil, false
}

// PubKeyToBech32 encodes k with the public prefix of its algorithm.
func PubKeyToBech32(k crypto.PubKey) (string, error) {
	s, ok := publicScheme(k.Type())
	if !ok {
		return "", ErrUnsupportedKey{KeyType: k.Type()}
	}
	return encode(s.PublicBech32HRP(), k.Bytes())
}

// PrivKeyToBech32 encodes k with the secret prefix of its algorithm.
func PrivKeyToBech32(k crypto.PrivKey) (string, error) {
	s, err := keytypes.SchemeByKeyType(k.Type())
	if err != nil {
		return "", ErrUnsupportedKey{KeyType: k.Type()}
	}
	bz := k.Bytes()
	defer crypto.Zeroize(bz)
	return encode(s.SecretBech32HRP(), bz)
}

// PubKeyFromBech32 decodes a public key. The prefix selects the algorithm
// and the payload must have that algorithm's public key size.
func PubKeyFromBech32(str string) (crypto.PubKey, error) {
	hrp, bz, err := decode(str)
	if err != nil {
		return nil, err
	}
	s, ok := keytypes.SchemeByPublicHRP(hrp)
	if !ok {
		return nil, ErrUnknownPrefix{HRP: hrp}
	}
	return s.PublicFromBinary(bz)
}

// PrivKeyFromBech32 decodes a secret key. The prefix selects the algorithm
// and the payload must have that algorithm's secret key size.
func PrivKeyFromBech32(str string) (crypto.PrivKey, error) {
	hrp, bz, err := decode(str)
	if err != nil {
		return nil, err
	}
	defer crypto.Zeroize(bz)

	s, ok := keytypes.SchemeBySecretHRP(hrp)
	if !ok {
		return nil, ErrUnknownPrefix{HRP: hrp}
	}
	return s.SecretFromBinary(bz)
}

// HRP returns the human readable part of a bech32 string, in lower case.
// The separator is the last '1' of str, so prefixes may contain '1' too.
// The checksum is verified; the payload is discarded.
func HRP(str string) (string, error) {
	hrp, data, err := bech32.DecodeNoLimit(str)
	if err != nil {
		return "", ErrMalformed{Err: err}
	}
	crypto.Zeroize(data)
	return hrp, nil
}

func encode(hrp string, bz []byte) (string, error) {
	conv, err := bech32.ConvertBits(bz, 8, 5, true)
	if err != nil {
		return "", ErrMalformed{Err: err}
	}
	defer crypto.Zeroize(conv)

	str, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", ErrMalformed{Err: err}
	}
	return str, nil
}

func decode(str string) (string, []byte, error) {
	hrp, data, err := bech32.DecodeNoLimit(str)
	if err != nil {
		return "", nil, ErrMalformed{Err: err}
	}
	defer crypto.Zeroize(data)

	bz, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, ErrMalformed{Err: err}
	}
	return hrp, bz, nil
}
