package keytypes

import (
	"errors"
	"fmt"
	"io"

	"github.com/ledgerkit/chaincrypto/crypto"
)

// ErrNoExtendedDerivation is returned by PublicFromExtended for algorithms
// whose public keys cannot be taken out of an extended public key.
var ErrNoExtendedDerivation = errors.New("algorithm does not derive public keys from extended keys")

// ErrKeyTypeMismatch is returned when a key of one algorithm is passed to a
// scheme of another.
type ErrKeyTypeMismatch struct {
	Want, Got string
}

func (e ErrKeyTypeMismatch) Error() string {
	return fmt.Sprintf("key type mismatch: want %s, got %s", e.Want, e.Got)
}

// Scheme is the runtime view of one algorithm's key capabilities. It erases
// the concrete key types behind crypto.PrivKey and crypto.PubKey so that
// callers can select an algorithm from configuration or user input.
type Scheme interface {
	Algorithm() Algorithm
	// KeyType is the type of the secret keys produced by the scheme.
	KeyType() string
	// PublicKeyType is the type of the public keys. It differs from KeyType
	// when several secret formats share a public key algorithm.
	PublicKeyType() string

	SecretBech32HRP() string
	PublicBech32HRP() string
	SecretKeySize() int
	PublicKeySize() int

	Generate(rand io.Reader) crypto.PrivKey
	ComputePublic(secret crypto.PrivKey) (crypto.PubKey, error)
	SecretFromBinary(data []byte) (crypto.PrivKey, error)
	PublicFromBinary(data []byte) (crypto.PubKey, error)
	// PublicFromExtended fails with crypto.ErrPubKeySizeInvalid when x
	// cannot produce a public key of PublicKeySize bytes, as happens for
	// extended keys of another curve.
	PublicFromExtended(x crypto.ExtendedPubKey) (crypto.PubKey, error)
}

type scheme[S crypto.PrivKey, P crypto.PubKey] struct {
	alg     Algorithm
	keyType string
	key     crypto.AsymmetricKey[S, P]
}

var _ Scheme = scheme[crypto.PrivKey, crypto.PubKey]{}

func newScheme[S crypto.PrivKey, P crypto.PubKey](alg Algorithm, keyType string, key crypto.AsymmetricKey[S, P]) Scheme {
	return scheme[S, P]{alg: alg, keyType: keyType, key: key}
}

func (s scheme[S, P]) Algorithm() Algorithm { return s.alg }
func (s scheme[S, P]) KeyType() string      { return s.keyType }

func (s scheme[S, P]) PublicKeyType() string {
	var pub P
	return pub.Type()
}

func (s scheme[S, P]) SecretBech32HRP() string { return s.key.SecretBech32HRP() }
func (s scheme[S, P]) PublicBech32HRP() string { return s.key.PublicAlgorithm().PublicBech32HRP() }
func (s scheme[S, P]) SecretKeySize() int      { return s.key.SecretKeySize() }
func (s scheme[S, P]) PublicKeySize() int      { return s.key.PublicAlgorithm().PublicKeySize() }

func (s scheme[S, P]) Generate(rand io.Reader) crypto.PrivKey {
	return s.key.Generate(rand)
}

func (s scheme[S, P]) ComputePublic(secret crypto.PrivKey) (crypto.PubKey, error) {
	sk, ok := secret.(S)
	if !ok {
		return nil, ErrKeyTypeMismatch{Want: s.keyType, Got: secret.Type()}
	}
	return s.key.ComputePublic(sk), nil
}

func (s scheme[S, P]) SecretFromBinary(data []byte) (crypto.PrivKey, error) {
	sk, err := s.key.SecretFromBinary(data)
	if err != nil {
		return nil, err
	}
	return sk, nil
}

func (s scheme[S, P]) PublicFromBinary(data []byte) (crypto.PubKey, error) {
	pk, err := s.key.PublicAlgorithm().PublicFromBinary(data)
	if err != nil {
		return nil, err
	}
	return pk, nil
}

func (s scheme[S, P]) PublicFromExtended(x crypto.ExtendedPubKey) (crypto.PubKey, error) {
	deriver, ok := s.key.PublicAlgorithm().(crypto.ExtendedPublicKeyDeriver[P])
	if !ok {
		return nil, ErrNoExtendedDerivation
	}
	if size := s.PublicKeySize(); !x.SupportsPubKeySize(size) {
		return nil, fmt.Errorf("%s: %w: extended key has no %d byte form", s.PublicKeyType(), crypto.ErrPubKeySizeInvalid, size)
	}
	return deriver.PublicFromExtended(x), nil
}
