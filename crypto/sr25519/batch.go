package sr25519

import (
	"errors"
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/primitives/sr25519"

	"github.com/ledgerkit/chaincrypto/crypto"
)

var _ crypto.BatchVerifier = &BatchVerifier{}

// ErrInvalidKey is returned by BatchVerifier.Add for a key that is not an
// sr25519 key or whose bytes do not decode to a Ristretto point.
type ErrInvalidKey struct {
	Err error
}

func (e ErrInvalidKey) Error() string {
	return fmt.Sprintf("sr25519: invalid public key: %v", e.Err)
}

func (e ErrInvalidKey) Unwrap() error {
	return e.Err
}

// ErrInvalidSignature is returned by BatchVerifier.Add for a signature of
// the wrong size or encoding.
type ErrInvalidSignature struct {
	Err error
}

func (e ErrInvalidSignature) Error() string {
	return fmt.Sprintf("sr25519: invalid signature: %v", e.Err)
}

func (e ErrInvalidSignature) Unwrap() error {
	return e.Err
}

// decodeVerifyInput is the point where the lenient public key decode is
// caught up on: the key must be a valid point and the signature must be
// canonical.
func decodeVerifyInput(pubKey PubKey, sigBytes []byte) (*sr25519.PublicKey, *sr25519.Signature, error) {
	var srpk sr25519.PublicKey
	if err := srpk.UnmarshalBinary(pubKey[:]); err != nil {
		return nil, nil, ErrInvalidKey{Err: err}
	}

	if _, err := SignatureFromBytes(sigBytes); err != nil {
		return nil, nil, ErrInvalidSignature{Err: err}
	}
	var sig sr25519.Signature
	if err := sig.UnmarshalBinary(sigBytes); err != nil {
		return nil, nil, ErrInvalidSignature{Err: err}
	}
	return &srpk, &sig, nil
}

// BatchVerifier implements batch verification for sr25519.
type BatchVerifier struct {
	*sr25519.BatchVerifier
}

func NewBatchVerifier() crypto.BatchVerifier {
	return &BatchVerifier{sr25519.NewBatchVerifier()}
}

func (b *BatchVerifier) Add(key crypto.PubKey, msg, signature []byte) error {
	pk, ok := key.(PubKey)
	if !ok {
		return ErrInvalidKey{Err: errors.New("pubkey is not sr25519")}
	}

	srpk, sig, err := decodeVerifyInput(pk, signature)
	if err != nil {
		return err
	}

	b.BatchVerifier.Add(srpk, signingCtx.NewTranscriptBytes(msg), sig)
	return nil
}

// Verify checks all added signatures. The batch randomness comes from
// crypto.CReader.
func (b *BatchVerifier) Verify() (bool, []bool) {
	return b.BatchVerifier.Verify(crypto.CReader())
}
