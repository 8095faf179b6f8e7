package ed25519

import (
	"errors"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/ledgerkit/chaincrypto/crypto"
)

var _ crypto.BatchVerifier = &BatchVerifier{}

var (
	ErrNotEd25519Key    = errors.New("ed25519: pubkey is not Ed25519")
	ErrInvalidSignature = errors.New("ed25519: invalid signature")
)

// BatchVerifier implements batch verification for ed25519.
type BatchVerifier struct {
	*ed25519.BatchVerifier
}

func NewBatchVerifier() crypto.BatchVerifier {
	return &BatchVerifier{ed25519.NewBatchVerifier()}
}

func (b *BatchVerifier) Add(key crypto.PubKey, msg, signature []byte) error {
	pkEd, ok := key.(PubKey)
	if !ok {
		return ErrNotEd25519Key
	}

	// check that the signature is the correct length
	if len(signature) != SignatureSize {
		return ErrInvalidSignature
	}

	b.BatchVerifier.AddWithOptions(ed25519.PublicKey(pkEd[:]), msg, signature, verifyOptions)

	return nil
}

func (b *BatchVerifier) Verify() (bool, []bool) {
	return b.BatchVerifier.Verify(crypto.CReader())
}
