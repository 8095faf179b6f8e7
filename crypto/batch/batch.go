// Package batch selects a batch verifier for a public key.
package batch

import (
	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519"
	"github.com/ledgerkit/chaincrypto/crypto/sr25519"
)

// CreateBatchVerifier checks if a key type implements the batch verifier interface.
// Currently ed25519 and sr25519 support batch verification.
func CreateBatchVerifier(pk crypto.PubKey) (crypto.BatchVerifier, bool) {
	if pk == nil {
		return nil, false
	}

	switch pk.Type() {
	case ed25519.KeyType:
		return ed25519.NewBatchVerifier(), true
	case sr25519.KeyType:
		return sr25519.NewBatchVerifier(), true
	default:
		return nil, false
	}
}

// SupportsBatchVerifier checks if a key type implements the batch verifier
// interface.
func SupportsBatchVerifier(pk crypto.PubKey) bool {
	_, ok := CreateBatchVerifier(pk)
	return ok
}
