package crypto

import (
	"encoding/hex"
	"strings"
)

// AddressSize is the size of a public key hash.
const AddressSize = 28

// Address is the blake2b-224 hash of a raw public key. It is the key
// component of ledger addresses.
type Address [AddressSize]byte

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) String() string {
	return strings.ToUpper(hex.EncodeToString(a[:]))
}

// PubKey is implemented by the public key type of every algorithm.
// Implementations are comparable values and may be used as map keys.
type PubKey interface {
	Address() Address
	Bytes() []byte
	VerifySignature(msg []byte, sig []byte) bool
	Equals(other PubKey) bool
	Type() string
}

// PrivKey is implemented by the secret key type of every algorithm.
// Secret keys are never compared and never printed; String returns a
// redacted placeholder.
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) ([]byte, error)
	PubKey() PubKey
	Type() string
	// Zeroize overwrites the key material. The key must not be used
	// afterwards.
	Zeroize()
}

// BatchVerifier accumulates signatures and verifies them together.
type BatchVerifier interface {
	// Add appends an entry into the BatchVerifier.
	Add(key PubKey, message, signature []byte) error
	// Verify verifies all the entries in the BatchVerifier, and returns
	// if every signature in the batch is valid, and a vector of bools
	// indicating the verification status of each signature (in the order
	// that signatures were added to the batch).
	Verify() (bool, []bool)
}
