package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrPubKeySizeInvalid is returned when decoding a public key from a
	// buffer of the wrong length.
	ErrPubKeySizeInvalid = errors.New("public key size invalid")
	// ErrPrivKeySizeInvalid is returned when decoding a secret key from a
	// buffer of the wrong length.
	ErrPrivKeySizeInvalid = errors.New("secret key size invalid")
	// ErrSignatureSizeInvalid is returned when decoding a signature from a
	// buffer of the wrong length.
	ErrSignatureSizeInvalid = errors.New("signature size invalid")
)

// ErrInvalidKeyLen describes a decode input whose length does not match the
// fixed size of the algorithm. It unwraps to Kind, one of the size
// sentinels above. The rejected bytes are never part of the error.
type ErrInvalidKeyLen struct {
	Kind      error
	KeyType   string
	Got, Want int
}

func (e ErrInvalidKeyLen) Error() string {
	return fmt.Sprintf("%s: %v: got %d, want %d", e.KeyType, e.Kind, e.Got, e.Want)
}

func (e ErrInvalidKeyLen) Unwrap() error {
	return e.Kind
}

// CheckSize returns an ErrInvalidKeyLen of the given kind if got != want.
func CheckSize(kind error, keyType string, got, want int) error {
	if got == want {
		return nil
	}
	return ErrInvalidKeyLen{Kind: kind, KeyType: keyType, Got: got, Want: want}
}
