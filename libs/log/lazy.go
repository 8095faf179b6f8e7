package log

import (
	"fmt"

	"github.com/ledgerkit/chaincrypto/crypto"
)

type LazySprintf struct {
	format string
	args   []any
}

// NewLazySprintf defers fmt.Sprintf until the Stringer interface is invoked.
// This is particularly useful for avoiding calling Sprintf when debugging is not
// active.
func NewLazySprintf(format string, args ...any) *LazySprintf {
	return &LazySprintf{format, args}
}

func (l *LazySprintf) String() string {
	return fmt.Sprintf(l.format, l.args...)
}

// LazyAddress is a wrapper around a public key that defers hashing it into
// an address until the Stringer interface is invoked.
type LazyAddress struct {
	inner crypto.PubKey
}

// NewLazyAddress defers calling `Address()` until the Stringer interface is
// invoked.
func NewLazyAddress(inner crypto.PubKey) *LazyAddress {
	return &LazyAddress{inner}
}

func (l *LazyAddress) String() string {
	return l.inner.Address().String()
}
