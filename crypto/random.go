package crypto

import (
	crand "crypto/rand"
	"fmt"
	"io"
)

// CRandBytes returns numBytes bytes read from the OS randomness.
func CRandBytes(numBytes int) []byte {
	b := make([]byte, numBytes)
	ReadEntropy(crand.Reader, b)
	return b
}

// CReader returns a crand.Reader.
func CReader() io.Reader {
	return crand.Reader
}

// ReadEntropy fills dst with exactly len(dst) bytes from rand. A failing
// entropy source is fatal: ReadEntropy panics instead of retrying.
func ReadEntropy(rand io.Reader, dst []byte) {
	if _, err := io.ReadFull(rand, dst); err != nil {
		Zeroize(dst)
		panic(fmt.Errorf("crypto: entropy source failed: %w", err))
	}
}
