package crypto

import "runtime"

// Zeroize overwrites b with zeros. It is best-effort and keeps b alive
// until the writes are done so the loop is not elided.
//
//go:noinline
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
