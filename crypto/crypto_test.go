package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/ledgerkit/chaincrypto/crypto"
)

func TestAddressHash(t *testing.T) {
	msg := []byte("public key bytes")
	h, err := blake2b.New(crypto.AddressSize, nil)
	require.NoError(t, err)
	h.Write(msg)

	addr := crypto.AddressHash(msg)
	assert.Equal(t, h.Sum(nil), addr.Bytes())
	assert.Len(t, addr.String(), 2*crypto.AddressSize)
	assert.NotEqual(t, addr, crypto.AddressHash([]byte("other key bytes")))
}

func TestCheckSize(t *testing.T) {
	require.NoError(t, crypto.CheckSize(crypto.ErrPrivKeySizeInvalid, "ed25519", 32, 32))

	err := crypto.CheckSize(crypto.ErrPrivKeySizeInvalid, "ed25519", 33, 32)
	require.Error(t, err)
	assert.True(t, errors.Is(err, crypto.ErrPrivKeySizeInvalid))
	assert.False(t, errors.Is(err, crypto.ErrPubKeySizeInvalid))

	var lenErr crypto.ErrInvalidKeyLen
	require.True(t, errors.As(err, &lenErr))
	assert.Equal(t, 33, lenErr.Got)
	assert.Equal(t, 32, lenErr.Want)
	assert.Equal(t, "ed25519", lenErr.KeyType)
}

func TestZeroize(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	crypto.Zeroize(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)

	crypto.Zeroize(nil)
}

func TestReadEntropyReadsExactly(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0xaa}, 40))
	dst := make([]byte, 32)
	crypto.ReadEntropy(src, dst)

	assert.Equal(t, bytes.Repeat([]byte{0xaa}, 32), dst)
	assert.Equal(t, 8, src.Len())
}

func TestReadEntropyPanicsOnShortSource(t *testing.T) {
	dst := make([]byte, 32)
	require.Panics(t, func() {
		crypto.ReadEntropy(bytes.NewReader(make([]byte, 31)), dst)
	})
}

func TestCRandBytes(t *testing.T) {
	a := crypto.CRandBytes(32)
	b := crypto.CRandBytes(32)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
