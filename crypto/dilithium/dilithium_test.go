package dilithium_test

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/cloudflare/circl/sign/dilithium/mode2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/dilithium"
)

func TestSignAndValidateDilithium(t *testing.T) {
	privKey := dilithium.GenPrivKey()
	pubKey := privKey.PubKey()

	msg := crypto.CRandBytes(128)
	sig, err := privKey.Sign(msg)
	require.NoError(t, err)
	assert.Len(t, sig, dilithium.SignatureSize)

	// Test the signature
	assert.True(t, pubKey.VerifySignature(msg, sig))

	// Mutate the signature, just one bit.
	sig[7] ^= byte(0x01)
	assert.False(t, pubKey.VerifySignature(msg, sig))
	assert.False(t, pubKey.VerifySignature(msg, sig[:dilithium.SignatureSize-1]))
}

func TestMatchesCircl(t *testing.T) {
	var seed [mode2.SeedSize]byte
	for i := range seed {
		seed[i] = byte(i)
	}
	pk, sk := mode2.NewKeyFromSeed(&seed)

	privKey, err := dilithium.PrivKeyFromBytes(seed[:])
	require.NoError(t, err)
	assert.Equal(t, pk.Bytes(), privKey.PubKey().Bytes())

	msg := []byte("dilithium")
	sig, err := privKey.Sign(msg)
	require.NoError(t, err)

	want := make([]byte, mode2.SignatureSize)
	mode2.SignTo(sk, msg, want)
	assert.Equal(t, want, sig)
	assert.True(t, mode2.Verify(pk, msg, sig))
}

func TestComputePublicIsDeterministic(t *testing.T) {
	privKey := dilithium.GenPrivKey()
	assert.Equal(t, dilithium.Algorithm{}.ComputePublic(privKey), dilithium.Algorithm{}.ComputePublic(privKey))

	// same secret, same seed
	a, b := dilithium.GenPrivKeyFromSecret([]byte("mySecret")), dilithium.GenPrivKeyFromSecret([]byte("mySecret"))
	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.Equal(t, crypto.Sha256([]byte("mySecret")), a.Bytes())
}

func TestGenerate(t *testing.T) {
	r := bytes.NewReader(bytes.Repeat([]byte{0x42}, dilithium.PrivKeySize+4))
	privKey := dilithium.GenPrivKeyFromReader(r)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, bytes.Repeat([]byte{0x42}, dilithium.PrivKeySize), privKey.Bytes())

	assert.Panics(t, func() { dilithium.GenPrivKeyFromReader(iotest.ErrReader(errors.New("no entropy"))) })
}

func TestSizes(t *testing.T) {
	for _, n := range []int{0, dilithium.PrivKeySize - 1, dilithium.PrivKeySize + 1} {
		_, err := dilithium.PrivKeyFromBytes(make([]byte, n))
		require.ErrorIs(t, err, crypto.ErrPrivKeySizeInvalid)
	}
	for _, n := range []int{0, dilithium.PubKeySize - 1, dilithium.PubKeySize + 1} {
		_, err := dilithium.PubKeyFromBytes(make([]byte, n))
		require.ErrorIs(t, err, crypto.ErrPubKeySizeInvalid)
	}

	privKey := dilithium.GenPrivKey()
	privKey2, err := dilithium.PrivKeyFromBytes(privKey.Bytes())
	require.NoError(t, err)
	assert.Equal(t, privKey.Bytes(), privKey2.Bytes())

	pubKey, err := dilithium.PubKeyFromBytes(privKey.PubKey().Bytes())
	require.NoError(t, err)
	assert.True(t, pubKey.Equals(privKey.PubKey()))
}

func TestLenientPubKeyDecode(t *testing.T) {
	garbage := bytes.Repeat([]byte{0xff}, dilithium.PubKeySize)
	pubKey, err := dilithium.PubKeyFromBytes(garbage)
	require.NoError(t, err)
	assert.Equal(t, garbage, pubKey.Bytes())

	sig, err := dilithium.GenPrivKey().Sign([]byte("lenient"))
	require.NoError(t, err)
	assert.False(t, pubKey.VerifySignature([]byte("lenient"), sig))
}

func TestMetadata(t *testing.T) {
	alg := dilithium.Algorithm{}
	assert.Equal(t, 32, alg.SecretKeySize())
	assert.Equal(t, 1312, alg.PublicAlgorithm().PublicKeySize())
	assert.Equal(t, 2420, dilithium.SignatureSize)
	assert.Equal(t, "dilithium2_sk", alg.SecretBech32HRP())
	assert.Equal(t, "dilithium2_pk", alg.PublicAlgorithm().PublicBech32HRP())

	privKey := dilithium.GenPrivKey()
	assert.Equal(t, dilithium.KeyType, privKey.Type())
	assert.Equal(t, dilithium.KeyType, privKey.PubKey().Type())
	assert.Equal(t, "PrivKeyDil2{...}", privKey.String())

	privKey.Zeroize()
	assert.Equal(t, make([]byte, dilithium.PrivKeySize), privKey.Bytes())
}

func TestSignatureFromBytes(t *testing.T) {
	sig, err := dilithium.GenPrivKey().Sign([]byte("msg"))
	require.NoError(t, err)

	s, err := dilithium.SignatureFromBytes(sig)
	require.NoError(t, err)
	assert.Equal(t, sig, s.Bytes())

	_, err = dilithium.SignatureFromBytes(sig[1:])
	require.ErrorIs(t, err, crypto.ErrSignatureSizeInvalid)
}
