package secp256k1_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
	"testing/iotest"

	btcsecp256k1 "github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/secp256k1"
)

func mustPrivKey(t *testing.T, hexKey string) *secp256k1.PrivKey {
	t.Helper()
	bz, err := hex.DecodeString(hexKey)
	require.NoError(t, err)
	privKey, err := secp256k1.PrivKeyFromBytes(bz)
	require.NoError(t, err)
	return privKey
}

func TestPubKeyOfOne(t *testing.T) {
	privKey := mustPrivKey(t, "0000000000000000000000000000000000000000000000000000000000000001")
	assert.Equal(t,
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hex.EncodeToString(privKey.PubKey().Bytes()))
}

func TestSignAndValidateSecp256k1(t *testing.T) {
	privKey := secp256k1.GenPrivKey()
	pubKey := privKey.PubKey()

	msg := crypto.CRandBytes(128)
	sig, err := privKey.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, secp256k1.SignatureSize)

	assert.True(t, pubKey.VerifySignature(msg, sig))

	// Mutate the signature, just one bit.
	sig[3] ^= byte(0x01)
	assert.False(t, pubKey.VerifySignature(msg, sig))

	assert.False(t, pubKey.VerifySignature(msg, sig[:63]))
}

func TestSignIsDeterministic(t *testing.T) {
	privKey := secp256k1.GenPrivKeySecp256k1([]byte("deterministic"))
	msg := []byte("rfc6979")

	sig1, err := privKey.Sign(msg)
	require.NoError(t, err)
	sig2, err := privKey.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, sig1, sig2)
}

func TestRejectHighS(t *testing.T) {
	privKey := secp256k1.GenPrivKey()
	msg := []byte("malleable")
	sig, err := privKey.Sign(msg)
	require.NoError(t, err)

	var s btcsecp256k1.ModNScalar
	require.False(t, s.SetByteSlice(sig[32:]))
	require.False(t, s.IsOverHalfOrder())
	s.Negate()
	sBytes := s.Bytes()

	highS := append(append([]byte{}, sig[:32]...), sBytes[:]...)
	assert.False(t, privKey.PubKey().VerifySignature(msg, highS))
}

func TestSignZeroScalar(t *testing.T) {
	privKey := mustPrivKey(t, "0000000000000000000000000000000000000000000000000000000000000000")
	_, err := privKey.Sign([]byte("msg"))
	assert.ErrorIs(t, err, secp256k1.ErrZeroScalar)
}

func TestGenPrivKeySecp256k1(t *testing.T) {
	tests := []struct {
		name   string
		secret []byte
	}{
		{"empty secret", []byte{}},
		{
			"some long secret",
			[]byte("We live in a society exquisitely dependent on science and technology, " +
				"in which hardly anyone knows anything about science and technology."),
		},
		{"another seed used in cosmos tests #1", []byte{0}},
		{"another seed used in cosmos tests #2", []byte("mySecret")},
		{"another seed used in cosmos tests #3", []byte("")},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			gotPrivKey := secp256k1.GenPrivKeySecp256k1(tt.secret)
			require.NotNil(t, gotPrivKey)
			// interpret as a scalar and make sure it is a valid field element:
			fe := new(btcsecp256k1.ModNScalar)
			overflow := fe.SetByteSlice(gotPrivKey.Bytes())
			require.False(t, overflow)
			require.False(t, fe.IsZero())
			assert.Equal(t, gotPrivKey.Bytes(), secp256k1.GenPrivKeySecp256k1(tt.secret).Bytes())
		})
	}
}

func TestGenerateReadsExactly(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0x11}, secp256k1.PrivKeySize+5))
	privKey := secp256k1.GenPrivKeyFromReader(src)
	assert.Equal(t, bytes.Repeat([]byte{0x11}, secp256k1.PrivKeySize), privKey.Bytes())
	assert.Equal(t, 5, src.Len())

	require.Panics(t, func() {
		secp256k1.GenPrivKeyFromReader(iotest.ErrReader(errors.New("no entropy")))
	})
}

func TestSizes(t *testing.T) {
	for _, n := range []int{0, 31, 33, 64} {
		_, err := secp256k1.PrivKeyFromBytes(make([]byte, n))
		assert.ErrorIs(t, err, crypto.ErrPrivKeySizeInvalid, "len=%d", n)
	}
	for _, n := range []int{0, 32, 34, 65} {
		_, err := secp256k1.PubKeyFromBytes(make([]byte, n))
		assert.ErrorIs(t, err, crypto.ErrPubKeySizeInvalid, "len=%d", n)
	}
}

func TestLenientPubKeyDecode(t *testing.T) {
	notOnCurve := bytes.Repeat([]byte{0xff}, secp256k1.PubKeySize)
	pubKey, err := secp256k1.PubKeyFromBytes(notOnCurve)
	require.NoError(t, err)
	assert.False(t, pubKey.VerifySignature([]byte("msg"), make([]byte, secp256k1.SignatureSize)))
}

type fakeXPub []byte

func (x fakeXPub) SupportsPubKeySize(size int) bool  { return size == len(x)-32 }
func (x fakeXPub) PubKeyWithoutChainCode(dst []byte) { copy(dst, x) }

func TestPubKeyFromExtended(t *testing.T) {
	privKey := secp256k1.GenPrivKey()
	raw := privKey.PubKey().Bytes()
	xpub := fakeXPub(append(append([]byte{}, raw...), bytes.Repeat([]byte{0xcc}, 32)...))

	assert.Equal(t, privKey.PubKey(), secp256k1.PubKeyFromExtended(xpub))
	assert.Equal(t, privKey.PubKey(), secp256k1.Algorithm{}.PublicFromExtended(xpub))
}

func TestRoundTripAndMetadata(t *testing.T) {
	alg := secp256k1.Algorithm{}
	privKey := alg.Generate(crypto.CReader())
	privKey2, err := alg.SecretFromBinary(privKey.Bytes())
	require.NoError(t, err)
	assert.Equal(t, privKey.Bytes(), privKey2.Bytes())

	pubKey := alg.ComputePublic(privKey)
	pubKey2, err := alg.PublicFromBinary(pubKey.Bytes())
	require.NoError(t, err)
	assert.Equal(t, pubKey, pubKey2)
	assert.True(t, pubKey.Equals(pubKey2))
	assert.Equal(t, pubKey.Address(), crypto.AddressHash(pubKey.Bytes()))

	assert.Equal(t, "secp256k1_sk", alg.SecretBech32HRP())
	assert.Equal(t, "secp256k1_pk", alg.PublicBech32HRP())
	assert.Equal(t, 32, alg.SecretKeySize())
	assert.Equal(t, 33, alg.PublicKeySize())
	assert.Equal(t, "PrivKeySecp256k1{...}", privKey.String())
}

func TestSignatureFromBytes(t *testing.T) {
	privKey := secp256k1.GenPrivKey()
	msg := []byte("signature")
	bz, err := privKey.Sign(msg)
	require.NoError(t, err)

	sig, err := secp256k1.SignatureFromBytes(bz)
	require.NoError(t, err)
	assert.Equal(t, bz, sig.Bytes())
	assert.True(t, privKey.PubKey().VerifySignature(msg, sig.Bytes()))

	_, err = secp256k1.SignatureFromBytes(bz[1:])
	assert.ErrorIs(t, err, crypto.ErrSignatureSizeInvalid)
}
