package keytypes_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519bip32"
	"github.com/ledgerkit/chaincrypto/crypto/keytypes"
	"github.com/ledgerkit/chaincrypto/crypto/secp256k1"
)

func TestListSupportedKeyTypes(t *testing.T) {
	assert.Equal(t, []string{
		"dilithium2", "ed25519", "ed25519bip32", "ed25519extended", "ed448",
		"secp256k1", "secp256k1eth", "sr25519",
	}, keytypes.ListSupportedKeyTypes())
	assert.Contains(t, keytypes.SupportedKeyTypesStr(), `"secp256k1eth"`)
}

func TestGenPrivKey(t *testing.T) {
	for _, keyType := range keytypes.ListSupportedKeyTypes() {
		t.Run(keyType, func(t *testing.T) {
			privKey, err := keytypes.GenPrivKey(keyType)
			require.NoError(t, err)
			assert.Equal(t, keyType, privKey.Type())

			msg := []byte("registry")
			sig, err := privKey.Sign(msg)
			require.NoError(t, err)
			assert.True(t, privKey.PubKey().VerifySignature(msg, sig))
		})
	}

	_, err := keytypes.GenPrivKey("rsa")
	var unknown keytypes.ErrUnknownAlgorithm
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "rsa", unknown.KeyType)
}

func TestAlgorithmEnum(t *testing.T) {
	for _, s := range keytypes.Schemes() {
		alg, err := keytypes.ParseAlgorithm(s.KeyType())
		require.NoError(t, err)
		assert.Equal(t, s.Algorithm(), alg)
		assert.Equal(t, s.KeyType(), alg.String())

		s2, err := alg.Scheme()
		require.NoError(t, err)
		assert.Equal(t, s.KeyType(), s2.KeyType())
	}

	_, err := keytypes.Algorithm(0).Scheme()
	assert.Error(t, err)
	assert.Equal(t, "Algorithm(0)", keytypes.Algorithm(0).String())
}

// Every scheme enforces its fixed sizes and round trips its own output.
func TestSchemeContract(t *testing.T) {
	for _, s := range keytypes.Schemes() {
		t.Run(s.KeyType(), func(t *testing.T) {
			for _, n := range []int{0, s.SecretKeySize() - 1, s.SecretKeySize() + 1} {
				_, err := s.SecretFromBinary(make([]byte, n))
				assert.ErrorIs(t, err, crypto.ErrPrivKeySizeInvalid)
			}
			for _, n := range []int{0, s.PublicKeySize() - 1, s.PublicKeySize() + 1} {
				_, err := s.PublicFromBinary(make([]byte, n))
				assert.ErrorIs(t, err, crypto.ErrPubKeySizeInvalid)
			}

			secret := s.Generate(crypto.CReader())
			require.Len(t, secret.Bytes(), s.SecretKeySize())
			secret2, err := s.SecretFromBinary(secret.Bytes())
			require.NoError(t, err)
			assert.Equal(t, secret.Bytes(), secret2.Bytes())

			pub, err := s.ComputePublic(secret)
			require.NoError(t, err)
			require.Len(t, pub.Bytes(), s.PublicKeySize())
			assert.Equal(t, s.PublicKeyType(), pub.Type())

			pub2, err := s.ComputePublic(secret2)
			require.NoError(t, err)
			assert.Equal(t, pub, pub2)

			pub3, err := s.PublicFromBinary(pub.Bytes())
			require.NoError(t, err)
			assert.Equal(t, pub, pub3)
		})
	}
}

func TestComputePublicRejectsForeignKey(t *testing.T) {
	s, err := keytypes.SchemeByKeyType(ed25519.KeyType)
	require.NoError(t, err)

	_, err = s.ComputePublic(secp256k1.GenPrivKey())
	var mismatch keytypes.ErrKeyTypeMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, keytypes.ErrKeyTypeMismatch{Want: "ed25519", Got: "secp256k1"}, mismatch)
}

func TestPublicFromExtended(t *testing.T) {
	xpub := ed25519bip32.GenPrivKey().PubKey().(ed25519bip32.PubKey)

	for _, keyType := range []string{ed25519.KeyType, "ed25519extended"} {
		s, err := keytypes.SchemeByKeyType(keyType)
		require.NoError(t, err)
		pub, err := s.PublicFromExtended(xpub)
		require.NoError(t, err)
		assert.Equal(t, xpub.Bytes()[:ed25519.PubKeySize], pub.Bytes())
	}

	s, err := keytypes.SchemeByKeyType("sr25519")
	require.NoError(t, err)
	_, err = s.PublicFromExtended(xpub)
	assert.ErrorIs(t, err, keytypes.ErrNoExtendedDerivation)

	// an Ed25519 point never fills a secp256k1 key
	for _, keyType := range []string{secp256k1.KeyType, "secp256k1eth"} {
		s, err := keytypes.SchemeByKeyType(keyType)
		require.NoError(t, err)
		pub, err := s.PublicFromExtended(xpub)
		assert.ErrorIs(t, err, crypto.ErrPubKeySizeInvalid, keyType)
		assert.Nil(t, pub, keyType)
	}
}

func TestLookupByHRP(t *testing.T) {
	s, ok := keytypes.SchemeBySecretHRP("ed25519e_sk")
	require.True(t, ok)
	assert.Equal(t, keytypes.Ed25519Extended, s.Algorithm())

	s, ok = keytypes.SchemeByPublicHRP("ed25519_pk")
	require.True(t, ok)
	assert.Equal(t, keytypes.Ed25519, s.Algorithm())

	s, ok = keytypes.SchemeByPublicHRP("xpub")
	require.True(t, ok)
	assert.Equal(t, keytypes.Ed25519BIP32, s.Algorithm())

	_, ok = keytypes.SchemeBySecretHRP("bc")
	assert.False(t, ok)
}

// Keys are immutable values and may be used from many goroutines.
func TestConcurrentReaders(t *testing.T) {
	for _, s := range keytypes.Schemes() {
		secret := s.Generate(crypto.CReader())
		want, err := s.ComputePublic(secret)
		require.NoError(t, err)

		var g errgroup.Group
		for i := 0; i < 16; i++ {
			g.Go(func() error {
				got, err := s.ComputePublic(secret)
				if err != nil {
					return err
				}
				if !bytes.Equal(want.Bytes(), got.Bytes()) {
					t.Errorf("%s: public key changed under concurrent use", s.KeyType())
				}
				if !got.Equals(want) {
					t.Errorf("%s: Equals is false for identical keys", s.KeyType())
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
	}
}

func TestDistinctKeys(t *testing.T) {
	for _, s := range keytypes.Schemes() {
		seen := make(map[string]struct{}, 100)
		for i := 0; i < 100; i++ {
			pub, err := s.ComputePublic(s.Generate(crypto.CReader()))
			require.NoError(t, err)
			seen[string(pub.Bytes())] = struct{}{}
		}
		assert.Len(t, seen, 100, s.KeyType())
	}
}
