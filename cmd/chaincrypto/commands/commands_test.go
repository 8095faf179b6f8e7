package commands

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/ledgerkit/chaincrypto/config"
	"github.com/ledgerkit/chaincrypto/crypto/ed25519"
	"github.com/ledgerkit/chaincrypto/crypto/encoding"
	"github.com/ledgerkit/chaincrypto/crypto/keytypes"
	"github.com/ledgerkit/chaincrypto/crypto/secp256k1"
	"github.com/ledgerkit/chaincrypto/version"
)

// testCmd returns a command writing to a buffer and reading from in.
func testCmd(in string) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(in))
	return cmd, &out
}

func genTestKey(t *testing.T, keyType string) keyInfo {
	t.Helper()
	clearConfig(t, t.TempDir())
	config.KeyType = keyType

	cmd, out := testCmd("")
	require.NoError(t, genKey(cmd, nil))

	var info keyInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	return info
}

func TestGenKey(t *testing.T) {
	for _, keyType := range keytypes.ListSupportedKeyTypes() {
		t.Run(keyType, func(t *testing.T) {
			info := genTestKey(t, keyType)
			assert.Equal(t, keyType, info.KeyType)

			privKey, err := encoding.PrivKeyFromBech32(info.Secret)
			require.NoError(t, err)
			assert.Equal(t, keyType, privKey.Type())

			pubStr, err := encoding.PubKeyToBech32(privKey.PubKey())
			require.NoError(t, err)
			assert.Equal(t, pubStr, info.PubKey)
			assert.Equal(t, privKey.PubKey().Address().String(), info.Address)
		})
	}
}

func TestGenKeyUnknownType(t *testing.T) {
	clearConfig(t, t.TempDir())
	config.KeyType = "rsa"

	cmd, out := testCmd("")
	err := genKey(cmd, nil)
	require.ErrorAs(t, err, &keytypes.ErrUnknownAlgorithm{})
	assert.Empty(t, out.String())
}

func TestShowPubKey(t *testing.T) {
	gen := genTestKey(t, secp256k1.KeyType)

	// from argument
	cmd, out := testCmd("")
	require.NoError(t, showPubKey(cmd, []string{gen.Secret}))
	var info keyInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, gen.PubKey, info.PubKey)
	assert.Equal(t, gen.Address, info.Address)
	assert.Empty(t, info.Secret)
	assert.NotContains(t, out.String(), gen.Secret)

	// from stdin
	cmd, out = testCmd(gen.Secret + "\n")
	require.NoError(t, showPubKey(cmd, nil))
	info = keyInfo{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, gen.PubKey, info.PubKey)

	// nothing given
	cmd, _ = testCmd("\n")
	require.Error(t, showPubKey(cmd, nil))

	// public key is not a secret
	cmd, _ = testCmd("")
	require.Error(t, showPubKey(cmd, []string{gen.PubKey}))
}

func TestInspect(t *testing.T) {
	gen := genTestKey(t, ed25519.KeyType)

	cases := []struct {
		input string
		kind  string
		hrp   string
		size  int
	}{
		{gen.PubKey, "public", ed25519.PublicBech32HRP, ed25519.PubKeySize},
		{gen.Secret, "secret", ed25519.SecretBech32HRP, ed25519.PrivKeySize},
		{strings.ToUpper(gen.PubKey), "public", ed25519.PublicBech32HRP, ed25519.PubKeySize},
	}

	for i, tc := range cases {
		cmd, out := testCmd("")
		require.NoError(t, inspect(cmd, []string{tc.input}), "#%d", i)

		var info inspectInfo
		require.NoError(t, json.Unmarshal(out.Bytes(), &info), "#%d", i)
		assert.Equal(t, tc.kind, info.Kind, "#%d", i)
		assert.Equal(t, ed25519.KeyType, info.KeyType, "#%d", i)
		assert.Equal(t, tc.hrp, info.HRP, "#%d", i)
		assert.Equal(t, tc.size, info.Size, "#%d", i)
		assert.Equal(t, gen.PubKey, info.PubKey, "#%d", i)
		assert.Equal(t, gen.Address, info.Address, "#%d", i)
		assert.NotContains(t, out.String(), gen.Secret, "#%d", i)
	}

	cmd, _ := testCmd("")
	err := inspect(cmd, []string{"a12uel5l"})
	require.ErrorAs(t, err, &encoding.ErrUnknownPrefix{})

	// flip the last checksum character
	last := "q"
	if strings.HasSuffix(gen.PubKey, "q") {
		last = "p"
	}
	cmd, _ = testCmd("")
	require.Error(t, inspect(cmd, []string{gen.PubKey[:len(gen.PubKey)-1] + last}))
}

func TestInspectArmorAllSchemes(t *testing.T) {
	for _, s := range keytypes.Schemes() {
		t.Run(s.KeyType(), func(t *testing.T) {
			gen := genTestKey(t, s.KeyType())

			cases := []struct {
				input   string
				kind    string
				keyType string
				hrp     string
				size    int
			}{
				{gen.PubKey, "public", s.PublicKeyType(), s.PublicBech32HRP(), s.PublicKeySize()},
				{gen.Secret, "secret", s.KeyType(), s.SecretBech32HRP(), s.SecretKeySize()},
			}

			for i, tc := range cases {
				cmd, out := testCmd("")
				require.NoError(t, armorKey(cmd, []string{tc.input}), "#%d", i)
				armored := out.String()

				for _, input := range []string{tc.input, armored} {
					cmd, out = testCmd("")
					require.NoError(t, inspect(cmd, []string{input}), "#%d", i)

					var info inspectInfo
					require.NoError(t, json.Unmarshal(out.Bytes(), &info), "#%d", i)
					assert.Equal(t, tc.kind, info.Kind, "#%d", i)
					assert.Equal(t, tc.keyType, info.KeyType, "#%d", i)
					assert.Equal(t, tc.hrp, info.HRP, "#%d", i)
					assert.Equal(t, tc.size, info.Size, "#%d", i)
					assert.Equal(t, gen.PubKey, info.PubKey, "#%d", i)
					assert.Equal(t, gen.Address, info.Address, "#%d", i)
				}
			}
		})
	}
}

func TestListKeyTypes(t *testing.T) {
	cmd, out := testCmd("")
	require.NoError(t, ListKeyTypesCmd.RunE(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(keytypes.Schemes())+1)
	assert.True(t, strings.HasPrefix(lines[0], "TYPE"))
	for i, s := range keytypes.Schemes() {
		fields := strings.Fields(lines[i+1])
		require.Len(t, fields, 6)
		assert.Equal(t, s.KeyType(), fields[0])
		assert.Equal(t, s.SecretBech32HRP(), fields[3])
		assert.Equal(t, s.PublicBech32HRP(), fields[4])
	}
}

func TestSignVerify(t *testing.T) {
	for _, keyType := range keytypes.ListSupportedKeyTypes() {
		t.Run(keyType, func(t *testing.T) {
			gen := genTestKey(t, keyType)

			secretFlag = gen.Secret
			cmd, out := testCmd("")
			require.NoError(t, sign(cmd, []string{"hello"}))
			sigHex := strings.TrimSpace(out.String())
			_, err := hex.DecodeString(sigHex)
			require.NoError(t, err)

			cmd, out = testCmd("")
			require.NoError(t, verify(cmd, []string{gen.PubKey, "hello", sigHex}))
			assert.Equal(t, "OK\n", out.String())

			cmd, out = testCmd("")
			err = verify(cmd, []string{gen.PubKey, "hellO", sigHex})
			require.ErrorIs(t, err, ErrSignatureInvalid)
			assert.Empty(t, out.String())
		})
	}
}

func TestSignSecretFromStdin(t *testing.T) {
	gen := genTestKey(t, ed25519.KeyType)

	cmd, out := testCmd(gen.Secret)
	require.NoError(t, sign(cmd, []string{"msg"}))
	sigHex := strings.TrimSpace(out.String())
	assert.Len(t, sigHex, 2*ed25519.SignatureSize)

	cmd, _ = testCmd("")
	require.NoError(t, verify(cmd, []string{gen.PubKey, "msg", sigHex}))
}

func TestVerifyBadInput(t *testing.T) {
	gen := genTestKey(t, ed25519.KeyType)

	cmd, _ := testCmd("")
	require.Error(t, verify(cmd, []string{gen.Secret, "msg", "00"}))
	require.Error(t, verify(cmd, []string{gen.PubKey, "msg", "zz"}))
	require.ErrorIs(t, verify(cmd, []string{gen.PubKey, "msg", "00"}), ErrSignatureInvalid)
}

func TestInitFiles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "home")
	clearConfig(t, root)

	conf := cfg.TestConfig().SetRoot(root)
	conf.KeyType = secp256k1.KeyType
	require.NoError(t, initFilesWithConfig(conf))

	var written map[string]any
	_, err := toml.DecodeFile(conf.ConfigFile(), &written)
	require.NoError(t, err)
	assert.Equal(t, secp256k1.KeyType, written["key_type"])
	assert.Equal(t, cfg.LogFormatJSON, written["log_format"])

	// an existing file is left alone
	conf.KeyType = ed25519.KeyType
	require.NoError(t, initFilesWithConfig(conf))
	bz, err := os.ReadFile(conf.ConfigFile())
	require.NoError(t, err)
	assert.Contains(t, string(bz), secp256k1.KeyType)
}

func TestVersion(t *testing.T) {
	cmd, out := testCmd("")
	verbose = false
	VersionCmd.Run(cmd, nil)
	assert.True(t, strings.HasPrefix(out.String(), version.SemVer))

	cmd, out = testCmd("")
	verbose = true
	defer func() { verbose = false }()
	VersionCmd.Run(cmd, nil)

	var v struct {
		Chaincrypto      string `json:"chaincrypto"`
		KeyFormatVersion uint64 `json:"key_format_version"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, version.KeyFormatVersion, v.KeyFormatVersion)
	assert.True(t, strings.HasPrefix(v.Chaincrypto, version.SemVer))
}

func TestArmorInspect(t *testing.T) {
	gen := genTestKey(t, secp256k1.KeyType)

	cases := []struct {
		input string
		kind  string
		hrp   string
	}{
		{gen.PubKey, "public", secp256k1.PublicBech32HRP},
		{gen.Secret, "secret", secp256k1.SecretBech32HRP},
	}

	for i, tc := range cases {
		cmd, out := testCmd("")
		require.NoError(t, armorKey(cmd, []string{tc.input}), "#%d", i)
		armored := out.String()
		assert.True(t, strings.HasPrefix(armored, "-----BEGIN CHAINCRYPTO"), "#%d", i)

		cmd, out = testCmd("")
		require.NoError(t, inspect(cmd, []string{armored}), "#%d", i)
		var info inspectInfo
		require.NoError(t, json.Unmarshal(out.Bytes(), &info), "#%d", i)
		assert.Equal(t, tc.kind, info.Kind, "#%d", i)
		assert.Equal(t, tc.hrp, info.HRP, "#%d", i)
		assert.Equal(t, gen.PubKey, info.PubKey, "#%d", i)
	}

	// secret from stdin
	cmd, out := testCmd(gen.Secret + "\n")
	require.NoError(t, armorKey(cmd, nil))
	assert.Contains(t, out.String(), "CHAINCRYPTO PRIVATE KEY")
}
