package flags_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/chaincrypto/crypto/ed25519"
	chainflags "github.com/ledgerkit/chaincrypto/libs/cli/flags"
	"github.com/ledgerkit/chaincrypto/libs/log"
)

const (
	defaultLogLevelValue = "info"
)

func TestParseLogLevel(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger := log.NewJSONLoggerNoTS(&buf)

	correctLogLevels := []struct {
		lvl              string
		expectedLogLines []string
	}{
		{"keytypes:error", []string{
			``, // if no default is given, assume info
			``,
			`{"level":"ERROR","msg":"Mesmero","module":"keytypes"}`,
			`{"level":"INFO","msg":"Mind","module":"encoding"}`, // if no default is given, assume info
			``,
		}},

		{"keytypes:error,*:debug", []string{
			`{"level":"DEBUG","msg":"Kingpin","module":"keytypes","module":"hdkey"}`,
			``,
			`{"level":"ERROR","msg":"Mesmero","module":"keytypes"}`,
			`{"level":"INFO","msg":"Mind","module":"encoding"}`,
			`{"level":"DEBUG","msg":"Gideon"}`,
		}},

		{"*:debug,hdkey:none", []string{
			``,
			`{"level":"INFO","msg":"Kitty Pryde","module":"keytypes"}`,
			`{"level":"ERROR","msg":"Mesmero","module":"keytypes"}`,
			`{"level":"INFO","msg":"Mind","module":"encoding"}`,
			`{"level":"DEBUG","msg":"Gideon"}`,
		}},
	}

	for _, c := range correctLogLevels {
		logger, err := chainflags.ParseLogLevel(c.lvl, jsonLogger, defaultLogLevelValue)
		if err != nil {
			t.Fatal(err)
		}

		buf.Reset()

		logger.With("module", "keytypes").With("module", "hdkey").Debug("Kingpin")
		if have := strings.TrimSpace(buf.String()); c.expectedLogLines[0] != have {
			t.Errorf("\nwant '%s'\nhave '%s'\nlevel '%s'", c.expectedLogLines[0], have, c.lvl)
		}

		buf.Reset()

		logger.With("module", "keytypes").Info("Kitty Pryde")
		if have := strings.TrimSpace(buf.String()); c.expectedLogLines[1] != have {
			t.Errorf("\nwant '%s'\nhave '%s'\nlevel '%s'", c.expectedLogLines[1], have, c.lvl)
		}

		buf.Reset()

		logger.With("module", "keytypes").Error("Mesmero")
		if have := strings.TrimSpace(buf.String()); c.expectedLogLines[2] != have {
			t.Errorf("\nwant '%s'\nhave '%s'\nlevel '%s'", c.expectedLogLines[2], have, c.lvl)
		}

		buf.Reset()

		logger.With("module", "encoding").Info("Mind")
		if have := strings.TrimSpace(buf.String()); c.expectedLogLines[3] != have {
			t.Errorf("\nwant '%s'\nhave '%s'\nlevel '%s'", c.expectedLogLines[3], have, c.lvl)
		}

		buf.Reset()

		logger.Debug("Gideon")
		if have := strings.TrimSpace(buf.String()); c.expectedLogLines[4] != have {
			t.Errorf("\nwant '%s'\nhave '%s'\nlevel '%s'", c.expectedLogLines[4], have, c.lvl)
		}
	}

	incorrectLogLevel := []string{"some", "keytypes:some", "*:some,keytypes:error"}
	for _, lvl := range incorrectLogLevel {
		if _, err := chainflags.ParseLogLevel(lvl, jsonLogger, defaultLogLevelValue); err == nil {
			t.Fatalf("Expected %s to produce error", lvl)
		}
	}
}

func TestParseLogLevelKeyModules(t *testing.T) {
	var buf bytes.Buffer
	logger, err := chainflags.ParseLogLevel("keytypes:debug,encoding:none,*:error", log.NewJSONLoggerNoTS(&buf), defaultLogLevelValue)
	require.NoError(t, err)

	logger.With("module", "keytypes").Debug("Generated key", "keyType", ed25519.KeyType, "key", ed25519.GenPrivKey())
	assert.Equal(t,
		`{"level":"DEBUG","msg":"Generated key","module":"keytypes","keyType":"ed25519","key":"REDACTED(ed25519)"}`,
		strings.TrimSpace(buf.String()))

	buf.Reset()
	logger.With("module", "encoding").Error("Bad prefix", "hrp", "ed255")
	assert.Empty(t, buf.String())

	buf.Reset()
	logger.With("module", "main").Info("Inspected key")
	assert.Empty(t, buf.String())
}
