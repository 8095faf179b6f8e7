// Package config holds the configuration of the chaincrypto command line
// tool.
package config

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ledgerkit/chaincrypto/crypto/ed25519"
	"github.com/ledgerkit/chaincrypto/crypto/keytypes"
	"github.com/ledgerkit/chaincrypto/libs/cli/flags"
	"github.com/ledgerkit/chaincrypto/libs/log"
)

const (
	// LogFormatPlain is a format for colored text.
	LogFormatPlain = "plain"
	// LogFormatJSON is a format for json output.
	LogFormatJSON = "json"

	// DefaultLogLevel defines a default log level as INFO.
	DefaultLogLevel = "info"

	DefaultConfigDir      = "config"
	DefaultConfigFileName = "config.toml"

	// DefaultHomeDir is the home directory under $HOME.
	DefaultHomeDir = ".chaincrypto"
)

var defaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)

// Config defines the top level configuration of the tool.
type Config struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	// Key algorithm used when a command is not given one explicitly
	KeyType string `mapstructure:"key_type"`

	// Output level for logging
	LogLevel string `mapstructure:"log_level"`

	// Output format: 'plain' (colored text) or 'json'
	LogFormat string `mapstructure:"log_format"`

	// Colored output for the plain format
	LogColors bool `mapstructure:"log_colors"`

	// Render stack traces of wrapped errors
	Trace bool `mapstructure:"trace"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		KeyType:   ed25519.KeyType,
		LogLevel:  DefaultLogLevel,
		LogFormat: LogFormatPlain,
		LogColors: true,
	}
}

// TestConfig returns a configuration that can be used for testing.
func TestConfig() *Config {
	cfg := DefaultConfig()
	cfg.LogFormat = LogFormatJSON
	cfg.LogColors = false
	return cfg
}

// SetRoot sets the RootDir for all Config structs.
func (cfg *Config) SetRoot(root string) *Config {
	cfg.RootDir = root
	return cfg
}

// ConfigFile returns the full path to the config.toml file.
func (cfg Config) ConfigFile() string {
	return rootify(defaultConfigFilePath, cfg.RootDir)
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg Config) ValidateBasic() error {
	if _, err := keytypes.SchemeByKeyType(cfg.KeyType); err != nil {
		return ErrInSection{Section: BaseSection, Err: err}
	}
	switch cfg.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return ErrInSection{Section: BaseSection, Err: ErrUnknownLogFormat}
	}
	if _, err := flags.ParseLogLevel(cfg.LogLevel, log.NewNopLogger(), DefaultLogLevel); err != nil {
		return ErrInSection{Section: BaseSection, Err: errors.Wrap(err, "log_level")}
	}
	return nil
}

// helper function to make config creation independent of root dir.
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
