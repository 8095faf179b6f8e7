package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	_ "embed"

	"github.com/pkg/errors"

	"github.com/ledgerkit/chaincrypto/crypto/keytypes"
)

// DefaultDirPerm is the default permissions used when creating directories.
const DefaultDirPerm = 0o700

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("configFileTemplate").Funcs(template.FuncMap{
		"StringsJoin":       strings.Join,
		"SupportedKeyTypes": keytypes.ListSupportedKeyTypes,
	})
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// EnsureRoot creates the root and config directories if they don't exist,
// and writes the default config file if it is missing.
func EnsureRoot(rootDir string) error {
	if rootDir == "" {
		return ErrNoHome
	}
	if err := os.MkdirAll(filepath.Join(rootDir, DefaultConfigDir), DefaultDirPerm); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	configFilePath := filepath.Join(rootDir, defaultConfigFilePath)

	// Write default config file if missing.
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		return WriteConfigFile(configFilePath, DefaultConfig())
	}
	return nil
}

// WriteConfigFile renders config using the template and writes it to configFilePath.
func WriteConfigFile(configFilePath string, config *Config) error {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, config); err != nil {
		return errors.Wrap(err, "render config template")
	}

	if err := os.WriteFile(configFilePath, buffer.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", configFilePath)
	}
	return nil
}

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go.
//
//go:embed config.toml.tpl
var defaultConfigTemplate string
