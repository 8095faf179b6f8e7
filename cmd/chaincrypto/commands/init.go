package commands

import (
	"os"

	"github.com/spf13/cobra"

	cfg "github.com/ledgerkit/chaincrypto/config"
)

// InitFilesCmd writes a config file with the current settings.
var InitFilesCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the chaincrypto home directory",
	Args:  cobra.NoArgs,
	RunE:  initFiles,
}

func initFiles(*cobra.Command, []string) error {
	return initFilesWithConfig(config)
}

func initFilesWithConfig(config *cfg.Config) error {
	configFile := config.ConfigFile()
	if _, err := os.Stat(configFile); err == nil {
		logger.Info("Found config file", "path", configFile)
		return nil
	}

	if err := cfg.EnsureRoot(config.RootDir); err != nil {
		return err
	}
	// EnsureRoot wrote the defaults; keep what flags and env selected.
	if err := cfg.WriteConfigFile(configFile, config); err != nil {
		return err
	}
	logger.Info("Generated config file", "path", configFile, "keyType", config.KeyType)
	return nil
}
