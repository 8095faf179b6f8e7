package main

import (
	"os"
	"path/filepath"

	cmd "github.com/ledgerkit/chaincrypto/cmd/chaincrypto/commands"
	cfg "github.com/ledgerkit/chaincrypto/config"
	"github.com/ledgerkit/chaincrypto/libs/cli"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.AddCommand(
		cmd.GenKeyCmd,
		cmd.ShowPubKeyCmd,
		cmd.InspectCmd,
		cmd.ArmorCmd,
		cmd.ListKeyTypesCmd,
		cmd.SignCmd,
		cmd.VerifyCmd,
		cmd.InitFilesCmd,
		cmd.VersionCmd,
	)

	cmd := cli.PrepareBaseCmd(rootCmd, "CHAINCRYPTO", os.ExpandEnv(filepath.Join("$HOME", cfg.DefaultHomeDir)))
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
