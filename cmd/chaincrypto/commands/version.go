package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/chaincrypto/version"
)

var verbose bool

// VersionCmd ...
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, _ []string) {
		ccVersion := version.SemVer
		if version.GitCommitHash != "" {
			ccVersion += "+" + version.GitCommitHash
		}

		if verbose {
			values, err := json.MarshalIndent(struct {
				Chaincrypto      string `json:"chaincrypto"`
				KeyFormatVersion uint64 `json:"key_format_version"`
			}{
				Chaincrypto:      ccVersion,
				KeyFormatVersion: version.KeyFormatVersion,
			}, "", "  ")
			if err != nil {
				panic(fmt.Sprintf("failed to marshal version info: %v", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(values))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), ccVersion)
		}
	},
}

func init() {
	VersionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show key format version")
}
