package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/chaincrypto/crypto/keytypes"
)

// ListKeyTypesCmd prints the supported algorithms with their sizes and
// bech32 prefixes.
var ListKeyTypesCmd = &cobra.Command{
	Use:     "list-key-types",
	Aliases: []string{"list_key_types"},
	Short:   "List supported key types",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tSECRET SIZE\tPUBLIC SIZE\tSECRET HRP\tPUBLIC HRP\tPUBLIC TYPE")
		for _, s := range keytypes.Schemes() {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\n",
				s.KeyType(), s.SecretKeySize(), s.PublicKeySize(),
				s.SecretBech32HRP(), s.PublicBech32HRP(), s.PublicKeyType())
		}
		return tw.Flush()
	},
}
