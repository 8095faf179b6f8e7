package commands

import (
	"github.com/spf13/cobra"

	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/encoding"
	"github.com/ledgerkit/chaincrypto/crypto/keytypes"
	"github.com/ledgerkit/chaincrypto/libs/log"
)

// GenKeyCmd generates a key pair of the configured key type and prints it
// in bech32 form.
var GenKeyCmd = &cobra.Command{
	Use:     "gen-key",
	Aliases: []string{"gen_key"},
	Short:   "Generate a new key pair",
	Args:    cobra.NoArgs,
	RunE:    genKey,
}

func genKey(cmd *cobra.Command, _ []string) error {
	scheme, err := keytypes.SchemeByKeyType(config.KeyType)
	if err != nil {
		return err
	}

	privKey := scheme.Generate(crypto.CReader())
	defer privKey.Zeroize()

	pubKey, err := scheme.ComputePublic(privKey)
	if err != nil {
		return err
	}
	info, err := newKeyInfo(scheme.KeyType(), pubKey)
	if err != nil {
		return err
	}
	info.Secret, err = encoding.PrivKeyToBech32(privKey)
	if err != nil {
		return err
	}

	logger.Info("Generated key", "keyType", scheme.KeyType(), "address", log.NewLazyAddress(pubKey))
	return printJSON(cmd.OutOrStdout(), info)
}
