package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ledgerkit/chaincrypto/crypto/encoding"
)

// ShowPubKeyCmd derives the public key of a bech32 secret key.
var ShowPubKeyCmd = &cobra.Command{
	Use:     "show-pubkey [secret]",
	Aliases: []string{"show_pubkey"},
	Short:   "Show the public key and address of a secret key",
	Long: `Show the public key and address of a bech32 encoded secret key.
The secret is read from standard input when it is not given as argument.`,
	Args: cobra.MaximumNArgs(1),
	RunE: showPubKey,
}

func showPubKey(cmd *cobra.Command, args []string) error {
	secret, err := readSecret(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	privKey, err := encoding.PrivKeyFromBech32(secret)
	if err != nil {
		return errors.Wrap(err, "can't decode secret key")
	}
	defer privKey.Zeroize()

	info, err := newKeyInfo(privKey.Type(), privKey.PubKey())
	if err != nil {
		return err
	}
	logger.Debug("Derived public key", "keyType", info.KeyType, "address", info.Address)
	return printJSON(cmd.OutOrStdout(), info)
}
