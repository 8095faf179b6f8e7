package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ledgerkit/chaincrypto/crypto/armor"
	"github.com/ledgerkit/chaincrypto/crypto/encoding"
	"github.com/ledgerkit/chaincrypto/crypto/keytypes"
)

// ArmorCmd converts a bech32 key into an ASCII armor block.
var ArmorCmd = &cobra.Command{
	Use:   "armor [bech32-key]",
	Short: "Print a bech32 encoded key as an ASCII armor block",
	Long: `Print a bech32 encoded key as an ASCII armor block.
Secret keys are read from standard input when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: armorKey,
}

func armorKey(cmd *cobra.Command, args []string) error {
	str, err := readSecret(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	hrp, err := encoding.HRP(str)
	if err != nil {
		return errors.Wrap(err, "can't decode key")
	}

	var out string
	if _, ok := keytypes.SchemeByPublicHRP(hrp); ok {
		pubKey, err := encoding.PubKeyFromBech32(str)
		if err != nil {
			return errors.Wrap(err, "can't decode public key")
		}
		out, err = armor.ArmorPubKey(pubKey)
		if err != nil {
			return err
		}
	} else {
		privKey, err := encoding.PrivKeyFromBech32(str)
		if err != nil {
			return errors.Wrap(err, "can't decode secret key")
		}
		defer privKey.Zeroize()
		out, err = armor.ArmorPrivKey(privKey)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
