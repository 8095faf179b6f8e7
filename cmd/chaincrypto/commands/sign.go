package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ledgerkit/chaincrypto/crypto/encoding"
)

// ErrSignatureInvalid is returned by verify when the signature does not
// match.
var ErrSignatureInvalid = errors.New("signature is invalid")

var secretFlag string

// SignCmd signs a message with a bech32 secret key and prints the hex
// encoded signature.
var SignCmd = &cobra.Command{
	Use:   "sign [message]",
	Short: "Sign a message",
	Long: `Sign a message with a bech32 encoded secret key given by --secret.
The secret is read from standard input when the flag is not set.`,
	Args: cobra.ExactArgs(1),
	RunE: sign,
}

// VerifyCmd checks a hex encoded signature against a bech32 public key.
var VerifyCmd = &cobra.Command{
	Use:   "verify [pub-key] [message] [signature]",
	Short: "Verify a signature",
	Args:  cobra.ExactArgs(3),
	RunE:  verify,
}

func init() {
	SignCmd.Flags().StringVar(&secretFlag, "secret", "", "bech32 encoded secret key")
}

func sign(cmd *cobra.Command, args []string) error {
	var secretArgs []string
	if secretFlag != "" {
		secretArgs = []string{secretFlag}
	}
	secret, err := readSecret(cmd.InOrStdin(), secretArgs)
	if err != nil {
		return err
	}

	privKey, err := encoding.PrivKeyFromBech32(secret)
	if err != nil {
		return errors.Wrap(err, "can't decode secret key")
	}
	defer privKey.Zeroize()

	sig, err := privKey.Sign([]byte(args[0]))
	if err != nil {
		return errors.Wrap(err, "can't sign message")
	}

	logger.Debug("Signed message", "keyType", privKey.Type(), "size", len(sig))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sig))
	return err
}

func verify(cmd *cobra.Command, args []string) error {
	pubKey, err := encoding.PubKeyFromBech32(args[0])
	if err != nil {
		return errors.Wrap(err, "can't decode public key")
	}
	sig, err := hex.DecodeString(args[2])
	if err != nil {
		return errors.Wrap(err, "can't decode signature")
	}

	if !pubKey.VerifySignature([]byte(args[1]), sig) {
		logger.Info("Signature rejected", "keyType", pubKey.Type(), "address", pubKey.Address())
		return ErrSignatureInvalid
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return err
}
