package commands

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/armor"
	"github.com/ledgerkit/chaincrypto/crypto/encoding"
	"github.com/ledgerkit/chaincrypto/crypto/keytypes"
)

const (
	kindPublic = "public"
	kindSecret = "secret"
)

// InspectCmd describes a key without revealing secret material.
var InspectCmd = &cobra.Command{
	Use:   "inspect [key]",
	Short: "Describe a bech32 or ASCII armored public or secret key",
	Args:  cobra.ExactArgs(1),
	RunE:  inspect,
}

type inspectInfo struct {
	Kind    string `json:"kind"`
	KeyType string `json:"key_type"`
	HRP     string `json:"hrp"`
	Size    int    `json:"size"`
	PubKey  string `json:"pub_key"`
	Address string `json:"address"`
}

func inspect(cmd *cobra.Command, args []string) error {
	str := strings.TrimSpace(args[0])

	var (
		out inspectInfo
		err error
	)
	if strings.HasPrefix(str, "-----BEGIN ") {
		out, err = inspectArmor(str)
	} else {
		out, err = inspectBech32(str)
	}
	if err != nil {
		return err
	}

	logger.Debug("Inspected key", "kind", out.Kind, "keyType", out.KeyType)
	return printJSON(cmd.OutOrStdout(), out)
}

func inspectBech32(str string) (inspectInfo, error) {
	hrp, err := encoding.HRP(str)
	if err != nil {
		return inspectInfo{}, errors.Wrap(err, "can't decode key")
	}

	if _, ok := keytypes.SchemeByPublicHRP(hrp); ok {
		pubKey, err := encoding.PubKeyFromBech32(str)
		if err != nil {
			return inspectInfo{}, errors.Wrap(err, "can't decode public key")
		}
		return describe(kindPublic, pubKey.Type(), pubKey)
	}
	if _, ok := keytypes.SchemeBySecretHRP(hrp); ok {
		privKey, err := encoding.PrivKeyFromBech32(str)
		if err != nil {
			return inspectInfo{}, errors.Wrap(err, "can't decode secret key")
		}
		defer privKey.Zeroize()
		return describe(kindSecret, privKey.Type(), privKey.PubKey())
	}
	return inspectInfo{}, encoding.ErrUnknownPrefix{HRP: hrp}
}

func inspectArmor(str string) (inspectInfo, error) {
	pubKey, err := armor.UnarmorPubKey(str)
	if err == nil {
		return describe(kindPublic, pubKey.Type(), pubKey)
	}
	if !errors.As(err, &armor.ErrBlockType{}) {
		return inspectInfo{}, err
	}

	privKey, err := armor.UnarmorPrivKey(str)
	if err != nil {
		return inspectInfo{}, err
	}
	defer privKey.Zeroize()
	return describe(kindSecret, privKey.Type(), privKey.PubKey())
}

// describe fills in the sizes and prefix of keyType. pubKey is the public
// half of the described key.
func describe(kind, keyType string, pubKey crypto.PubKey) (inspectInfo, error) {
	scheme, err := keytypes.SchemeByKeyType(keyType)
	if err != nil {
		return inspectInfo{}, err
	}
	info, err := newKeyInfo(keyType, pubKey)
	if err != nil {
		return inspectInfo{}, err
	}

	out := inspectInfo{
		Kind:    kind,
		KeyType: keyType,
		PubKey:  info.PubKey,
		Address: info.Address,
	}
	if kind == kindSecret {
		out.HRP, out.Size = scheme.SecretBech32HRP(), scheme.SecretKeySize()
	} else {
		out.HRP, out.Size = scheme.PublicBech32HRP(), scheme.PublicKeySize()
	}
	return out, nil
}
