package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/encoding"
)

// keyInfo is the JSON document printed by the key commands. Secret is only
// set by gen-key.
type keyInfo struct {
	KeyType string `json:"key_type"`
	Secret  string `json:"secret,omitempty"`
	PubKey  string `json:"pub_key"`
	Address string `json:"address"`
}

func newKeyInfo(keyType string, pubKey crypto.PubKey) (keyInfo, error) {
	pubStr, err := encoding.PubKeyToBech32(pubKey)
	if err != nil {
		return keyInfo{}, errors.Wrap(err, "encode public key")
	}
	return keyInfo{
		KeyType: keyType,
		PubKey:  pubStr,
		Address: pubKey.Address().String(),
	}, nil
}

func printJSON(w io.Writer, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal output")
	}
	_, err = fmt.Fprintln(w, string(bz))
	return err
}

// readSecret returns the bech32 secret given as the only argument, or the
// first line of in when there is no argument.
func readSecret(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	bz, err := io.ReadAll(io.LimitReader(in, 4096))
	if err != nil {
		return "", errors.Wrap(err, "read secret key from stdin")
	}
	defer crypto.Zeroize(bz)

	line, _, _ := strings.Cut(string(bz), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("no secret key given")
	}
	return line, nil
}
