// Package armor renders keys as OpenPGP style ASCII armor blocks. The block
// headers name the key type and the key format version, the body is the
// binary key.
package armor

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/crypto/openpgp/armor" //nolint: staticcheck

	"github.com/ledgerkit/chaincrypto/crypto"
	"github.com/ledgerkit/chaincrypto/crypto/keytypes"
	"github.com/ledgerkit/chaincrypto/version"
)

const (
	BlockTypePubKey  = "CHAINCRYPTO PUBLIC KEY"
	BlockTypePrivKey = "CHAINCRYPTO PRIVATE KEY"

	HeaderType    = "type"
	HeaderVersion = "version"
)

// EncodeError represents an error from calling [EncodeArmor].
type EncodeError struct{ Err error }

func (e *EncodeError) Error() string {
	return fmt.Sprintf("armor: could not encode ASCII armor: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError represents a block that is not valid armor or does not carry
// a key this package understands.
type DecodeError struct{ Err error }

func (e *DecodeError) Error() string {
	return fmt.Sprintf("armor: could not decode ASCII armor: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ErrBlockType is returned when an armored block holds something other than
// the requested kind of key.
type ErrBlockType struct {
	Want, Got string
}

func (e ErrBlockType) Error() string {
	return fmt.Sprintf("armor: unexpected block type %q, want %q", e.Got, e.Want)
}

func EncodeArmor(blockType string, headers map[string]string, data []byte) (string, error) {
	buf := new(bytes.Buffer)
	w, err := armor.Encode(buf, blockType, headers)
	if err != nil {
		return "", &EncodeError{Err: err}
	}
	_, err = w.Write(data)
	if err != nil {
		return "", &EncodeError{Err: err}
	}
	err = w.Close()
	if err != nil {
		return "", &EncodeError{Err: err}
	}
	return buf.String(), nil
}

func DecodeArmor(armorStr string) (blockType string, headers map[string]string, data []byte, err error) {
	buf := bytes.NewBufferString(armorStr)
	block, err := armor.Decode(buf)
	if err != nil {
		return "", nil, nil, &DecodeError{Err: err}
	}
	data, err = io.ReadAll(block.Body)
	if err != nil {
		return "", nil, nil, &DecodeError{Err: err}
	}
	return block.Type, block.Header, data, nil
}

// ArmorPubKey encodes pubKey as a public key block.
func ArmorPubKey(pubKey crypto.PubKey) (string, error) {
	return EncodeArmor(BlockTypePubKey, keyHeaders(pubKey.Type()), pubKey.Bytes())
}

// ArmorPrivKey encodes privKey as a private key block.
func ArmorPrivKey(privKey crypto.PrivKey) (string, error) {
	bz := privKey.Bytes()
	defer crypto.Zeroize(bz)
	return EncodeArmor(BlockTypePrivKey, keyHeaders(privKey.Type()), bz)
}

// UnarmorPubKey decodes a block written by ArmorPubKey.
func UnarmorPubKey(armorStr string) (crypto.PubKey, error) {
	scheme, data, err := decodeKey(armorStr, BlockTypePubKey)
	if err != nil {
		return nil, err
	}
	return scheme.PublicFromBinary(data)
}

// UnarmorPrivKey decodes a block written by ArmorPrivKey.
func UnarmorPrivKey(armorStr string) (crypto.PrivKey, error) {
	scheme, data, err := decodeKey(armorStr, BlockTypePrivKey)
	if err != nil {
		return nil, err
	}
	defer crypto.Zeroize(data)
	return scheme.SecretFromBinary(data)
}

func keyHeaders(keyType string) map[string]string {
	return map[string]string{
		HeaderType:    keyType,
		HeaderVersion: strconv.FormatUint(version.KeyFormatVersion, 10),
	}
}

func decodeKey(armorStr, wantBlockType string) (keytypes.Scheme, []byte, error) {
	blockType, headers, data, err := DecodeArmor(armorStr)
	if err != nil {
		return nil, nil, err
	}
	if blockType != wantBlockType {
		crypto.Zeroize(data)
		return nil, nil, ErrBlockType{Want: wantBlockType, Got: blockType}
	}
	if v := headers[HeaderVersion]; v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n > version.KeyFormatVersion {
			crypto.Zeroize(data)
			return nil, nil, &DecodeError{Err: fmt.Errorf("unsupported key format version %q", v)}
		}
	}
	scheme, err := keytypes.SchemeByKeyType(headers[HeaderType])
	if err != nil {
		crypto.Zeroize(data)
		return nil, nil, err
	}
	return scheme, data, nil
}
