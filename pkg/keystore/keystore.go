package keystore

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Version of the keystore format produced by Seal.
const Version = 1

// KeysData is the plaintext content of a keystore.
type KeysData struct {
	PrivateKey string `json:"privateKey"`
	ChainCode  string `json:"chainCode,omitempty"`
}

// NewKeysData returns the keys data for the given private key.
func NewKeysData(privateKey *btcec.PrivateKey) KeysData {
	return KeysData{PrivateKey: "0x" + hex.EncodeToString(privateKey.Serialize())}
}

// PrivKey parses the private key, failing with ErrMissingPrivateKey if the
// keys data does not carry one.
func (k KeysData) PrivKey() (*btcec.PrivateKey, error) {
	if len(k.PrivateKey) <= 0 {
		return nil, ErrMissingPrivateKey
	}
	buf, err := hex.DecodeString(strings.TrimPrefix(k.PrivateKey, "0x"))
	if err != nil || len(buf) != 32 {
		return nil, ErrInvalidPrivateKey
	}
	privkey, _ := btcec.PrivKeyFromBytes(buf)
	return privkey, nil
}

// Seal serializes and encrypts the keys data with the given password.
func Seal(keys KeysData, password string, scryptN int) (string, error) {
	buf, err := json.Marshal(keys)
	if err != nil {
		return "", err
	}
	return Encrypt(EncryptOpts{
		PlainText:  string(buf),
		Passphrase: password,
		ScryptN:    scryptN,
	})
}

// Open decrypts and deserializes the keys data sealed with Seal.
func Open(cypherText, password string, scryptN int) (*KeysData, error) {
	plaintext, err := Decrypt(DecryptOpts{
		CypherText: cypherText,
		Passphrase: password,
		ScryptN:    scryptN,
	})
	if err != nil {
		return nil, err
	}

	keys := &KeysData{}
	if err := json.Unmarshal([]byte(plaintext), keys); err != nil {
		return nil, ErrInvalidCypherText
	}
	return keys, nil
}
