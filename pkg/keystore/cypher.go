package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/scrypt"
)

const (
	// DefaultScryptN is the scrypt cost parameter used when none is given.
	// 2^20 = 1048576 recommended length for key-stretching, check the doc for
	// other recommended values: https://godoc.org/golang.org/x/crypto/scrypt
	DefaultScryptN = 1 << 20

	saltSize = 32
	keySize  = 32
)

// EncryptOpts is the struct given to Encrypt method
type EncryptOpts struct {
	PlainText  string
	Passphrase string
	ScryptN    int
}

func (o EncryptOpts) validate() error {
	if len(o.PlainText) <= 0 {
		return ErrNullPlainText
	}
	if len(o.Passphrase) <= 0 {
		return ErrNullPassphrase
	}
	return nil
}

// Encrypt encrypts (with AES-256-GCM) a plaintext with the provided
// passphrase. The random salt is appended to the nonce-prefixed ciphertext.
func Encrypt(opts EncryptOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	key, salt, err := DeriveKey([]byte(opts.Passphrase), nil, opts.ScryptN)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(opts.PlainText), nil)
	ciphertext = append(ciphertext, salt...)

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptOpts is the struct given to Decrypt method
type DecryptOpts struct {
	CypherText string
	Passphrase string
	ScryptN    int
}

func (o DecryptOpts) validate() error {
	if len(o.CypherText) <= 0 {
		return ErrNullCypherText
	}
	if _, err := base64.StdEncoding.DecodeString(o.CypherText); err != nil {
		return ErrInvalidCypherText
	}
	if len(o.Passphrase) <= 0 {
		return ErrNullPassphrase
	}
	return nil
}

// Decrypt decrypts a cyphertext produced by Encrypt. ErrWrongPassphrase is
// returned if the authentication of the ciphertext fails.
func Decrypt(opts DecryptOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	data, _ := base64.StdEncoding.DecodeString(opts.CypherText)
	if len(data) <= saltSize {
		return "", ErrInvalidCypherText
	}
	salt, data := data[len(data)-saltSize:], data[:len(data)-saltSize]

	key, _, err := DeriveKey([]byte(opts.Passphrase), salt, opts.ScryptN)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	if len(data) < gcm.NonceSize() {
		return "", ErrInvalidCypherText
	}
	nonce, text := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, text, nil)
	if err != nil {
		return "", ErrWrongPassphrase
	}
	return string(plaintext), nil
}

// DeriveKey derives a 32 byte array key from a custom passhprase. A random
// salt is generated if nil. A non positive n falls back to DefaultScryptN.
func DeriveKey(passphrase, salt []byte, n int) ([]byte, []byte, error) {
	if salt == nil {
		salt = make([]byte, saltSize)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, err
		}
	}
	if n <= 0 {
		n = DefaultScryptN
	}
	key, err := scrypt.Key(passphrase, salt, n, 8, 1, keySize)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	blockCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(blockCipher)
}
