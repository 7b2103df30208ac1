package keystore

import "errors"

var (
	// ErrNullPlainText ...
	ErrNullPlainText = errors.New("text to encrypt must not be null")
	// ErrNullPassphrase ...
	ErrNullPassphrase = errors.New("passphrase must not be null")
	// ErrNullCypherText ...
	ErrNullCypherText = errors.New("cypher text must not be null")
	// ErrInvalidCypherText ...
	ErrInvalidCypherText = errors.New("cypher text must be a valid base64 string")
	// ErrWrongPassphrase is returned when the cypher text can not be
	// authenticated with the key derived from the given passphrase.
	ErrWrongPassphrase = errors.New("wrong passphrase")
	// ErrMissingPrivateKey is returned when the decrypted keystore has no
	// private key.
	ErrMissingPrivateKey = errors.New("keystore has no private key")
	// ErrInvalidPrivateKey ...
	ErrInvalidPrivateKey = errors.New("private key must be a 32 bytes hex string")
)
