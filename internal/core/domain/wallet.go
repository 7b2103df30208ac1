package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// AddressInfo is an address of the wallet together with the identifiers
// used to look up its cells.
type AddressInfo struct {
	Address  string `json:"address"`
	LockHash string `json:"lock_hash"`
	Blake160 string `json:"blake160"`
}

// Addresses groups the receiving and change addresses of a wallet.
type Addresses struct {
	Receiving []AddressInfo `json:"receiving"`
	Change    []AddressInfo `json:"change"`
}

// Keystore is the password protected key material of a wallet. CipherText
// is opaque to everything but the signer.
type Keystore struct {
	Version    int    `json:"version"`
	CipherText string `json:"crypto"`
	ScryptN    int    `json:"scrypt_n,omitempty"`
}

// IsEmpty returns whether the keystore holds no encrypted material.
func (k Keystore) IsEmpty() bool {
	return len(k.CipherText) <= 0
}

// Wallet is a named set of addresses sharing one keystore.
type Wallet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Addresses Addresses `json:"addresses"`
	Keystore  Keystore  `json:"keystore"`
}

// NewWallet returns a wallet with a fresh random ID.
func NewWallet(name string, addresses Addresses, keystore Keystore) (*Wallet, error) {
	name = strings.TrimSpace(name)
	if len(name) <= 0 {
		return nil, ErrEmptyWalletName
	}
	if keystore.IsEmpty() {
		return nil, errors.New("wallet keystore must not be empty")
	}
	return &Wallet{
		ID:        uuid.New().String(),
		Name:      name,
		Addresses: addresses,
		Keystore:  keystore,
	}, nil
}

// Rename sets the name of the wallet, trimmed of surrounding spaces.
func (w *Wallet) Rename(name string) error {
	name = strings.TrimSpace(name)
	if len(name) <= 0 {
		return ErrEmptyWalletName
	}
	w.Name = name
	return nil
}

// LockHashes returns the unique lock hashes of all receiving and change
// addresses, in order.
func (w *Wallet) LockHashes() []string {
	seen := make(map[string]struct{})
	lockHashes := make([]string, 0)
	all := append(
		append([]AddressInfo{}, w.Addresses.Receiving...), w.Addresses.Change...,
	)
	for _, a := range all {
		if len(a.LockHash) <= 0 {
			continue
		}
		if _, ok := seen[a.LockHash]; ok {
			continue
		}
		seen[a.LockHash] = struct{}{}
		lockHashes = append(lockHashes, a.LockHash)
	}
	return lockHashes
}

// ChangeAddress returns the address receiving the change of the wallet's
// transactions.
func (w *Wallet) ChangeAddress() (AddressInfo, error) {
	if len(w.Addresses.Change) <= 0 {
		return AddressInfo{}, ErrNoChangeAddress
	}
	return w.Addresses.Change[0], nil
}

// OutputLockHash returns the lock hash of the wallet address the output pays
// to, if any.
func (w *Wallet) OutputLockHash(out Output) (string, bool) {
	if len(out.Lock.Args) != 1 {
		return "", false
	}
	all := append(
		append([]AddressInfo{}, w.Addresses.Receiving...), w.Addresses.Change...,
	)
	for _, a := range all {
		if len(a.Blake160) > 0 && a.Blake160 == out.Lock.Args[0] {
			return a.LockHash, true
		}
	}
	return "", false
}

// OwnsLockHash returns whether the lock hash belongs to one of the wallet's
// addresses.
func (w *Wallet) OwnsLockHash(lockHash string) bool {
	for _, h := range w.LockHashes() {
		if h == lockHash {
			return true
		}
	}
	return false
}
