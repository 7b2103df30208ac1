package domain

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Network selects the address prefix.
type Network string

const (
	// NetworkMainnet uses the ckb prefix.
	NetworkMainnet Network = "mainnet"
	// NetworkTestnet uses the ckt prefix.
	NetworkTestnet Network = "testnet"

	mainnetPrefix = "ckb"
	testnetPrefix = "ckt"

	shortFormat  = 0x01
	blake160Size = 20
)

// p2phCode identifies the secp256k1 blake160 lock in a short address.
var p2phCode = []byte("P2PH")

// Prefix returns the human readable part of addresses on the network.
func (n Network) Prefix() string {
	if n == NetworkTestnet {
		return testnetPrefix
	}
	return mainnetPrefix
}

// IsValid returns whether n is a known network.
func (n Network) IsValid() bool {
	return n == NetworkMainnet || n == NetworkTestnet
}

// InvalidAddressError reports the address that failed validation.
type InvalidAddressError struct {
	Address string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("address %s is invalid", e.Address)
}

func (e *InvalidAddressError) Unwrap() error {
	return ErrInvalidAddress
}

// ParseAddress validates a short secp256k1 address for the given network and
// returns the 0x-prefixed blake160 of the owner public key.
func ParseAddress(address string, net Network) (string, error) {
	prefix, data, err := bech32.Decode(address)
	if err != nil {
		return "", &InvalidAddressError{Address: address}
	}
	if prefix != net.Prefix() {
		return "", &InvalidAddressError{Address: address}
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", &InvalidAddressError{Address: address}
	}

	headerSize := 1 + len(p2phCode)
	if len(payload) != headerSize+blake160Size ||
		payload[0] != shortFormat ||
		!bytes.Equal(payload[1:headerSize], p2phCode) {
		return "", &InvalidAddressError{Address: address}
	}

	return "0x" + hex.EncodeToString(payload[headerSize:]), nil
}

// EncodeAddress returns the short address for the given blake160.
func EncodeAddress(blake160 string, net Network) (string, error) {
	args, err := hex.DecodeString(strings.TrimPrefix(blake160, "0x"))
	if err != nil || len(args) != blake160Size {
		return "", fmt.Errorf("blake160 must be %d bytes hex encoded", blake160Size)
	}

	payload := append([]byte{shortFormat}, p2phCode...)
	payload = append(payload, args...)
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(net.Prefix(), data)
}

// LockScriptFromAddress returns the secp256k1 lock script paying to the
// given address.
func LockScriptFromAddress(
	address string, net Network, codeHash string,
) (Script, error) {
	blake160, err := ParseAddress(address, net)
	if err != nil {
		return Script{}, err
	}
	return Script{CodeHash: codeHash, Args: []string{blake160}}, nil
}
