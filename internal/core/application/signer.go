package application

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/hulin115/neuron/pkg/keystore"
)

var (
	// ErrInvalidTxHash is returned when the node returns a hash that is not
	// 32 bytes hex encoded.
	ErrInvalidTxHash = errors.New("transaction hash must be a 32 bytes hex string")
	// ErrInvalidSignature is returned if a freshly produced signature does
	// not verify against the signing key.
	ErrInvalidSignature = errors.New("produced signature is invalid")
)

type Signer interface {
	// Unlock decrypts the keystore and returns its private key.
	Unlock(ks domain.Keystore, password string) (*btcec.PrivateKey, error)
	// Sign unlocks the keystore and signs the transaction.
	Sign(
		ctx context.Context,
		tx *domain.RawTransaction,
		ks domain.Keystore,
		password string,
	) (*domain.SignedTransaction, error)
	// SignWithKey signs the transaction with an already unlocked key. The
	// returned transaction has one identical witness per input.
	SignWithKey(
		ctx context.Context,
		tx *domain.RawTransaction,
		privateKey *btcec.PrivateKey,
	) (*domain.SignedTransaction, error)
}

type signer struct {
	node    ports.Node
	scryptN int
}

// NewSigner returns a Signer computing transaction hashes with the given
// node. scryptN is used for keystores not specifying their own cost.
func NewSigner(node ports.Node, scryptN int) Signer {
	return &signer{node, scryptN}
}

func (s *signer) Unlock(
	ks domain.Keystore, password string,
) (*btcec.PrivateKey, error) {
	if len(password) <= 0 {
		return nil, domain.ErrPasswordRequired
	}
	if ks.IsEmpty() {
		return nil, domain.ErrNoKeyData
	}

	scryptN := ks.ScryptN
	if scryptN <= 0 {
		scryptN = s.scryptN
	}

	keys, err := keystore.Open(ks.CipherText, password, scryptN)
	if err != nil {
		if errors.Is(err, keystore.ErrWrongPassphrase) {
			return nil, domain.ErrIncorrectPassword
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrNoKeyData, err)
	}

	privkey, err := keys.PrivKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoKeyData, err)
	}
	return privkey, nil
}

func (s *signer) Sign(
	ctx context.Context,
	tx *domain.RawTransaction,
	ks domain.Keystore,
	password string,
) (*domain.SignedTransaction, error) {
	privkey, err := s.Unlock(ks, password)
	if err != nil {
		return nil, err
	}
	return s.SignWithKey(ctx, tx, privkey)
}

func (s *signer) SignWithKey(
	ctx context.Context,
	tx *domain.RawTransaction,
	privateKey *btcec.PrivateKey,
) (*domain.SignedTransaction, error) {
	txHash, err := s.node.ComputeTransactionHash(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute transaction hash: %w", err)
	}
	msg, err := hex.DecodeString(strings.TrimPrefix(txHash, "0x"))
	if err != nil || len(msg) != 32 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTxHash, txHash)
	}

	sig := ecdsa.Sign(privateKey, msg)
	pubkey := privateKey.PubKey()
	if !sig.Verify(msg, pubkey) {
		return nil, ErrInvalidSignature
	}

	witness := domain.NewWitness(pubkey.SerializeCompressed(), sig.Serialize())
	witnesses := make([]domain.Witness, 0, len(tx.Inputs))
	for range tx.Inputs {
		witnesses = append(witnesses, domain.Witness{
			Data: append([]string{}, witness.Data...),
		})
	}

	signedTx := *tx
	signedTx.Witnesses = witnesses

	return &domain.SignedTransaction{Transaction: &signedTx, Hash: txHash}, nil
}
