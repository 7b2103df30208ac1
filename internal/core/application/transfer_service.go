package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/google/uuid"
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/hulin115/neuron/pkg/capacity"
	log "github.com/sirupsen/logrus"
)

// SendCapacityRequest holds the arguments of a spend. An empty WalletID
// spends from the current wallet, an empty Fee uses the configured one.
type SendCapacityRequest struct {
	WalletID string
	Targets  []domain.TargetOutput
	Password string
	Fee      string
}

// TransactionEvent is the message published for every spend outcome.
type TransactionEvent struct {
	EventID     string                 `json:"event_id"`
	WalletID    string                 `json:"wallet_id"`
	TxHash      string                 `json:"tx_hash,omitempty"`
	Transaction *domain.RawTransaction `json:"transaction,omitempty"`
	Error       string                 `json:"error,omitempty"`
	Timestamp   int64                  `json:"timestamp"`
}

type TransferService interface {
	// SendCapacity selects, assembles, signs and broadcasts a transaction
	// paying the targets, and returns the hash assigned by the node.
	SendCapacity(ctx context.Context, req SendCapacityRequest) (string, error)
	// GenerateTransaction returns the unsigned transaction SendCapacity would
	// broadcast, without reserving any cell.
	GenerateTransaction(
		ctx context.Context, walletID string,
		targets []domain.TargetOutput, fee string,
	) (*domain.RawTransaction, error)
}

type transferService struct {
	repoManager   ports.RepoManager
	inputSelector InputSelector
	txAssembler   TxAssembler
	signer        Signer
	node          ports.Node
	pubsub        ports.PubSub
	settings      ports.Settings
	defaultFee    capacity.Capacity

	lock        *sync.Mutex
	walletLocks map[string]*sync.Mutex
}

func NewTransferService(
	repoManager ports.RepoManager,
	inputSelector InputSelector,
	txAssembler TxAssembler,
	signer Signer,
	node ports.Node,
	pubsub ports.PubSub,
	settings ports.Settings,
	defaultFee capacity.Capacity,
) TransferService {
	return &transferService{
		repoManager:   repoManager,
		inputSelector: inputSelector,
		txAssembler:   txAssembler,
		signer:        signer,
		node:          node,
		pubsub:        pubsub,
		settings:      settings,
		defaultFee:    defaultFee,
		lock:          &sync.Mutex{},
		walletLocks:   make(map[string]*sync.Mutex),
	}
}

func (t *transferService) SendCapacity(
	ctx context.Context, req SendCapacityRequest,
) (string, error) {
	w, err := getWallet(ctx, t.repoManager.WalletRepository(), req.WalletID)
	if err != nil {
		return "", err
	}
	if len(req.Password) <= 0 {
		return "", domain.ErrPasswordRequired
	}
	privateKey, err := t.signer.Unlock(w.Keystore, req.Password)
	if err != nil {
		return "", err
	}

	// Spends of the same wallet are serialized from the cells query to the
	// reservation of the spent inputs.
	walletLock := t.walletLock(w.ID)
	walletLock.Lock()
	defer walletLock.Unlock()

	tx, err := t.generateTransaction(ctx, w, req.Targets, req.Fee)
	if err != nil {
		return "", err
	}

	txHash, err := t.signAndBroadcast(ctx, tx, privateKey)
	if err != nil {
		t.publishFailure(w.ID, tx, err)
		return "", err
	}

	if err := t.reserveCells(ctx, w, tx, txHash); err != nil {
		log.WithError(err).Errorf(
			"transaction %s broadcasted but cells of wallet %s not updated",
			txHash, w.ID,
		)
	}
	record := domain.NewTransactionRecord(w, tx, txHash, time.Now().Unix())
	if err := t.repoManager.TransactionRepository().AddTransaction(
		ctx, record,
	); err != nil {
		log.WithError(err).Errorf(
			"transaction %s broadcasted but not added to history", txHash,
		)
	}

	t.publishSent(w.ID, tx, txHash)
	return txHash, nil
}

func (t *transferService) GenerateTransaction(
	ctx context.Context, walletID string,
	targets []domain.TargetOutput, fee string,
) (*domain.RawTransaction, error) {
	w, err := getWallet(ctx, t.repoManager.WalletRepository(), walletID)
	if err != nil {
		return nil, err
	}
	return t.generateTransaction(ctx, w, targets, fee)
}

func (t *transferService) generateTransaction(
	ctx context.Context, w *domain.Wallet,
	targets []domain.TargetOutput, feeStr string,
) (*domain.RawTransaction, error) {
	if len(targets) <= 0 {
		return nil, ErrMissingTargets
	}
	fee, err := t.parseFee(feeStr)
	if err != nil {
		return nil, err
	}
	changeAddress, err := w.ChangeAddress()
	if err != nil {
		return nil, err
	}
	changeLock, err := t.txAssembler.LockScript(changeAddress.Address)
	if err != nil {
		return nil, err
	}

	_, total, err := t.txAssembler.BuildOutputs(targets)
	if err != nil {
		return nil, err
	}

	skipDataAndType := t.settings.SkipDataAndType()
	selection, err := t.inputSelector.GatherInputs(
		ctx, total, w.LockHashes(), fee, skipDataAndType,
	)
	if err != nil {
		return nil, err
	}

	tx, err := t.txAssembler.Assemble(selection, targets, fee, changeLock)
	if err != nil {
		return nil, err
	}

	log.Debugf(
		"assembled transaction for wallet %s: %d inputs, %d outputs, fee %s",
		w.ID, len(tx.Inputs), len(tx.Outputs), tx.Fee(),
	)
	return tx, nil
}

func (t *transferService) signAndBroadcast(
	ctx context.Context, tx *domain.RawTransaction, privateKey *btcec.PrivateKey,
) (string, error) {
	signedTx, err := t.signer.SignWithKey(ctx, tx, privateKey)
	if err != nil {
		return "", err
	}
	if !signedTx.Transaction.IsSigned() {
		return "", ErrMissingWitnesses
	}
	*tx = *signedTx.Transaction

	txHash, err := t.node.SendTransaction(ctx, tx)
	if err != nil {
		return "", err
	}
	if txHash != signedTx.Hash {
		log.Warnf(
			"node returned hash %s, expected %s", txHash, signedTx.Hash,
		)
	}
	return txHash, nil
}

// reserveCells marks the spent cells as pending and records the outputs
// paying back to the wallet as sent cells.
func (t *transferService) reserveCells(
	ctx context.Context, w *domain.Wallet,
	tx *domain.RawTransaction, txHash string,
) error {
	cellRepository := t.repoManager.CellRepository()
	if err := cellRepository.UpdateCells(
		ctx, tx.SpentOutPoints(),
		func(c *domain.Cell) (*domain.Cell, error) {
			if err := c.MarkPending(); err != nil {
				return nil, err
			}
			return c, nil
		},
	); err != nil {
		return err
	}

	sentCells := make([]domain.Cell, 0)
	for i, out := range tx.Outputs {
		lockHash, ok := w.OutputLockHash(out)
		if !ok {
			continue
		}
		cell := domain.NewCell(
			domain.OutPoint{TxHash: txHash, Index: uint32(i)},
			out.Capacity, out.Lock, lockHash, out.TypeScript, out.Data,
		)
		cell.Status = domain.CellStatusSent
		sentCells = append(sentCells, cell)
	}
	if len(sentCells) <= 0 {
		return nil
	}
	return cellRepository.AddCells(ctx, sentCells)
}

func (t *transferService) publishSent(
	walletID string, tx *domain.RawTransaction, txHash string,
) {
	t.publish(ports.TopicTransactionSent, TransactionEvent{
		WalletID:    walletID,
		TxHash:      txHash,
		Transaction: tx,
	})
}

func (t *transferService) publishFailure(
	walletID string, tx *domain.RawTransaction, err error,
) {
	t.publish(ports.TopicTransactionFailed, TransactionEvent{
		WalletID:    walletID,
		Transaction: tx,
		Error:       err.Error(),
	})
}

func (t *transferService) publish(topic string, event TransactionEvent) {
	if t.pubsub == nil {
		return
	}
	event.EventID = uuid.New().String()
	event.Timestamp = time.Now().Unix()

	message, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Warnf("failed to serialize %s event", topic)
		return
	}
	if err := t.pubsub.Publish(topic, string(message)); err != nil {
		log.WithError(err).Warnf("failed to publish %s event", topic)
	}
}

func (t *transferService) parseFee(fee string) (capacity.Capacity, error) {
	if len(fee) <= 0 {
		return t.defaultFee, nil
	}
	value, err := capacity.ParseNonNegative(fee)
	if err != nil {
		return capacity.Zero(), fmt.Errorf("%w: fee %s", domain.ErrInvalidAmount, err)
	}
	return value, nil
}

func (t *transferService) walletLock(walletID string) *sync.Mutex {
	t.lock.Lock()
	defer t.lock.Unlock()

	l, ok := t.walletLocks[walletID]
	if !ok {
		l = &sync.Mutex{}
		t.walletLocks[walletID] = l
	}
	return l
}
