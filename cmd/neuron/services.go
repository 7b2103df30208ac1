package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hulin115/neuron/internal/config"
	"github.com/hulin115/neuron/internal/core/application"
	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/hulin115/neuron/internal/infrastructure/node"
	"github.com/hulin115/neuron/internal/infrastructure/pubsub"
	dbbadger "github.com/hulin115/neuron/internal/infrastructure/storage/db/badger"
	"github.com/hulin115/neuron/internal/infrastructure/storage/db/inmemory"
	"github.com/hulin115/neuron/pkg/stats"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const pubsubLocation = "pubsub"

// transferMetrics is registered once per process in the default registry.
var transferMetrics *stats.TransferMetrics

// svc is initialized by the commands that need it and released by the app's
// After hook.
var svc *services

type services struct {
	repoManager ports.RepoManager
	pubsub      ports.PubSub
	node        ports.Node

	walletSvc   application.WalletService
	cellSvc     application.CellService
	balanceSvc  application.BalanceService
	transferSvc application.TransferService
	txSvc       application.TransactionService

	cancelStats context.CancelFunc
	statsDone   <-chan struct{}
}

func getServices() (*services, error) {
	if svc != nil {
		return svc, nil
	}

	s, err := newServices()
	if err != nil {
		return nil, err
	}
	svc = s
	return svc, nil
}

func newServices() (*services, error) {
	dbDir := config.GetDbDir()
	dbLogger := log.New()
	dbLogger.SetLevel(log.WarnLevel)

	var repoManager ports.RepoManager
	if len(dbDir) > 0 {
		rm, err := dbbadger.NewRepoManager(dbDir, dbLogger)
		if err != nil {
			return nil, err
		}
		repoManager = rm
	} else {
		repoManager = inmemory.NewRepoManager()
	}

	pubsubSvc, err := newPubSub(dbDir, dbLogger)
	if err != nil {
		repoManager.Close()
		return nil, err
	}

	nodeSvc, err := node.NewService(node.Config{
		URL:               config.GetString(config.NodeRPCEndpointKey),
		RequestTimeout:    config.GetNodeRequestTimeout(),
		RequestsPerSecond: config.GetInt(config.NodeRateLimitKey),
	})
	if err != nil {
		repoManager.Close()
		// nolint
		pubsubSvc.Close()
		return nil, err
	}

	network := config.GetNetwork()
	settings := config.GetSettings()
	minCellCapacity := config.GetMinCellCapacity()
	scryptN := config.GetInt(config.KeystoreScryptNKey)

	signer := application.NewSigner(nodeSvc, scryptN)
	inputSelector := application.NewInputSelector(
		repoManager.CellRepository(), minCellCapacity,
	)
	txAssembler := application.NewTxAssembler(application.AssemblerConfig{
		Network:         network,
		SecpCodeHash:    config.GetString(config.SecpCodeHashKey),
		CellDeps:        config.GetCellDeps(),
		DefaultUnit:     config.GetDenominationUnit(),
		MinCellCapacity: minCellCapacity,
	})

	s := &services{
		repoManager: repoManager,
		pubsub:      pubsubSvc,
		node:        nodeSvc,
		walletSvc: application.NewWalletService(
			repoManager, signer, network, scryptN,
		),
		cellSvc:    application.NewCellService(repoManager, settings),
		balanceSvc: application.NewBalanceService(repoManager, settings),
		transferSvc: application.NewTransferService(
			repoManager, inputSelector, txAssembler, signer,
			nodeSvc, pubsubSvc, settings, config.GetFee(),
		),
		txSvc: application.NewTransactionService(repoManager),
	}

	if config.GetBool(config.EnableProfilerKey) {
		ctx, cancel := context.WithCancel(context.Background())
		s.cancelStats = cancel
		s.statsDone = stats.EnableMemoryStatistics(
			ctx, config.GetStatsInterval(),
			filepath.Join(config.GetDatadir(), config.ProfilerLocation, "metrics.txt"),
		)
	}

	return s, nil
}

func newPubSub(dbDir string, logger *log.Logger) (ports.PubSub, error) {
	var pubsubSvc ports.PubSub
	if len(dbDir) > 0 {
		store, err := dbbadger.OpenStore(filepath.Join(dbDir, pubsubLocation), logger)
		if err != nil {
			return nil, fmt.Errorf("opening pubsub db: %w", err)
		}
		pubsubSvc = pubsub.NewService(store)
	} else {
		pubsubSvc = pubsub.NewService(nil)
	}

	if transferMetrics == nil {
		metrics, err := stats.NewTransferMetrics(prometheus.DefaultRegisterer)
		if err != nil {
			return nil, err
		}
		transferMetrics = metrics
	}
	if _, err := pubsubSvc.Subscribe(
		ports.AnyTopic, transferMetrics.HandleEvent,
	); err != nil {
		return nil, err
	}

	endpoint := config.GetString(config.TxSentWebhookKey)
	if len(endpoint) <= 0 {
		return pubsubSvc, nil
	}
	for _, sub := range pubsubSvc.ListSubscriptionsForTopic(ports.TopicTransactionSent) {
		if sub.NotifyAt() == endpoint {
			return pubsubSvc, nil
		}
	}
	if _, err := pubsubSvc.SubscribeWebhook(
		ports.TopicTransactionSent, endpoint,
		config.GetString(config.TxSentWebhookSecretKey),
	); err != nil {
		return nil, fmt.Errorf("subscribing %s: %w", config.TxSentWebhookKey, err)
	}
	return pubsubSvc, nil
}

func (s *services) close() {
	s.repoManager.Close()
	if err := s.pubsub.Close(); err != nil {
		log.WithError(err).Warn("failed to close pubsub db")
	}
	if s.cancelStats != nil {
		s.cancelStats()
		<-s.statsDone
	}
}
