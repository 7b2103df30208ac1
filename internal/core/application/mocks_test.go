package application_test

import (
	"context"
	"sync"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/stretchr/testify/mock"
)

// **** Cell repository ****

type mockCellRepository struct {
	mock.Mock
}

func (m *mockCellRepository) AddCells(
	ctx context.Context, cells []domain.Cell,
) error {
	args := m.Called(ctx, cells)
	return args.Error(0)
}

func (m *mockCellRepository) GetCell(
	ctx context.Context, outPoint domain.OutPoint,
) (*domain.Cell, error) {
	args := m.Called(ctx, outPoint)

	var res *domain.Cell
	if a := args.Get(0); a != nil {
		res = a.(*domain.Cell)
	}
	return res, args.Error(1)
}

func (m *mockCellRepository) GetLiveCell(
	ctx context.Context, outPoint domain.OutPoint,
) (*domain.Cell, error) {
	args := m.Called(ctx, outPoint)

	var res *domain.Cell
	if a := args.Get(0); a != nil {
		res = a.(*domain.Cell)
	}
	return res, args.Error(1)
}

func (m *mockCellRepository) GetCells(
	ctx context.Context, query domain.CellQuery,
) ([]domain.Cell, error) {
	args := m.Called(ctx, query)

	var res []domain.Cell
	if a := args.Get(0); a != nil {
		res = a.([]domain.Cell)
	}
	return res, args.Error(1)
}

func (m *mockCellRepository) GetAllCells(
	ctx context.Context,
) ([]domain.Cell, error) {
	args := m.Called(ctx)

	var res []domain.Cell
	if a := args.Get(0); a != nil {
		res = a.([]domain.Cell)
	}
	return res, args.Error(1)
}

func (m *mockCellRepository) UpdateCells(
	ctx context.Context, outPoints []domain.OutPoint,
	updateFn func(c *domain.Cell) (*domain.Cell, error),
) error {
	args := m.Called(ctx, outPoints, updateFn)
	return args.Error(0)
}

func (m *mockCellRepository) AllBlake160s(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	var res []string
	if a := args.Get(0); a != nil {
		res = a.([]string)
	}
	return res, args.Error(1)
}

// **** Node ****

type mockNode struct {
	mock.Mock
}

func (m *mockNode) ComputeTransactionHash(
	ctx context.Context, tx *domain.RawTransaction,
) (string, error) {
	args := m.Called(ctx, tx)
	return txHashResult(args, ctx, tx), args.Error(1)
}

func (m *mockNode) SendTransaction(
	ctx context.Context, tx *domain.RawTransaction,
) (string, error) {
	args := m.Called(ctx, tx)
	return txHashResult(args, ctx, tx), args.Error(1)
}

func (m *mockNode) GetTipBlockNumber(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	var res uint64
	if a := args.Get(0); a != nil {
		res = a.(uint64)
	}
	return res, args.Error(1)
}

func txHashResult(
	args mock.Arguments, ctx context.Context, tx *domain.RawTransaction,
) string {
	if rf, ok := args.Get(0).(func(context.Context, *domain.RawTransaction) string); ok {
		return rf(ctx, tx)
	}
	return args.String(0)
}

// **** PubSub ****

type publishedMessage struct {
	topic   string
	message string
}

type mockPubSub struct {
	lock     sync.Mutex
	messages []publishedMessage
	err      error
}

func (m *mockPubSub) Subscribe(string, ports.Handler) (string, error) {
	return "", nil
}

func (m *mockPubSub) SubscribeWebhook(string, string, string) (string, error) {
	return "", nil
}

func (m *mockPubSub) Unsubscribe(string, string) error {
	return nil
}

func (m *mockPubSub) ListSubscriptionsForTopic(string) []ports.Subscription {
	return nil
}

func (m *mockPubSub) Publish(topic string, message string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.messages = append(m.messages, publishedMessage{topic, message})
	return m.err
}

func (m *mockPubSub) Close() error {
	return nil
}

func (m *mockPubSub) published(topic string) []string {
	m.lock.Lock()
	defer m.lock.Unlock()

	res := make([]string, 0)
	for _, msg := range m.messages {
		if msg.topic == topic {
			res = append(res, msg.message)
		}
	}
	return res
}

// **** Settings ****

type staticSettings bool

func (s staticSettings) SkipDataAndType() bool {
	return bool(s)
}

// **** Repo manager ****

// mockRepoManager overrides the cell repository of an embedded manager.
type mockRepoManager struct {
	ports.RepoManager
	cellRepository domain.CellRepository
}

func (m mockRepoManager) CellRepository() domain.CellRepository {
	return m.cellRepository
}
