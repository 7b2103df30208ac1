package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/hulin115/neuron/pkg/circuitbreaker"
	"github.com/hulin115/neuron/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"
)

const (
	methodComputeTransactionHash = "_compute_transaction_hash"
	methodSendTransaction        = "send_transaction"
	methodGetTipBlockNumber      = "get_tip_block_number"

	defaultRequestTimeout = 15 * time.Second
)

var (
	// ErrInvalidURL ...
	ErrInvalidURL = errors.New("invalid node url, must be a valid http(s) URI")
	// ErrUnexpectedStatus is returned when the node replies with a non 200
	// http status.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// Config holds the connection parameters of the CKB node.
type Config struct {
	URL string
	// RequestTimeout bounds every call, zero means 15 seconds.
	RequestTimeout time.Duration
	// RequestsPerSecond caps the calls to the node, zero means unlimited.
	RequestsPerSecond int
}

type service struct {
	url     string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker
	limiter ratelimit.Limiter
	nextID  uint64
}

// NewService returns a ports.Node talking JSON-RPC over http to the CKB node
// at cfg.URL.
func NewService(cfg Config) (ports.Node, error) {
	u, err := url.ParseRequestURI(cfg.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidURL
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.RequestsPerSecond)
	}

	return &service{
		url:     cfg.URL,
		timeout: timeout,
		cb:      circuitbreaker.NewCircuitBreaker("ckb-node", isSuccessful),
		limiter: limiter,
	}, nil
}

func (s *service) ComputeTransactionHash(
	ctx context.Context, tx *domain.RawTransaction,
) (string, error) {
	rpcTx, err := toRPCTransaction(tx)
	if err != nil {
		return "", err
	}

	var txHash string
	if err := s.call(ctx, methodComputeTransactionHash, &txHash, rpcTx); err != nil {
		return "", err
	}
	return txHash, nil
}

func (s *service) SendTransaction(
	ctx context.Context, tx *domain.RawTransaction,
) (string, error) {
	rpcTx, err := toRPCTransaction(tx)
	if err != nil {
		return "", err
	}

	var txHash string
	if err := s.call(ctx, methodSendTransaction, &txHash, rpcTx); err != nil {
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) {
			return "", fmt.Errorf("%w: %s", domain.ErrBroadcastRejected, rpcErr)
		}
		return "", err
	}
	return txHash, nil
}

func (s *service) GetTipBlockNumber(ctx context.Context) (uint64, error) {
	var tip string
	if err := s.call(ctx, methodGetTipBlockNumber, &tip); err != nil {
		return 0, err
	}
	// nodes reply either with a decimal or a 0x-prefixed hex string.
	n, err := strconv.ParseUint(tip, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid tip block number %q: %w", tip, err)
	}
	return n, nil
}

func (s *service) call(
	ctx context.Context, method string, result interface{}, params ...interface{},
) error {
	if params == nil {
		params = []interface{}{}
	}
	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      atomic.AddUint64(&s.nextID, 1),
		Method:  method,
		Params:  params,
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	s.limiter.Take()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.cb.Execute(func() (interface{}, error) {
		status, resp, err := util.NewHTTPRequest(
			ctx, http.MethodPost, s.url, string(body),
			map[string]string{"Content-Type": "application/json"},
		)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, status, resp)
		}

		rpcRes := &rpcResponse{}
		if err := json.NewDecoder(strings.NewReader(resp)).Decode(rpcRes); err != nil {
			return nil, fmt.Errorf("failed to decode response of %s: %w", method, err)
		}
		if rpcRes.Error != nil {
			return nil, rpcRes.Error
		}
		return rpcRes, nil
	})
	if err != nil {
		log.WithError(err).Debugf("node call %s failed", method)
		return err
	}

	rpcRes := res.(*rpcResponse)
	if err := json.Unmarshal(rpcRes.Result, result); err != nil {
		return fmt.Errorf("failed to decode result of %s: %w", method, err)
	}
	return nil
}

// isSuccessful tells the circuit breaker that errors returned by a
// responsive node are not failures of the connection.
func isSuccessful(err error) bool {
	var rpcErr *RPCError
	return err == nil || errors.As(err, &rpcErr)
}
