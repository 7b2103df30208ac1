package pubsub

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/hulin115/neuron/pkg/circuitbreaker"
	"github.com/hulin115/neuron/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/timshannon/badgerhold/v4"
	"golang.org/x/sync/errgroup"
)

const webhookTimeout = 15 * time.Second

type service struct {
	store store
	cb    *gobreaker.CircuitBreaker

	lock     *sync.RWMutex
	handlers map[string]*handlerSubscription
}

// NewService returns a PubSub persisting webhooks in the given store, or in
// memory if db is nil.
func NewService(db *badgerhold.Store) ports.PubSub {
	var s store = newInmemoryStore()
	if db != nil {
		s = badgerStore{db}
	}

	return &service{
		store:    s,
		cb:       circuitbreaker.NewCircuitBreaker("webhooks", nil),
		lock:     &sync.RWMutex{},
		handlers: make(map[string]*handlerSubscription),
	}
}

func (ws *service) Subscribe(topic string, handler ports.Handler) (string, error) {
	if err := validateTopic(topic); err != nil {
		return "", err
	}
	if handler == nil {
		return "", ErrMissingHandler
	}

	ws.lock.Lock()
	defer ws.lock.Unlock()

	sub := &handlerSubscription{uuid.New().String(), topic, handler}
	ws.handlers[sub.id] = sub
	return sub.id, nil
}

func (ws *service) SubscribeWebhook(topic, endpoint, secret string) (string, error) {
	sub, err := NewSubscription(topic, endpoint, secret)
	if err != nil {
		return "", err
	}
	if err := ws.store.add(*sub); err != nil {
		return "", err
	}
	return sub.ID, nil
}

func (ws *service) Unsubscribe(_, id string) error {
	ws.lock.Lock()
	if _, ok := ws.handlers[id]; ok {
		delete(ws.handlers, id)
		ws.lock.Unlock()
		return nil
	}
	ws.lock.Unlock()

	return ws.store.remove(id)
}

func (ws *service) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	subs := ws.listSubscriptionsForTopic(topic).toPortable()
	for _, h := range ws.listHandlersForTopic(topic) {
		subs = append(subs, h)
	}
	return subs
}

func (ws *service) Publish(topic string, message string) error {
	return ws.publishForTopic(topic, message)
}

func (ws *service) Close() error {
	return ws.store.close()
}

func (ws *service) listSubscriptionsForTopic(topic string) subscriptions {
	subs := ws.getSubscriptionsForTopic(topic)
	if topic != ports.AnyTopic && topic != ports.UnspecifiedTopic {
		subsForAnyTopic := ws.getSubscriptionsForTopic(ports.AnyTopic)
		subs = append(subs, subsForAnyTopic...)
	}
	return subs
}

func (ws *service) getSubscriptionsForTopic(topic string) subscriptions {
	subs, err := ws.store.list(topic)
	if err != nil {
		log.WithError(err).Warnf("failed to list webhooks for topic %s", topic)
		return nil
	}
	return subs
}

func (ws *service) listHandlersForTopic(topic string) []*handlerSubscription {
	ws.lock.RLock()
	defer ws.lock.RUnlock()

	handlers := make([]*handlerSubscription, 0)
	for _, h := range ws.handlers {
		if topic == ports.UnspecifiedTopic ||
			h.event == topic || h.event == ports.AnyTopic {
			handlers = append(handlers, h)
		}
	}
	sort.SliceStable(handlers, func(i, j int) bool {
		return handlers[i].id < handlers[j].id
	})
	return handlers
}

func (ws *service) publishForTopic(topic, message string) error {
	if err := validateTopic(topic); err != nil {
		return err
	}

	for _, h := range ws.listHandlersForTopic(topic) {
		h.handler(topic, message)
	}

	subs := ws.listSubscriptionsForTopic(topic)

	eg := &errgroup.Group{}
	for i := range subs {
		sub := subs[i]
		eg.Go(func() error { return ws.doRequest(sub, message) })
	}
	return eg.Wait()
}

func (ws *service) doRequest(sub Subscription, payload string) error {
	_, err := ws.cb.Execute(func() (interface{}, error) {
		headers := map[string]string{
			"Content-Type": "application/json",
		}
		if sub.IsSecured() {
			token := jwt.New(jwt.SigningMethodHS256)
			secret := []byte(sub.Secret)
			tokenString, err := token.SignedString(secret)
			if err != nil {
				return nil, err
			}
			headers["Authorization"] = fmt.Sprintf("Bearer %s", tokenString)
		}

		ctx, cancel := context.WithTimeout(context.Background(), webhookTimeout)
		defer cancel()

		status, resp, err := util.NewHTTPRequest(
			ctx, http.MethodPost, sub.Endpoint, payload, headers,
		)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("webhook %s replied with status %d: %s", sub.ID, status, resp)
		}
		return nil, nil
	})

	return err
}
