package pubsub

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/hulin115/neuron/internal/core/ports"
)

// Subscription is a webhook invoked with every message published for Event.
type Subscription struct {
	ID       string `json:"id"`
	Event    string `json:"event"`
	Endpoint string `json:"endpoint"`
	Secret   string `json:"secret"`
}

type subscriptions []Subscription

func (s subscriptions) toPortable() []ports.Subscription {
	subs := make([]ports.Subscription, 0, len(s))
	for i := range s {
		sub := s[i]
		subs = append(subs, &sub)
	}
	return subs
}

func NewSubscription(event, endpoint, secret string) (*Subscription, error) {
	if err := validateTopic(event); err != nil {
		return nil, err
	}
	u, err := url.ParseRequestURI(endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidEndpoint
	}
	id := uuid.New().String()
	return &Subscription{id, event, endpoint, secret}, nil
}

func (h *Subscription) Topic() string {
	return h.Event
}

func (h *Subscription) Id() string {
	return h.ID
}

func (h *Subscription) NotifyAt() string {
	return h.Endpoint
}

func (h *Subscription) IsSecured() bool {
	return len(h.Secret) > 0
}

// handlerSubscription is an in-process subscriber.
type handlerSubscription struct {
	id      string
	event   string
	handler ports.Handler
}

func (h *handlerSubscription) Topic() string {
	return h.event
}

func (h *handlerSubscription) Id() string {
	return h.id
}

func (h *handlerSubscription) NotifyAt() string {
	return ""
}

func (h *handlerSubscription) IsSecured() bool {
	return false
}

func validateTopic(topic string) error {
	switch topic {
	case ports.AnyTopic, ports.TopicTransactionSent, ports.TopicTransactionFailed:
		return nil
	case ports.UnspecifiedTopic:
		return ErrMissingTopic
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
}
