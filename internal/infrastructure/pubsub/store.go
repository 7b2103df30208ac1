package pubsub

import (
	"sort"
	"sync"

	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
)

// store persists webhook subscriptions.
type store interface {
	add(sub Subscription) error
	remove(id string) error
	// list returns the subscriptions for the topic, or all of them if topic
	// is unspecified, sorted by id.
	list(topic string) (subscriptions, error)
	close() error
}

type badgerStore struct {
	db *badgerhold.Store
}

func (s badgerStore) add(sub Subscription) error {
	if err := s.db.Insert(sub.ID, sub); err != nil {
		if err == badgerhold.ErrKeyExists {
			return nil
		}
		return err
	}
	return nil
}

func (s badgerStore) remove(id string) error {
	if err := s.db.Delete(id, Subscription{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return ErrSubscriptionNotFound
		}
		return err
	}
	return nil
}

func (s badgerStore) list(topic string) (subscriptions, error) {
	var query *badgerhold.Query
	if topic != ports.UnspecifiedTopic {
		query = badgerhold.Where("Event").Eq(topic)
	}

	var found []Subscription
	if err := s.db.Find(&found, query); err != nil {
		return nil, err
	}
	subs := append(subscriptions{}, found...)
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].ID < subs[j].ID
	})
	return subs, nil
}

func (s badgerStore) close() error {
	return s.db.Close()
}

type inmemoryStore struct {
	subs map[string]Subscription
	lock *sync.RWMutex
}

func newInmemoryStore() inmemoryStore {
	return inmemoryStore{
		subs: make(map[string]Subscription),
		lock: &sync.RWMutex{},
	}
}

func (s inmemoryStore) add(sub Subscription) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.subs[sub.ID]; ok {
		return nil
	}
	s.subs[sub.ID] = sub
	return nil
}

func (s inmemoryStore) remove(id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.subs[id]; !ok {
		return ErrSubscriptionNotFound
	}
	delete(s.subs, id)
	return nil
}

func (s inmemoryStore) list(topic string) (subscriptions, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	subs := make(subscriptions, 0)
	for _, sub := range s.subs {
		if topic == ports.UnspecifiedTopic || sub.Event == topic {
			subs = append(subs, sub)
		}
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].ID < subs[j].ID
	})
	return subs, nil
}

func (s inmemoryStore) close() error {
	return nil
}
