package billing

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// inMemStore is a SubscriptionStore backed by a map. Intended for tests
// and single-node development setups.
type inMemStore struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]Subscription
}

// NewInMemStore returns an empty in-memory SubscriptionStore.
func NewInMemStore() SubscriptionStore {
	return &inMemStore{subs: make(map[uuid.UUID]Subscription)}
}

func (s *inMemStore) Get(ctx context.Context, orgID uuid.UUID) (*Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[orgID]
	if !ok {
		return nil, ErrSubscriptionNotFound
	}

	// Copy so callers cannot mutate stored state.
	out := sub
	return &out, nil
}

func (s *inMemStore) Save(ctx context.Context, sub *Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs[sub.OrgID] = *sub
	return nil
}
