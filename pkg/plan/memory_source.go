package plan

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// inMemSource implements the Source interface using an in-memory map.
type inMemSource struct {
	mu    sync.RWMutex
	plans map[ID]Plan
}

// NewInMemSource returns an in-memory Source with a deep copy of the
// given plans.
func NewInMemSource(plans map[ID]Plan) Source {
	plansCopy := make(map[ID]Plan, len(plans))
	for id, p := range plans {
		plansCopy[id] = Plan{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Limits:      maps.Clone(p.Limits),
			Features:    slices.Clone(p.Features),
			Price:       p.Price,
			Interval:    p.Interval,
			Public:      p.Public,
		}
	}

	return &inMemSource{plans: plansCopy}
}

func (s *inMemSource) Load(ctx context.Context) (map[ID]Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plansCopy := make(map[ID]Plan, len(s.plans))
	for id, p := range s.plans {
		plansCopy[id] = Plan{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Limits:      maps.Clone(p.Limits),
			Features:    slices.Clone(p.Features),
			Price:       p.Price,
			Interval:    p.Interval,
			Public:      p.Public,
		}
	}
	return plansCopy, nil
}
