package usage

import (
	"context"

	"github.com/google/uuid"

	"github.com/sellora/poskit/pkg/plan"
)

// Snapshot memoizes counts for one organization within a single decision
// or request. It must not be reused across requests: staleness between
// requests is exactly the race the quota reservation path exists to
// close. Not safe for concurrent use; one snapshot belongs to one
// request goroutine.
type Snapshot struct {
	orgID    uuid.UUID
	registry Registry
	counts   map[plan.Resource]int64
}

// NewSnapshot returns a Snapshot for the given organization backed by
// the registry's counters.
func NewSnapshot(orgID uuid.UUID, registry Registry) *Snapshot {
	return &Snapshot{
		orgID:    orgID,
		registry: registry,
		counts:   make(map[plan.Resource]int64),
	}
}

// Count returns the live count for the resource, querying the backing
// store at most once per resource for the snapshot's lifetime. Errors
// are not memoized so a transient failure can recover within the same
// request.
func (s *Snapshot) Count(ctx context.Context, res plan.Resource) (int64, error) {
	if current, ok := s.counts[res]; ok {
		return current, nil
	}

	current, err := s.registry.Count(ctx, s.orgID, res)
	if err != nil {
		return 0, err
	}

	s.counts[res] = current
	return current, nil
}
