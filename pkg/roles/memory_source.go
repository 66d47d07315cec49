package roles

import (
	"context"
	"sync"
)

// inMemSource is a Source backed by a plain map. Grants are copied on
// the way in and out so callers cannot mutate them after the matrix is
// built.
type inMemSource struct {
	mu     sync.RWMutex
	grants map[Role][]Permission
}

// NewInMemSource returns a Source holding a deep copy of the given grants.
func NewInMemSource(grants map[Role][]Permission) Source {
	grantsCopy := make(map[Role][]Permission, len(grants))
	for role, perms := range grants {
		permsCopy := make([]Permission, len(perms))
		copy(permsCopy, perms)
		grantsCopy[role] = permsCopy
	}

	return &inMemSource{grants: grantsCopy}
}

func (s *inMemSource) Load(ctx context.Context) (map[Role][]Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grantsCopy := make(map[Role][]Permission, len(s.grants))
	for role, perms := range s.grants {
		permsCopy := make([]Permission, len(perms))
		copy(permsCopy, perms)
		grantsCopy[role] = permsCopy
	}
	return grantsCopy, nil
}
