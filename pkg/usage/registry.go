package usage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sellora/poskit/pkg/plan"
)

// CounterFunc returns the current live count of a resource for an
// organization, read from the system of record at call time. It must
// report failures as errors: a silent zero would make every quota check
// vacuously pass, the opposite of fail-safe.
type CounterFunc func(ctx context.Context, orgID uuid.UUID) (int64, error)

// Registry maps a Resource to its CounterFunc.
// Not thread-safe: register all counters at startup only.
type Registry map[plan.Resource]CounterFunc

// NewRegistry returns a new, empty Registry.
func NewRegistry() Registry {
	return make(Registry)
}

// Register sets or replaces the CounterFunc for the given resource.
// Panics if fn is nil.
func (r Registry) Register(res plan.Resource, fn CounterFunc) {
	if fn == nil {
		panic(fmt.Sprintf("usage: CounterFunc for resource %q cannot be nil", res))
	}
	r[res] = fn
}

// Count invokes the counter registered for the resource. Missing
// counters and counter failures both surface as faults distinguishable
// from a deny decision.
func (r Registry) Count(ctx context.Context, orgID uuid.UUID, res plan.Resource) (int64, error) {
	fn, ok := r[res]
	if !ok {
		return 0, ErrNoCounterRegistered
	}

	current, err := fn(ctx, orgID)
	if err != nil {
		return 0, joinUnavailable(err)
	}
	return current, nil
}
