package usage

import "errors"

// Domain errors for usage counting. Both are faults (misconfiguration or
// store outage), never policy denials; callers typically map them to a
// 5xx rather than an upgrade prompt.
var (
	ErrNoCounterRegistered = errors.New("usage.errors.no_counter_registered")
	ErrUsageUnavailable    = errors.New("usage.errors.usage_unavailable")
)

func joinUnavailable(err error) error {
	if errors.Is(err, ErrUsageUnavailable) {
		return err
	}
	return errors.Join(ErrUsageUnavailable, err)
}
