package plan

import "time"

// DefaultTrialDays is the length of the evaluation window granted to new
// organizations before a paid plan is required.
const DefaultTrialDays = 14

// TrialEndsAt returns when the trial window closes for an organization
// whose plan (or trial) started at startedAt. Uses AddDate to avoid
// daylight-saving arithmetic issues.
func TrialEndsAt(startedAt time.Time, trialDays int) time.Time {
	if trialDays <= 0 {
		return startedAt.UTC()
	}
	return startedAt.AddDate(0, 0, trialDays).UTC()
}

// IsTrialActive reports whether now is still inside the trial window.
// The window is half-open: active at startedAt, expired exactly at
// startedAt + trialDays.
func IsTrialActive(startedAt, now time.Time, trialDays int) bool {
	if trialDays <= 0 {
		return false
	}
	return now.UTC().Before(TrialEndsAt(startedAt, trialDays))
}

// TrialDaysRemaining returns the whole days left in the trial window,
// rounding partial days up and flooring at zero. Never negative, even
// long after the window has closed.
func TrialDaysRemaining(startedAt, now time.Time, trialDays int) int {
	remaining := TrialEndsAt(startedAt, trialDays).Sub(now.UTC())
	if remaining <= 0 {
		return 0
	}

	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}
	return days
}
