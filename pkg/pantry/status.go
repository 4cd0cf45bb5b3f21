package pantry

import (
	"math"
	"time"
)

type Status string

const (
	StatusCritical Status = "critical"
	StatusWarning  Status = "warning"
	StatusFresh    Status = "fresh"
)

const (
	criticalThresholdDays = 3
	warningThresholdDays  = 7
)

// DaysLeft returns the whole days remaining until expiry, rounding
// fractional differences up. A difference of 4.1 days is 5 days left,
// exactly 5.0 days is 5. Already-expired items yield negative values.
func DaysLeft(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// Classify maps days remaining to a freshness tier. Negative values
// (already expired) fall into the critical tier together with the
// 0..3 boundary band.
func Classify(daysLeft int) Status {
	switch {
	case daysLeft <= criticalThresholdDays:
		return StatusCritical
	case daysLeft <= warningThresholdDays:
		return StatusWarning
	default:
		return StatusFresh
	}
}
