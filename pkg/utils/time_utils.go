package utils

import "time"

// Use explicit "seconds" variant for DB storage
func NowUnixSeconds() int64 { return time.Now().Unix() }

// PeriodKeyFor buckets a timestamp into its UTC calendar month, "YYYY-MM".
// Usage counters are keyed by this string; a rollover is a new key, never a
// mutation of the old row.
func PeriodKeyFor(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func CurrentPeriodKey() string {
	return PeriodKeyFor(time.Now())
}
