package tracker

import "time"

// Shift lengths are a business rule keyed on the weekday of the check-in
// date, not today's date, so a shift that spans midnight keeps the length
// it started with.
const (
	WeekdayShift  = 8*time.Hour + 30*time.Minute // Mon-Fri and Sunday
	SaturdayShift = 7 * time.Hour
)

// ShiftDurationFor returns the shift length for a shift that started at
// checkIn.
func ShiftDurationFor(checkIn time.Time) time.Duration {
	if checkIn.Weekday() == time.Saturday {
		return SaturdayShift
	}
	return WeekdayShift
}

// RemainingSeconds returns the whole seconds left until end, never negative.
func RemainingSeconds(end, now time.Time) int {
	d := end.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(d / time.Second)
}
