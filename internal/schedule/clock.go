// Package schedule holds the slot-allocation rules for branch appointments:
// business-time normalization, the operating-hours window and ticket code
// derivation. Everything here is pure; persistence lives in the repositories.
package schedule

import "time"

// The branch network operates on Moscow wall-clock time regardless of the
// offset a client sends. Single fixed zone, not configurable per branch.
var businessZone = mustLoadZone("Europe/Moscow")

func mustLoadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("schedule: load zone " + name + ": " + err.Error())
	}
	return loc
}

// BusinessZone returns the fixed operating time zone.
func BusinessZone() *time.Location {
	return businessZone
}

// TruncateToMinute drops seconds and sub-second precision, keeping the
// original offset. Stored timestamps are always whole minutes.
func TruncateToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

// LocalClock converts an absolute timestamp to minute-truncated business
// wall-clock time. Any input offset yields the same result for the same
// instant.
func LocalClock(t time.Time) time.Time {
	return TruncateToMinute(t).In(businessZone)
}

// FormatLocal renders the business wall-clock time as HH:MM, the form used
// in validation and conflict messages.
func FormatLocal(t time.Time) string {
	return LocalClock(t).Format("15:04")
}
