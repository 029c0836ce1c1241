package schedule

import (
	"time"

	apperrors "github.com/bankqueue/queue-service/pkg/util"
)

// Operating window in business local time. The check is hour-only: 08:00
// and 17:59 both pass, anything in hour 18+ or before 8 is rejected.
const (
	openingHour = 8
	closingHour = 17
)

// ValidateSlot truncates the requested time to the minute and enforces the
// operating window against business wall-clock time. On success it returns
// the truncated timestamp for storage and downstream comparison.
func ValidateSlot(at time.Time) (time.Time, error) {
	local := LocalClock(at)
	if local.Hour() < openingHour || local.Hour() > closingHour {
		return time.Time{}, apperrors.NewOutOfHours(local.Format("15:04"))
	}
	return TruncateToMinute(at), nil
}
