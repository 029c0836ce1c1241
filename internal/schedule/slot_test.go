package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateSlotTruncatesToMinute(t *testing.T) {
	at := time.Date(2025, 6, 2, 12, 34, 56, 789000000, time.FixedZone("MSK", 3*3600))

	got, err := ValidateSlot(at)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 6, 2, 12, 34, 0, 0, time.FixedZone("MSK", 3*3600)), got)

	again, err := ValidateSlot(got)
	require.NoError(t, err)
	require.True(t, got.Equal(again))
}

func TestValidateSlotWindowEdges(t *testing.T) {
	msk := BusinessZone()

	opening, err := ValidateSlot(time.Date(2025, 6, 2, 8, 0, 0, 0, msk))
	require.NoError(t, err)
	require.Equal(t, 8, opening.In(msk).Hour())

	lastMinute, err := ValidateSlot(time.Date(2025, 6, 2, 17, 59, 30, 0, msk))
	require.NoError(t, err)
	require.Equal(t, 59, lastMinute.In(msk).Minute())
}

func TestValidateSlotRejectsOutsideWindow(t *testing.T) {
	msk := BusinessZone()

	_, err := ValidateSlot(time.Date(2025, 6, 2, 5, 0, 0, 0, msk))
	require.Error(t, err)
	require.Contains(t, err.Error(), "05:00")

	_, err = ValidateSlot(time.Date(2025, 6, 2, 18, 0, 0, 0, msk))
	require.Error(t, err)

	_, err = ValidateSlot(time.Date(2025, 6, 2, 7, 59, 0, 0, msk))
	require.Error(t, err)
}

func TestValidateSlotUsesBusinessClockNotInputOffset(t *testing.T) {
	// 05:30 UTC is 08:30 in Moscow, inside the window.
	utcMorning := time.Date(2025, 6, 2, 5, 30, 0, 0, time.UTC)
	_, err := ValidateSlot(utcMorning)
	require.NoError(t, err)

	// 16:00 UTC is 19:00 in Moscow, outside the window even though the
	// client-side hour looks fine.
	utcEvening := time.Date(2025, 6, 2, 16, 0, 0, 0, time.UTC)
	_, err = ValidateSlot(utcEvening)
	require.Error(t, err)
	require.Contains(t, err.Error(), "19:00")
}

func TestValidateSlotSameInstantDifferentOffsets(t *testing.T) {
	utc := time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC)
	msk := utc.In(BusinessZone())

	a, err := ValidateSlot(utc)
	require.NoError(t, err)
	b, err := ValidateSlot(msk)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestFormatLocal(t *testing.T) {
	utc := time.Date(2025, 6, 2, 5, 30, 45, 0, time.UTC)
	require.Equal(t, "08:30", FormatLocal(utc))
}
