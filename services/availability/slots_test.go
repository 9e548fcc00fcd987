package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, min)

	min, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, min)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("bogus")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "16:30", FormatClock(990))
	assert.Equal(t, "00:05", FormatClock(5))
}

func TestIntervalOverlaps(t *testing.T) {
	a := Interval{Start: 540, End: 600} // 09:00-10:00

	assert.True(t, a.Overlaps(Interval{Start: 570, End: 630}))
	assert.True(t, a.Overlaps(Interval{Start: 500, End: 550}))
	assert.True(t, a.Overlaps(Interval{Start: 550, End: 560}))
	// Half-open: touching boundaries do not conflict.
	assert.False(t, a.Overlaps(Interval{Start: 600, End: 660}))
	assert.False(t, a.Overlaps(Interval{Start: 480, End: 540}))
}

func TestGenerateSlots_EmptyCalendar(t *testing.T) {
	// Open 09:00-17:00, 60-minute service, no existing appointments:
	// every half hour from 09:00 through 16:00.
	starts := GenerateSlots(540, 1020, 60, 30, nil, -1)

	require.Len(t, starts, 15)
	assert.Equal(t, 540, starts[0])
	assert.Equal(t, 960, starts[len(starts)-1]) // 16:00 ends exactly at close
	for i := 1; i < len(starts); i++ {
		assert.Greater(t, starts[i], starts[i-1])
	}
}

func TestGenerateSlots_AroundExistingAppointment(t *testing.T) {
	// Open 09:00-17:00, 60-minute service, one appointment 10:00-11:00.
	busy := []Interval{{Start: 600, End: 660}}
	starts := GenerateSlots(540, 1020, 60, 30, busy, -1)

	// 09:00 ends exactly at 10:00: allowed per half-open semantics.
	assert.Contains(t, starts, 540)
	// 09:30 runs to 10:30, overlapping the appointment.
	assert.NotContains(t, starts, 570)
	assert.NotContains(t, starts, 600)
	assert.NotContains(t, starts, 630)
	// 11:00 starts exactly at the appointment's end: allowed.
	assert.Contains(t, starts, 660)
}

func TestGenerateSlots_Cutoff(t *testing.T) {
	// Cutoff at 12:00 drops every start at or before noon.
	starts := GenerateSlots(540, 1020, 60, 30, nil, 720)

	require.NotEmpty(t, starts)
	assert.Equal(t, 750, starts[0]) // first offered slot is 12:30
}

func TestGenerateSlots_DurationLongerThanDay(t *testing.T) {
	starts := GenerateSlots(540, 600, 90, 30, nil, -1)
	assert.Empty(t, starts)
}

func TestGenerateSlots_InvalidInputs(t *testing.T) {
	assert.Nil(t, GenerateSlots(540, 1020, 0, 30, nil, -1))
	assert.Nil(t, GenerateSlots(540, 1020, 60, 0, nil, -1))
}
