package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockwise/dock-scheduler/internal/models"
)

func mondayWindow(t *testing.T) DayWindow {
	t.Helper()
	date := localDate(t, "America/New_York", 2026, time.March, 2)

	day := &models.OperatingDay{
		IsOpen:    true,
		StartTime: "08:00",
		EndTime:   "17:00",
	}

	win, err := ResolveDayWindow(day, date, false)
	require.NoError(t, err)
	return win
}

func TestGenerateCandidates_Grid(t *testing.T) {
	win := mondayWindow(t)

	// 60-min slots on a 15-min grid in 08:00-17:00: first 08:00, last
	// 16:00, every quarter hour in between.
	cands := GenerateCandidates(win, 60, false)
	require.Len(t, cands, 33)

	assert.Equal(t, "08:00", cands[0].Start.Format("15:04"))
	assert.Equal(t, "09:00", cands[0].End.Format("15:04"))
	assert.Equal(t, "16:00", cands[32].Start.Format("15:04"))
	assert.Equal(t, "17:00", cands[32].End.Format("15:04"))

	for i := 1; i < len(cands); i++ {
		assert.Equal(t, 15*time.Minute, cands[i].Start.Sub(cands[i-1].Start))
	}
}

func TestGenerateCandidates_AllowPastHoursExtendsTail(t *testing.T) {
	win := mondayWindow(t)

	// With past-hours allowed, starts run up to (but not including)
	// close: 08:00 through 16:45.
	cands := GenerateCandidates(win, 60, true)
	require.Len(t, cands, 36)
	assert.Equal(t, "16:45", cands[35].Start.Format("15:04"))

	// Tail crosses closing.
	assert.True(t, cands[35].End.After(win.Close))
}

func TestGenerateCandidates_ClosedDay(t *testing.T) {
	assert.Nil(t, GenerateCandidates(DayWindow{Closed: true}, 60, false))
}

func TestGenerateCandidates_DurationLongerThanDay(t *testing.T) {
	win := mondayWindow(t)
	assert.Empty(t, GenerateCandidates(win, 10*60, false))
}

func TestGenerateCandidates_Deterministic(t *testing.T) {
	win := mondayWindow(t)

	first := GenerateCandidates(win, 45, false)
	second := GenerateCandidates(win, 45, false)
	assert.Equal(t, first, second)
}

func TestLocateCandidate_OnGrid(t *testing.T) {
	win := mondayWindow(t)
	start := win.Open.Add(2*time.Hour + 15*time.Minute) // 10:15

	cand, reason := LocateCandidate(win, start, 60, false)
	require.Empty(t, reason)
	assert.Equal(t, start, cand.Start)
	assert.Equal(t, start.Add(time.Hour), cand.End)
}

func TestLocateCandidate_Reasons(t *testing.T) {
	win := mondayWindow(t)

	cases := []struct {
		name   string
		start  time.Time
		reason string
	}{
		{"before open", win.Open.Add(-time.Hour), ReasonOutsideHours},
		{"at close", win.Close, ReasonOutsideHours},
		{"after close", win.Close.Add(time.Hour), ReasonOutsideHours},
		{"off grid", win.Open.Add(7 * time.Minute), ReasonSlotNotFound},
		{"tail past close", win.Close.Add(-30 * time.Minute), ReasonPastHours},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, reason := LocateCandidate(win, tc.start, 60, false)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

func TestLocateCandidate_ClosedDay(t *testing.T) {
	_, reason := LocateCandidate(DayWindow{Closed: true}, time.Now(), 60, false)
	assert.Equal(t, ReasonOutsideHours, reason)
}

func TestLocateCandidate_PastHoursAllowed(t *testing.T) {
	win := mondayWindow(t)

	start := win.Close.Add(-30 * time.Minute) // 16:30, 60-min slot
	cand, reason := LocateCandidate(win, start, 60, true)
	require.Empty(t, reason)
	assert.True(t, cand.End.After(win.Close))
}
