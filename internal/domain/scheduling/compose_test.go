package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockwise/dock-scheduler/internal/models"
)

func breakWindow(t *testing.T) DayWindow {
	t.Helper()
	date := localDate(t, "America/New_York", 2026, time.March, 2)

	day := &models.OperatingDay{
		IsOpen:     true,
		StartTime:  "08:00",
		EndTime:    "17:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}

	win, err := ResolveDayWindow(day, date, false)
	require.NoError(t, err)
	return win
}

func intPtr(v int) *int { return &v }

func standardType() *models.AppointmentType {
	return &models.AppointmentType{
		DurationMinutes: 60,
		MaxConcurrent:   2,
	}
}

func TestEvaluateCandidate_BreakExclusion(t *testing.T) {
	win := breakWindow(t)
	at := standardType()
	idx := NewConflictIndex(nil)

	// 60-min candidates against a 12:00-13:00 break: every start from
	// 11:15 through 12:45 intersects the break, 11:00 ends exactly at
	// its edge and survives, 13:00 starts at its edge and survives.
	for _, cand := range GenerateCandidates(win, at.DurationMinutes, false) {
		_, reason := EvaluateCandidate(win, cand, at, idx)

		start := cand.Start.Format("15:04")
		blocked := start > "11:00" && start < "13:00"

		if blocked {
			assert.Equal(t, ReasonBreak, reason, "start %s", start)
		} else {
			assert.Empty(t, reason, "start %s", start)
		}
	}
}

func TestEvaluateCandidate_BufferExtendsBreakCheck(t *testing.T) {
	win := breakWindow(t)
	at := standardType()
	at.BufferMinutes = 30
	idx := NewConflictIndex(nil)

	// 11:00-12:00 plus a 30-min trailing buffer reaches into the break.
	cand := Candidate{
		Start: win.Open.Add(3 * time.Hour),
		End:   win.Open.Add(4 * time.Hour),
	}
	_, reason := EvaluateCandidate(win, cand, at, idx)
	assert.Equal(t, ReasonBreak, reason)

	// 10:30-11:30 plus buffer ends exactly at break start, allowed.
	cand = Candidate{
		Start: win.Open.Add(2*time.Hour + 30*time.Minute),
		End:   win.Open.Add(3*time.Hour + 30*time.Minute),
	}
	_, reason = EvaluateCandidate(win, cand, at, idx)
	assert.Empty(t, reason)
}

func TestEvaluateCandidate_AllowThroughBreaks(t *testing.T) {
	win := breakWindow(t)
	at := standardType()
	at.AllowThroughBreaks = true
	idx := NewConflictIndex(nil)

	cand := Candidate{
		Start: win.Open.Add(4 * time.Hour), // 12:00, inside the break
		End:   win.Open.Add(5 * time.Hour),
	}

	remaining, reason := EvaluateCandidate(win, cand, at, idx)
	assert.Empty(t, reason)
	assert.Equal(t, 2, remaining)
}

func TestEvaluateCandidate_PastClose(t *testing.T) {
	win := mondayWindow(t)
	at := standardType()
	idx := NewConflictIndex(nil)

	cand := Candidate{
		Start: win.Close.Add(-30 * time.Minute),
		End:   win.Close.Add(30 * time.Minute),
	}

	_, reason := EvaluateCandidate(win, cand, at, idx)
	assert.Equal(t, ReasonPastHours, reason)

	at.AllowPastBusinessHours = true
	remaining, reason := EvaluateCandidate(win, cand, at, idx)
	assert.Empty(t, reason)
	assert.Equal(t, 2, remaining)
}

func TestEvaluateCandidate_DailyCap(t *testing.T) {
	win := mondayWindow(t)
	at := standardType()
	at.ID = 1
	at.MaxPerDay = intPtr(2)

	// Two existing bookings anywhere in the day exhaust the cap for
	// every remaining slot, even non-overlapping ones.
	idx := NewConflictIndex([]models.Booking{
		booking(1, 0, 60, "scheduled"),
		booking(1, 120, 60, "scheduled"),
	})

	cand := Candidate{
		Start: win.Open.Add(6 * time.Hour),
		End:   win.Open.Add(7 * time.Hour),
	}

	_, reason := EvaluateCandidate(win, cand, at, idx)
	assert.Equal(t, ReasonDailyCap, reason)
}

func TestEvaluateCandidate_CapacityCountdown(t *testing.T) {
	win := mondayWindow(t)
	at := standardType()
	at.ID = 1

	cand := Candidate{Start: win.Open, End: win.Open.Add(time.Hour)}

	// Empty day: full capacity.
	remaining, reason := EvaluateCandidate(win, cand, at, NewConflictIndex(nil))
	assert.Empty(t, reason)
	assert.Equal(t, 2, remaining)

	// One overlapping booking: one left.
	overlap := models.Booking{
		AppointmentTypeID: 1,
		StartTime:         win.Open.UTC(),
		EndTime:           win.Open.Add(time.Hour).UTC(),
		Status:            "scheduled",
	}
	remaining, reason = EvaluateCandidate(win, cand, at, NewConflictIndex([]models.Booking{overlap}))
	assert.Empty(t, reason)
	assert.Equal(t, 1, remaining)

	// Two: the slot closes.
	_, reason = EvaluateCandidate(win, cand, at, NewConflictIndex([]models.Booking{overlap, overlap}))
	assert.Equal(t, ReasonNoCapacity, reason)
}

func TestEvaluateCandidate_BreakWinsOverCapacity(t *testing.T) {
	win := breakWindow(t)
	at := standardType()
	at.ID = 1

	// Slot inside the break AND fully booked: break is reported.
	cand := Candidate{
		Start: win.Open.Add(4 * time.Hour),
		End:   win.Open.Add(5 * time.Hour),
	}

	idx := NewConflictIndex([]models.Booking{
		{AppointmentTypeID: 1, StartTime: cand.Start.UTC(), EndTime: cand.End.UTC(), Status: "scheduled"},
		{AppointmentTypeID: 1, StartTime: cand.Start.UTC(), EndTime: cand.End.UTC(), Status: "scheduled"},
	})

	_, reason := EvaluateCandidate(win, cand, at, idx)
	assert.Equal(t, ReasonBreak, reason)
}
