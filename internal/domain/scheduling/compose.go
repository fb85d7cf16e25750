package scheduling

import (
	"time"

	"github.com/dockwise/dock-scheduler/internal/models"
)

// EvaluateCandidate applies the appointment-type rules to one candidate in
// fixed precedence: break, past-hours, daily cap, capacity. Break and
// hours violations are structural configuration constraints and win over
// capacity even when capacity would remain. The returned reason is empty
// when the candidate is bookable; remaining is the capacity left in that
// case (floored at 0 otherwise).
func EvaluateCandidate(
	win DayWindow,
	cand Candidate,
	at *models.AppointmentType,
	idx *ConflictIndex,
) (remaining int, reason string) {

	// 1. Break window. The candidate's interval is extended by the
	// type's buffer on the trailing edge before the intersection test.
	if win.HasBreak() && !at.AllowThroughBreaks {
		padded := cand.End.Add(time.Duration(at.BufferMinutes) * time.Minute)
		if cand.Start.Before(*win.BreakEnd) && win.BreakStart.Before(padded) {
			return 0, ReasonBreak
		}
	}

	// 2. Tail past closing.
	if cand.End.After(win.Close) && !at.AllowPastBusinessHours {
		return 0, ReasonPastHours
	}

	// 3. Daily cap, uniform across all slots of the date.
	if at.MaxPerDay != nil && idx.DailyCount(at.ID) >= *at.MaxPerDay {
		return 0, ReasonDailyCap
	}

	// 4. Concurrency limit.
	overlaps := idx.OverlapCount(at.ID, cand.Start, cand.End, at.BufferMinutes)
	remaining = at.MaxConcurrent - overlaps
	if remaining <= 0 {
		return 0, ReasonNoCapacity
	}

	return remaining, ""
}
