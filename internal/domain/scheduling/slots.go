package scheduling

import "time"

// Candidate is a theoretical slot interval before rule evaluation.
type Candidate struct {
	Start time.Time
	End   time.Time
}

// GenerateCandidates walks the resolved window in GranularityMinutes steps
// and emits candidate intervals in ascending start order. The sequence is
// pure: same inputs, same output. A candidate must finish by close unless
// allowPastHours lets its tail run past closing.
func GenerateCandidates(win DayWindow, durationMinutes int, allowPastHours bool) []Candidate {
	if win.Closed || durationMinutes <= 0 {
		return nil
	}

	step := GranularityMinutes * time.Minute
	duration := time.Duration(durationMinutes) * time.Minute

	var out []Candidate
	for cur := win.Open; fitsWindow(cur, duration, win.Close, allowPastHours); cur = cur.Add(step) {
		out = append(out, Candidate{Start: cur, End: cur.Add(duration)})
	}

	return out
}

// LocateCandidate maps a requested start time onto the generator grid.
// The reason is empty when the request lands on a valid candidate;
// otherwise it explains the structural mismatch: outside-hours when the
// start falls outside the window, slot-not-found when it is inside but off
// the granularity grid, past-hours-disallowed when only the tail end
// crosses closing.
func LocateCandidate(win DayWindow, start time.Time, durationMinutes int, allowPastHours bool) (Candidate, string) {
	if win.Closed {
		return Candidate{}, ReasonOutsideHours
	}

	if start.Before(win.Open) || !start.Before(win.Close) {
		return Candidate{}, ReasonOutsideHours
	}

	if start.Sub(win.Open)%(GranularityMinutes*time.Minute) != 0 {
		return Candidate{}, ReasonSlotNotFound
	}

	duration := time.Duration(durationMinutes) * time.Minute
	if !fitsWindow(start, duration, win.Close, allowPastHours) {
		return Candidate{}, ReasonPastHours
	}

	return Candidate{Start: start, End: start.Add(duration)}, ""
}

func fitsWindow(start time.Time, duration time.Duration, close time.Time, allowPastHours bool) bool {
	if allowPastHours {
		return start.Before(close)
	}
	end := start.Add(duration)
	return end.Before(close) || end.Equal(close)
}
