package scheduling

import (
	"sort"
	"time"

	"github.com/dockwise/dock-scheduler/internal/models"
)

type interval struct {
	start time.Time
	end   time.Time
}

func (a interval) overlaps(start, end time.Time) bool {
	// Half-open [start, end): back-to-back bookings do not collide.
	return a.start.Before(end) && start.Before(a.end)
}

// ConflictIndex answers overlap and capacity questions against the
// non-cancelled bookings of one facility-local day. It is built once per
// availability query and consulted per candidate, and keeps bookings
// keyed by appointment type and by physical dock.
type ConflictIndex struct {
	byType map[uint][]interval
	byDock map[uint][]interval
	daily  map[uint]int
}

// NewConflictIndex indexes the given bookings, skipping cancelled ones.
// Booking times are UTC instants; interval comparisons are instant-based,
// so mixing them with facility-local candidates is safe.
func NewConflictIndex(bookings []models.Booking) *ConflictIndex {
	idx := &ConflictIndex{
		byType: make(map[uint][]interval),
		byDock: make(map[uint][]interval),
		daily:  make(map[uint]int),
	}

	for _, b := range bookings {
		if b.Status == string(StatusCancelled) {
			continue
		}

		iv := interval{start: b.StartTime, end: b.EndTime}
		idx.byType[b.AppointmentTypeID] = append(idx.byType[b.AppointmentTypeID], iv)
		idx.daily[b.AppointmentTypeID]++

		if b.DockID != nil {
			idx.byDock[*b.DockID] = append(idx.byDock[*b.DockID], iv)
		}
	}

	for _, ivs := range idx.byType {
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].start.Before(ivs[j].start) })
	}

	return idx
}

// OverlapCount returns how many bookings of the appointment type intersect
// [start, end). Each existing booking is extended by trailingBufferMinutes
// on its trailing edge, enforcing the type's buffer after every booking.
func (idx *ConflictIndex) OverlapCount(typeID uint, start, end time.Time, trailingBufferMinutes int) int {
	buffer := time.Duration(trailingBufferMinutes) * time.Minute

	count := 0
	for _, iv := range idx.byType[typeID] {
		padded := interval{start: iv.start, end: iv.end.Add(buffer)}
		if padded.overlaps(start, end) {
			count++
		}
	}
	return count
}

// DailyCount returns the total non-cancelled bookings of the type on the
// indexed date, regardless of time of day.
func (idx *ConflictIndex) DailyCount(typeID uint) int {
	return idx.daily[typeID]
}

// DockBusy reports whether any booking, of any type, occupies the dock
// during [start, end).
func (idx *ConflictIndex) DockBusy(dockID uint, start, end time.Time) bool {
	for _, iv := range idx.byDock[dockID] {
		if iv.overlaps(start, end) {
			return true
		}
	}
	return false
}
