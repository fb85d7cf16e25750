package scheduling

import (
	"context"
	"time"

	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/models"
	"github.com/dockwise/dock-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute computes the slot list for one facility, appointment type, and
// facility-local date. Pure read: no side effects, safe to run in
// parallel, identical inputs yield identical output. A closed day with no
// hours override yields an empty list, never an error; configuration
// problems abort with no partial list.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	facility, err := uc.repo.GetFacilityByID(ctx, in.FacilityID)
	if err != nil {
		return nil, err
	}

	at, err := uc.repo.GetAppointmentType(ctx, facility.ID, in.AppointmentTypeID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_type_not_found")
	}

	loc, err := timezone.Location(facility.Timezone)
	if err != nil {
		return nil, err
	}

	// Anchor the date at facility-local midnight regardless of how the
	// caller parsed it.
	date := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)

	var day *models.OperatingDay
	if !at.OverrideFacilityHours {
		day, err = uc.repo.GetOperatingDay(ctx, facility.ID, int(date.Weekday()))
		if err != nil {
			return nil, err
		}
	}

	win, err := domain.ResolveDayWindow(day, date, at.OverrideFacilityHours)
	if err != nil {
		return nil, err
	}

	if win.Closed {
		return []domain.Slot{}, nil
	}

	dayStart := date
	dayEnd := date.AddDate(0, 0, 1)

	bookings, err := uc.repo.ListActiveBookings(
		ctx,
		facility.ID,
		dayStart.UTC(),
		dayEnd.UTC(),
	)
	if err != nil {
		return nil, err
	}

	idx := domain.NewConflictIndex(bookings)

	var viewerLoc *time.Location
	if in.ViewerTimezone != "" {
		viewerLoc, err = time.LoadLocation(in.ViewerTimezone)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_viewer_timezone")
		}
	}

	candidates := domain.GenerateCandidates(win, at.DurationMinutes, at.AllowPastBusinessHours)

	slots := make([]domain.Slot, 0, len(candidates))
	for _, cand := range candidates {
		remaining, reason := domain.EvaluateCandidate(win, cand, at, idx)

		slot := domain.Slot{
			Start:             cand.Start.Format("15:04"),
			End:               cand.End.Format("15:04"),
			StartUTC:          cand.Start.UTC(),
			Available:         reason == "",
			RemainingCapacity: remaining,
			Reason:            reason,
		}

		if viewerLoc != nil {
			slot.ViewerStart = cand.Start.In(viewerLoc).Format("15:04")
			slot.ViewerEnd = cand.End.In(viewerLoc).Format("15:04")
		}

		slots = append(slots, slot)
	}

	return slots, nil
}
