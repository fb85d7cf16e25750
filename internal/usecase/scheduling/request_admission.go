package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dockwise/dock-scheduler/internal/audit"
	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/locks"
	"github.com/dockwise/dock-scheduler/internal/models"
	"github.com/dockwise/dock-scheduler/internal/timezone"
)

// ======================================================
// RESULT
// ======================================================

// AdmissionResult is the outcome of one admission attempt. A rejection is
// a normal business outcome carried by Reason, never an error.
type AdmissionResult struct {
	Admitted bool            `json:"admitted"`
	Reason   string          `json:"reason,omitempty"`
	Booking  *models.Booking `json:"booking,omitempty"`
}

func rejected(reason string) *AdmissionResult {
	return &AdmissionResult{Admitted: false, Reason: reason}
}

// ======================================================
// USE CASE
// ======================================================

type RequestAdmission struct {
	repo  domain.Repository
	locks locks.Locker
	audit *audit.Dispatcher
}

func NewRequestAdmission(
	repo domain.Repository,
	locker locks.Locker,
	dispatcher *audit.Dispatcher,
) *RequestAdmission {
	return &RequestAdmission{
		repo:  repo,
		locks: locker,
		audit: dispatcher,
	}
}

// Execute re-validates the requested slot against the same rules the
// availability composer applies, then creates the booking. The capacity
// check and the insert run as one atomic unit: admissions for the same
// facility+date+type are serialized by a keyed lock, and the repository
// locks the conflicting rows inside its transaction. Two simultaneous
// requests can therefore never both see remaining capacity and both land.
func (uc *RequestAdmission) Execute(
	ctx context.Context,
	in domain.AdmissionInput,
) (*AdmissionResult, error) {

	facility, err := uc.repo.GetFacilityByID(ctx, in.FacilityID)
	if err != nil {
		return nil, err
	}

	at, err := uc.repo.GetAppointmentType(ctx, facility.ID, in.AppointmentTypeID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_type_not_found")
	}
	if !at.Active {
		return nil, httperr.ErrBusiness("appointment_type_inactive")
	}

	loc, err := timezone.Location(facility.Timezone)
	if err != nil {
		return nil, err
	}

	startLocal := in.StartTimeUTC.In(loc)
	date := time.Date(
		startLocal.Year(), startLocal.Month(), startLocal.Day(),
		0, 0, 0, 0,
		loc,
	)

	// --------------------------------------------------
	// Serialize per facility+date+type
	// --------------------------------------------------
	key := fmt.Sprintf("admission:%d:%s:%d", facility.ID, date.Format("2006-01-02"), at.ID)

	release, err := uc.locks.Acquire(ctx, key)
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// Structural slot validation
	// --------------------------------------------------
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

	cand, reason := domain.LocateCandidate(win, startLocal, at.DurationMinutes, at.AllowPastBusinessHours)
	if reason != "" {
		return rejected(reason), nil
	}

	// --------------------------------------------------
	// Dock (optional)
	// --------------------------------------------------
	if in.DockID != nil {
		dock, err := uc.repo.GetDock(ctx, facility.ID, *in.DockID)
		if err != nil {
			return nil, httperr.ErrBusiness("dock_not_found")
		}
		if !dock.Active {
			return nil, httperr.ErrBusiness("dock_inactive")
		}
	}

	// --------------------------------------------------
	// Carrier (get or create)
	// --------------------------------------------------
	carrier, err := uc.repo.GetOrCreateCarrier(
		ctx,
		facility.ID,
		in.CarrierName,
		in.CarrierPhone,
		in.CarrierEmail,
	)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		Reference:         uuid.NewString(),
		FacilityID:        facility.ID,
		AppointmentTypeID: at.ID,
		DockID:            in.DockID,
		CarrierID:         carrier.ID,
		StartTime:         cand.Start.UTC(),
		EndTime:           cand.End.UTC(),
		Status:            string(domain.InitialStatus()),
		TruckPlate:        in.TruckPlate,
		TrailerPlate:      in.TrailerPlate,
		Notes:             in.Notes,
	}

	// --------------------------------------------------
	// Capacity check + insert, atomically
	// --------------------------------------------------
	dayEnd := date.AddDate(0, 0, 1)

	err = uc.repo.AdmitBooking(
		ctx,
		date.UTC(),
		dayEnd.UTC(),
		booking,
		func(active []models.Booking) error {
			idx := domain.NewConflictIndex(active)

			if _, reason := domain.EvaluateCandidate(win, cand, at, idx); reason != "" {
				return httperr.ErrBusiness(reason)
			}

			if in.DockID != nil && idx.DockBusy(*in.DockID, cand.Start, cand.End) {
				return httperr.ErrBusiness(domain.ReasonNoCapacity)
			}

			return nil
		},
	)

	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) && domain.IsRejectionReason(be.Code) {
			return rejected(be.Code), nil
		}
		if httperr.IsExclusionConflict(err) {
			return rejected(domain.ReasonNoCapacity), nil
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		FacilityID: facility.ID,
		Action:     "booking_admitted",
		Entity:     "booking",
		EntityID:   &booking.ID,
		Metadata: map[string]any{
			"reference": booking.Reference,
			"start":     booking.StartTime,
			"end":       booking.EndTime,
		},
	})

	return &AdmissionResult{Admitted: true, Booking: booking}, nil
}
