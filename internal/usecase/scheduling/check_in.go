package scheduling

import (
	"context"
	"time"

	"github.com/dockwise/dock-scheduler/internal/audit"
	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/models"
)

type CheckInBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCheckInBooking(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *CheckInBooking {
	return &CheckInBooking{
		repo:  repo,
		audit: dispatcher,
	}
}

func (uc *CheckInBooking) Execute(
	ctx context.Context,
	facilityID uint,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForFacility(ctx, bookingID, facilityID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	at, err := uc.repo.GetAppointmentType(ctx, facilityID, b.AppointmentTypeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := domain.CheckIn(b, now, at.GracePeriodMinutes); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		FacilityID: facilityID,
		UserID:     &userID,
		Action:     "booking_checked_in",
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata: map[string]any{
			"arrived_late": b.ArrivedLate,
		},
	})

	return b, nil
}
