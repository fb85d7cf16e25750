package scheduling

import (
	"context"
	"time"

	"github.com/dockwise/dock-scheduler/internal/audit"
	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: dispatcher,
	}
}

// Execute cancels a scheduled booking. The freed capacity becomes visible
// to availability queries immediately; cancelled bookings never count
// against the concurrency limit or the daily cap.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	facilityID uint,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForFacility(ctx, bookingID, facilityID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := time.Now().UTC()
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		FacilityID: facilityID,
		UserID:     &userID,
		Action:     "booking_cancelled",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
