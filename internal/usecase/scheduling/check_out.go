package scheduling

import (
	"context"
	"time"

	"github.com/dockwise/dock-scheduler/internal/audit"
	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/models"
)

type CheckOutBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCheckOutBooking(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *CheckOutBooking {
	return &CheckOutBooking{
		repo:  repo,
		audit: dispatcher,
	}
}

func (uc *CheckOutBooking) Execute(
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
	if err := domain.CheckOut(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		FacilityID: facilityID,
		UserID:     &userID,
		Action:     "booking_checked_out",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
