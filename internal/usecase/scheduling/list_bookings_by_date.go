package scheduling

import (
	"context"
	"time"

	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/dto"
	"github.com/dockwise/dock-scheduler/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	facilityID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	facility, err := uc.repo.GetFacilityByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	loc, err := timezone.Location(facility.Timezone)
	if err != nil {
		return nil, err
	}

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.AddDate(0, 0, 1)

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		facilityID,
		start.UTC(),
		end.UTC(),
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			Reference:   b.Reference,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Status:      b.Status,
			CarrierName: b.Carrier.Name,
			TypeName:    b.AppointmentType.Name,
			DockID:      b.DockID,
			TruckPlate:  b.TruckPlate,
			ArrivedLate: b.ArrivedLate,
		})
	}

	return out, nil
}
