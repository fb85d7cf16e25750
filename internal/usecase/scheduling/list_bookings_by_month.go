package scheduling

import (
	"context"
	"time"

	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/dto"
	"github.com/dockwise/dock-scheduler/internal/timezone"
)

type ListBookingsByMonth struct {
	repo domain.Repository
}

func NewListBookingsByMonth(
	repo domain.Repository,
) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo: repo,
	}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	facilityID uint,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	facility, err := uc.repo.GetFacilityByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	loc, err := timezone.Location(facility.Timezone)
	if err != nil {
		return nil, err
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

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
