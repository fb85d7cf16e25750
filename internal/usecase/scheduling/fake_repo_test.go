package scheduling

import (
	"context"
	"sync"
	"time"

	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/models"
)

// fakeRepo is an in-memory domain.Repository. AdmitBooking holds a mutex
// across evaluate+insert, mirroring the row-locked transaction of the
// gorm implementation.
type fakeRepo struct {
	mu sync.Mutex

	facility *models.Facility
	days     map[int]*models.OperatingDay
	types    map[uint]*models.AppointmentType
	docks    map[uint]*models.Dock

	carriers []models.Carrier
	bookings []models.Booking

	nextBookingID uint
	nextCarrierID uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo(facility *models.Facility) *fakeRepo {
	return &fakeRepo{
		facility: facility,
		days:     make(map[int]*models.OperatingDay),
		types:    make(map[uint]*models.AppointmentType),
		docks:    make(map[uint]*models.Dock),
	}
}

func (r *fakeRepo) GetFacilityByID(_ context.Context, id uint) (*models.Facility, error) {
	if r.facility == nil || r.facility.ID != id {
		return nil, httperr.ErrBusiness("facility_not_found")
	}
	return r.facility, nil
}

func (r *fakeRepo) GetFacilityBySlug(_ context.Context, slug string) (*models.Facility, error) {
	if r.facility == nil || r.facility.Slug != slug {
		return nil, httperr.ErrBusiness("facility_not_found")
	}
	return r.facility, nil
}

func (r *fakeRepo) GetOperatingDay(_ context.Context, _ uint, weekday int) (*models.OperatingDay, error) {
	return r.days[weekday], nil
}

func (r *fakeRepo) GetAppointmentType(_ context.Context, _ uint, typeID uint) (*models.AppointmentType, error) {
	at, ok := r.types[typeID]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_type_not_found")
	}
	return at, nil
}

func (r *fakeRepo) GetDock(_ context.Context, _ uint, dockID uint) (*models.Dock, error) {
	d, ok := r.docks[dockID]
	if !ok {
		return nil, httperr.ErrBusiness("dock_not_found")
	}
	return d, nil
}

func (r *fakeRepo) GetOrCreateCarrier(_ context.Context, facilityID uint, name, phone, email string) (*models.Carrier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.carriers {
		if r.carriers[i].Phone == phone {
			return &r.carriers[i], nil
		}
	}

	r.nextCarrierID++
	r.carriers = append(r.carriers, models.Carrier{
		ID:         r.nextCarrierID,
		FacilityID: facilityID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	})
	return &r.carriers[len(r.carriers)-1], nil
}

func (r *fakeRepo) activeInWindow(start, end time.Time) []models.Booking {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == "cancelled" {
			continue
		}
		if b.StartTime.Before(end) && start.Before(b.EndTime) {
			out = append(out, b)
		}
	}
	return out
}

func (r *fakeRepo) ListActiveBookings(_ context.Context, _ uint, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeInWindow(start, end), nil
}

func (r *fakeRepo) ListBookingsForPeriod(_ context.Context, _ uint, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if !b.StartTime.Before(start) && b.StartTime.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetBookingForFacility(_ context.Context, bookingID, facilityID uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == bookingID && r.bookings[i].FacilityID == facilityID {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) AdmitBooking(
	_ context.Context,
	windowStart, windowEnd time.Time,
	b *models.Booking,
	evaluate func(active []models.Booking) error,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := evaluate(r.activeInWindow(windowStart, windowEnd)); err != nil {
		return err
	}

	r.nextBookingID++
	b.ID = r.nextBookingID
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return httperr.ErrBusiness("booking_not_found")
}

func intPtr(v int) *int { return &v }

// noopSink discards audit entries.
type noopSink struct{}

func (noopSink) Log(uint, *uint, string, string, *uint, any) error { return nil }
