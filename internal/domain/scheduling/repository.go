package scheduling

import (
	"context"
	"time"

	"github.com/dockwise/dock-scheduler/internal/models"
)

type Repository interface {
	// -------- Facility --------
	GetFacilityByID(
		ctx context.Context,
		id uint,
	) (*models.Facility, error)

	GetFacilityBySlug(
		ctx context.Context,
		slug string,
	) (*models.Facility, error)

	// GetOperatingDay returns nil (no error) when the facility has no row
	// for the weekday; the resolver treats that as closed.
	GetOperatingDay(
		ctx context.Context,
		facilityID uint,
		weekday int,
	) (*models.OperatingDay, error)

	// -------- Appointment type / dock --------
	GetAppointmentType(
		ctx context.Context,
		facilityID uint,
		typeID uint,
	) (*models.AppointmentType, error)

	GetDock(
		ctx context.Context,
		facilityID uint,
		dockID uint,
	) (*models.Dock, error)

	// -------- Carrier --------
	GetOrCreateCarrier(
		ctx context.Context,
		facilityID uint,
		name string,
		phone string,
		email string,
	) (*models.Carrier, error)

	// -------- Bookings (read) --------

	// ListActiveBookings returns non-cancelled bookings intersecting the
	// UTC instant range [start, end), catching bookings whose UTC storage
	// crosses the facility-local midnight.
	ListActiveBookings(
		ctx context.Context,
		facilityID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		facilityID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	GetBookingForFacility(
		ctx context.Context,
		bookingID uint,
		facilityID uint,
	) (*models.Booking, error)

	// -------- Bookings (write) --------

	// AdmitBooking runs evaluate against the active bookings of the
	// window and creates b only when evaluate returns nil, as one atomic
	// unit with respect to concurrent admissions (row locks on the
	// conflicting range).
	AdmitBooking(
		ctx context.Context,
		windowStart time.Time,
		windowEnd time.Time,
		b *models.Booking,
		evaluate func(active []models.Booking) error,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
