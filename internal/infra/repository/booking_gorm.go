package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Facility
// --------------------------------------------------

func (r *BookingGormRepository) GetFacilityByID(
	ctx context.Context,
	id uint,
) (*models.Facility, error) {

	var facility models.Facility
	if err := r.db.WithContext(ctx).First(&facility, id).Error; err != nil {
		return nil, err
	}
	return &facility, nil
}

func (r *BookingGormRepository) GetFacilityBySlug(
	ctx context.Context,
	slug string,
) (*models.Facility, error) {

	var facility models.Facility
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&facility).Error; err != nil {
		return nil, err
	}
	return &facility, nil
}

func (r *BookingGormRepository) GetOperatingDay(
	ctx context.Context,
	facilityID uint,
	weekday int,
) (*models.OperatingDay, error) {

	var day models.OperatingDay
	err := r.db.WithContext(ctx).
		Where("facility_id = ? AND weekday = ?", facilityID, weekday).
		First(&day).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No row for the weekday means the facility never opens on it.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &day, nil
}

// --------------------------------------------------
// Appointment type / dock
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentType(
	ctx context.Context,
	facilityID uint,
	typeID uint,
) (*models.AppointmentType, error) {

	var at models.AppointmentType
	if err := r.db.WithContext(ctx).
		Where("id = ? AND facility_id = ?", typeID, facilityID).
		First(&at).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *BookingGormRepository) GetDock(
	ctx context.Context,
	facilityID uint,
	dockID uint,
) (*models.Dock, error) {

	var dock models.Dock
	if err := r.db.WithContext(ctx).
		Where("id = ? AND facility_id = ?", dockID, facilityID).
		First(&dock).Error; err != nil {
		return nil, err
	}
	return &dock, nil
}

// --------------------------------------------------
// Carrier
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateCarrier(
	ctx context.Context,
	facilityID uint,
	name string,
	phone string,
	email string,
) (*models.Carrier, error) {

	var carrier models.Carrier
	err := r.db.WithContext(ctx).
		Where("facility_id = ? AND phone = ?", facilityID, phone).
		First(&carrier).Error

	if err == nil {
		return &carrier, nil
	}

	carrier = models.Carrier{
		FacilityID: facilityID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	}

	if err := r.db.WithContext(ctx).Create(&carrier).Error; err != nil {
		return nil, err
	}

	return &carrier, nil
}

// --------------------------------------------------
// Bookings (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookings(
	ctx context.Context,
	facilityID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "appointment_type_id", "dock_id", "start_time", "end_time", "status").
		Where(
			"facility_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
			facilityID, end, start,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	facilityID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Carrier").
		Preload("AppointmentType").
		Where(
			"facility_id = ? AND start_time >= ? AND start_time < ?",
			facilityID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) GetBookingForFacility(
	ctx context.Context,
	bookingID uint,
	facilityID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND facility_id = ?", bookingID, facilityID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

// --------------------------------------------------
// Bookings (write)
// --------------------------------------------------

// AdmitBooking locks the bookings that could conflict with the window,
// hands them to evaluate, and inserts only when evaluate accepts. The
// SELECT ... FOR UPDATE holds competing admissions for the same rows until
// this transaction commits or rolls back.
func (r *BookingGormRepository) AdmitBooking(
	ctx context.Context,
	windowStart time.Time,
	windowEnd time.Time,
	b *models.Booking,
	evaluate func(active []models.Booking) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var active []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"facility_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
				b.FacilityID, windowEnd, windowStart,
			).
			Find(&active).Error; err != nil {
			return err
		}

		if err := evaluate(active); err != nil {
			return err
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
