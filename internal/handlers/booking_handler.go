package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/httpresp"
	"github.com/dockwise/dock-scheduler/internal/middleware"
	"github.com/dockwise/dock-scheduler/internal/models"
	usecase "github.com/dockwise/dock-scheduler/internal/usecase/scheduling"
)

type BookingHandler struct {
	db *gorm.DB

	availability *usecase.GetAvailability
	admission    *usecase.RequestAdmission
	checkIn      *usecase.CheckInBooking
	checkOut     *usecase.CheckOutBooking
	cancel       *usecase.CancelBooking
	listByDate   *usecase.ListBookingsByDate
	listByMonth  *usecase.ListBookingsByMonth
}

func NewBookingHandler(
	db *gorm.DB,
	availability *usecase.GetAvailability,
	admission *usecase.RequestAdmission,
	checkIn *usecase.CheckInBooking,
	checkOut *usecase.CheckOutBooking,
	cancel *usecase.CancelBooking,
	listByDate *usecase.ListBookingsByDate,
	listByMonth *usecase.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		availability: availability,
		admission:    admission,
		checkIn:      checkIn,
		checkOut:     checkOut,
		cancel:       cancel,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
	}
}

type CreateBookingRequest struct {
	AppointmentTypeID uint   `json:"appointment_type_id" binding:"required"`
	Date              string `json:"date" binding:"required"`       // 2006-01-02, facility-local
	StartTime         string `json:"start_time" binding:"required"` // 15:04, facility-local
	DockID            *uint  `json:"dock_id,omitempty"`

	CarrierName  string `json:"carrier_name" binding:"required"`
	CarrierPhone string `json:"carrier_phone" binding:"required"`
	CarrierEmail string `json:"carrier_email"`

	TruckPlate   string `json:"truck_plate"`
	TrailerPlate string `json:"trailer_plate"`
	Notes        string `json:"notes"`
}

// GetAvailability serves the admin slot grid for one date and type.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	typeID, err := strconv.ParseUint(c.Query("appointment_type_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_type_id", "appointment_type_id must be a positive integer.")
		return
	}

	facility, ok := h.loadFacility(c, facilityID)
	if !ok {
		return
	}

	date, err := parseDateAtFacility(facility, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be in YYYY-MM-DD format.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		FacilityID:        facilityID,
		AppointmentTypeID: uint(typeID),
		Date:              date,
		ViewerTimezone:    c.Query("viewer_tz"),
	})
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// Create admits a booking on behalf of the facility staff. The same
// admission gate the public surface uses runs here, so staff bookings
// obey the same capacity and hours rules.
func (h *BookingHandler) Create(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	facility, ok := h.loadFacility(c, facilityID)
	if !ok {
		return
	}

	startLocal, err := parseDateTimeAtFacility(facility, req.Date, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "date must be YYYY-MM-DD and start_time must be HH:MM.")
		return
	}

	result, err := h.admission.Execute(c.Request.Context(), domain.AdmissionInput{
		FacilityID:        facilityID,
		AppointmentTypeID: req.AppointmentTypeID,
		StartTimeUTC:      startLocal.UTC(),
		DockID:            req.DockID,
		CarrierName:       req.CarrierName,
		CarrierPhone:      req.CarrierPhone,
		CarrierEmail:      req.CarrierEmail,
		TruckPlate:        req.TruckPlate,
		TrailerPlate:      req.TrailerPlate,
		Notes:             req.Notes,
	})
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	if !result.Admitted {
		c.JSON(http.StatusConflict, result)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *BookingHandler) ListByDate(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	facility, ok := h.loadFacility(c, facilityID)
	if !ok {
		return
	}

	date, err := parseDateAtFacility(facility, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be in YYYY-MM-DD format.")
		return
	}

	bookings, err := h.listByDate.Execute(c.Request.Context(), facilityID, date)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 || year < 2000 {
		httperr.BadRequest(c, "invalid_period", "year and month query params are required.")
		return
	}

	bookings, err := h.listByMonth.Execute(c.Request.Context(), facilityID, year, month)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.lifecycle(c, func(ctx *gin.Context, facilityID, userID, bookingID uint) (*models.Booking, error) {
		return h.checkIn.Execute(ctx.Request.Context(), facilityID, userID, bookingID)
	})
}

func (h *BookingHandler) CheckOut(c *gin.Context) {
	h.lifecycle(c, func(ctx *gin.Context, facilityID, userID, bookingID uint) (*models.Booking, error) {
		return h.checkOut.Execute(ctx.Request.Context(), facilityID, userID, bookingID)
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.lifecycle(c, func(ctx *gin.Context, facilityID, userID, bookingID uint) (*models.Booking, error) {
		return h.cancel.Execute(ctx.Request.Context(), facilityID, userID, bookingID)
	})
}

func (h *BookingHandler) lifecycle(
	c *gin.Context,
	action func(*gin.Context, uint, uint, uint) (*models.Booking, error),
) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "booking id must be a positive integer.")
		return
	}

	b, err := action(c, facilityID, userID, uint(bookingID))
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) loadFacility(c *gin.Context, facilityID uint) (*models.Facility, bool) {
	var facility models.Facility
	if err := h.db.First(&facility, facilityID).Error; err != nil {
		httperr.Internal(c, "failed_to_get_facility", "Could not load facility.")
		return nil, false
	}
	return &facility, true
}
