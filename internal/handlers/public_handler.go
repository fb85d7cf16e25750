package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/dockwise/dock-scheduler/internal/domain/scheduling"
	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/httpresp"
	"github.com/dockwise/dock-scheduler/internal/models"
	usecase "github.com/dockwise/dock-scheduler/internal/usecase/scheduling"
)

// PublicHandler is the unauthenticated carrier surface. Facilities are
// addressed by slug; internal ids never appear in public URLs.
type PublicHandler struct {
	db *gorm.DB

	availability *usecase.GetAvailability
	admission    *usecase.RequestAdmission
}

func NewPublicHandler(
	db *gorm.DB,
	availability *usecase.GetAvailability,
	admission *usecase.RequestAdmission,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		admission:    admission,
	}
}

type PublicAppointmentTypeDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
}

type PublicBookingRequest struct {
	AppointmentTypeID uint   `json:"appointment_type_id" binding:"required"`
	Date              string `json:"date" binding:"required"`
	StartTime         string `json:"start_time" binding:"required"`

	CarrierName  string `json:"carrier_name" binding:"required"`
	CarrierPhone string `json:"carrier_phone" binding:"required"`
	CarrierEmail string `json:"carrier_email"`

	TruckPlate   string `json:"truck_plate"`
	TrailerPlate string `json:"trailer_plate"`
	Notes        string `json:"notes"`
}

type PublicBookingResponse struct {
	Admitted  bool   `json:"admitted"`
	Reason    string `json:"reason,omitempty"`
	Reference string `json:"reference,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

func (h *PublicHandler) GetFacility(c *gin.Context) {
	facility, ok := h.facilityBySlug(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":     facility.Name,
		"slug":     facility.Slug,
		"address":  facility.Address,
		"phone":    facility.Phone,
		"timezone": facility.Timezone,
	})
}

func (h *PublicHandler) ListAppointmentTypes(c *gin.Context) {
	facility, ok := h.facilityBySlug(c)
	if !ok {
		return
	}

	var types []models.AppointmentType
	if err := h.db.
		Where("facility_id = ? AND active = ?", facility.ID, true).
		Order("id ASC").
		Find(&types).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointment_types", "Could not list appointment types.")
		return
	}

	out := make([]PublicAppointmentTypeDTO, 0, len(types))
	for _, at := range types {
		out = append(out, PublicAppointmentTypeDTO{
			ID:              at.ID,
			Name:            at.Name,
			Description:     at.Description,
			DurationMinutes: at.DurationMinutes,
		})
	}

	httpresp.List(c, out)
}

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	facility, ok := h.facilityBySlug(c)
	if !ok {
		return
	}

	typeID, err := strconv.ParseUint(c.Query("appointment_type_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_type_id", "appointment_type_id must be a positive integer.")
		return
	}

	date, err := parseDateAtFacility(facility, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be in YYYY-MM-DD format.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		FacilityID:        facility.ID,
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

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	facility, ok := h.facilityBySlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	startLocal, err := parseDateTimeAtFacility(facility, req.Date, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "date must be YYYY-MM-DD and start_time must be HH:MM.")
		return
	}

	result, err := h.admission.Execute(c.Request.Context(), domain.AdmissionInput{
		FacilityID:        facility.ID,
		AppointmentTypeID: req.AppointmentTypeID,
		StartTimeUTC:      startLocal.UTC(),
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
		c.JSON(http.StatusConflict, PublicBookingResponse{
			Admitted: false,
			Reason:   result.Reason,
		})
		return
	}

	loc, err := facilityLocation(facility)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PublicBookingResponse{
		Admitted:  true,
		Reference: result.Booking.Reference,
		StartTime: result.Booking.StartTime.In(loc).Format("2006-01-02 15:04"),
		EndTime:   result.Booking.EndTime.In(loc).Format("2006-01-02 15:04"),
	})
}

func (h *PublicHandler) facilityBySlug(c *gin.Context) (*models.Facility, bool) {
	slug := c.Param("slug")

	var facility models.Facility
	if err := h.db.Where("slug = ?", slug).First(&facility).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "facility_not_found", "Facility not found.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_facility", "Could not load facility.")
		return nil, false
	}

	return &facility, true
}
