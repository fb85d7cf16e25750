package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/middleware"
	"github.com/dockwise/dock-scheduler/internal/models"
)

type AppointmentTypeHandler struct {
	db *gorm.DB
}

func NewAppointmentTypeHandler(db *gorm.DB) *AppointmentTypeHandler {
	return &AppointmentTypeHandler{db: db}
}

type CreateAppointmentTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`

	DurationMinutes    int  `json:"duration_minutes" binding:"required,min=1"`
	BufferMinutes      int  `json:"buffer_minutes" binding:"min=0"`
	GracePeriodMinutes int  `json:"grace_period_minutes" binding:"min=0"`
	MaxConcurrent      int  `json:"max_concurrent" binding:"required,min=1"`
	MaxPerDay          *int `json:"max_per_day" binding:"omitempty,min=1"`

	AllowThroughBreaks     bool `json:"allow_through_breaks"`
	AllowPastBusinessHours bool `json:"allow_past_business_hours"`
	OverrideFacilityHours  bool `json:"override_facility_hours"`
}

type UpdateAppointmentTypeRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`

	DurationMinutes    *int `json:"duration_minutes,omitempty"`
	BufferMinutes      *int `json:"buffer_minutes,omitempty"`
	GracePeriodMinutes *int `json:"grace_period_minutes,omitempty"`
	MaxConcurrent      *int `json:"max_concurrent,omitempty"`
	MaxPerDay          *int `json:"max_per_day,omitempty"`

	AllowThroughBreaks     *bool `json:"allow_through_breaks,omitempty"`
	AllowPastBusinessHours *bool `json:"allow_past_business_hours,omitempty"`
	OverrideFacilityHours  *bool `json:"override_facility_hours,omitempty"`
	Active                 *bool `json:"active,omitempty"`
}

func (h *AppointmentTypeHandler) List(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	q := h.db.Where("facility_id = ?", facilityID)

	switch c.Query("active") {
	case "true":
		q = q.Where("active = ?", true)
	case "false":
		q = q.Where("active = ?", false)
	}

	var types []models.AppointmentType
	if err := q.Order("id ASC").Find(&types).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointment_types", "Could not list appointment types.")
		return
	}

	c.JSON(http.StatusOK, types)
}

func (h *AppointmentTypeHandler) Create(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	var req CreateAppointmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	at := models.AppointmentType{
		FacilityID:             facilityID,
		Name:                   req.Name,
		Description:            req.Description,
		DurationMinutes:        req.DurationMinutes,
		BufferMinutes:          req.BufferMinutes,
		GracePeriodMinutes:     req.GracePeriodMinutes,
		MaxConcurrent:          req.MaxConcurrent,
		MaxPerDay:              req.MaxPerDay,
		AllowThroughBreaks:     req.AllowThroughBreaks,
		AllowPastBusinessHours: req.AllowPastBusinessHours,
		OverrideFacilityHours:  req.OverrideFacilityHours,
		Active:                 true,
	}

	if err := h.db.Create(&at).Error; err != nil {
		httperr.Internal(c, "failed_to_create_appointment_type", "Could not create appointment type.")
		return
	}

	c.JSON(http.StatusCreated, at)
}

func (h *AppointmentTypeHandler) Update(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)
	id := c.Param("id")

	var at models.AppointmentType
	if err := h.db.
		Where("id = ? AND facility_id = ?", id, facilityID).
		First(&at).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_type_not_found", "Appointment type not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment_type", "Could not load appointment type.")
		return
	}

	var req UpdateAppointmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		at.Name = *req.Name
	}
	if req.Description != nil {
		at.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 1 {
			httperr.BadRequest(c, "invalid_duration", "duration_minutes must be at least 1.")
			return
		}
		at.DurationMinutes = *req.DurationMinutes
	}
	if req.BufferMinutes != nil {
		if *req.BufferMinutes < 0 {
			httperr.BadRequest(c, "invalid_buffer", "buffer_minutes cannot be negative.")
			return
		}
		at.BufferMinutes = *req.BufferMinutes
	}
	if req.GracePeriodMinutes != nil {
		if *req.GracePeriodMinutes < 0 {
			httperr.BadRequest(c, "invalid_grace_period", "grace_period_minutes cannot be negative.")
			return
		}
		at.GracePeriodMinutes = *req.GracePeriodMinutes
	}
	if req.MaxConcurrent != nil {
		if *req.MaxConcurrent < 1 {
			httperr.BadRequest(c, "invalid_max_concurrent", "max_concurrent must be at least 1.")
			return
		}
		at.MaxConcurrent = *req.MaxConcurrent
	}
	if req.MaxPerDay != nil {
		if *req.MaxPerDay < 1 {
			httperr.BadRequest(c, "invalid_max_per_day", "max_per_day must be at least 1.")
			return
		}
		at.MaxPerDay = req.MaxPerDay
	}
	if req.AllowThroughBreaks != nil {
		at.AllowThroughBreaks = *req.AllowThroughBreaks
	}
	if req.AllowPastBusinessHours != nil {
		at.AllowPastBusinessHours = *req.AllowPastBusinessHours
	}
	if req.OverrideFacilityHours != nil {
		at.OverrideFacilityHours = *req.OverrideFacilityHours
	}
	if req.Active != nil {
		at.Active = *req.Active
	}

	if err := h.db.Save(&at).Error; err != nil {
		httperr.Internal(c, "failed_to_update_appointment_type", "Could not update appointment type.")
		return
	}

	c.JSON(http.StatusOK, at)
}
