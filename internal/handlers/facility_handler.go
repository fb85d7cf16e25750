package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/middleware"
	"github.com/dockwise/dock-scheduler/internal/models"
	"github.com/dockwise/dock-scheduler/internal/timezone"
)

type FacilityHandler struct {
	db *gorm.DB
}

func NewFacilityHandler(db *gorm.DB) *FacilityHandler {
	return &FacilityHandler{db: db}
}

type UpdateFacilityRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

func (h *FacilityHandler) GetMeFacility(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	var facility models.Facility
	if err := h.db.First(&facility, facilityID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "facility_not_found", "Facility not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_facility", "Could not load facility.")
		return
	}

	c.JSON(http.StatusOK, facility)
}

func (h *FacilityHandler) UpdateMeFacility(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	var facility models.Facility
	if err := h.db.First(&facility, facilityID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "facility_not_found", "Facility not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_facility", "Could not load facility.")
		return
	}

	var req UpdateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		facility.Name = *req.Name
	}
	if req.Phone != nil {
		facility.Phone = *req.Phone
	}
	if req.Address != nil {
		facility.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown IANA timezone identifier.")
			return
		}
		facility.Timezone = *req.Timezone
	}

	if err := h.db.Save(&facility).Error; err != nil {
		httperr.Internal(c, "failed_to_update_facility", "Could not save facility.")
		return
	}

	c.JSON(http.StatusOK, facility)
}
