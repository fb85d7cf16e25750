package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/middleware"
	"github.com/dockwise/dock-scheduler/internal/models"
)

type CarrierHandler struct {
	db *gorm.DB
}

func NewCarrierHandler(db *gorm.DB) *CarrierHandler {
	return &CarrierHandler{db: db}
}

func (h *CarrierHandler) List(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	q := h.db.Where("facility_id = ?", facilityID)

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR phone LIKE ?", like, like)
	}

	var carriers []models.Carrier
	if err := q.Order("name ASC").Find(&carriers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_carriers", "Could not list carriers.")
		return
	}

	c.JSON(http.StatusOK, carriers)
}
