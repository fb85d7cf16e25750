package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/middleware"
	"github.com/dockwise/dock-scheduler/internal/models"
)

type DockHandler struct {
	db *gorm.DB
}

func NewDockHandler(db *gorm.DB) *DockHandler {
	return &DockHandler{db: db}
}

type CreateDockRequest struct {
	Name  string `json:"name" binding:"required"`
	Notes string `json:"notes"`
}

type UpdateDockRequest struct {
	Name   *string `json:"name,omitempty"`
	Notes  *string `json:"notes,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

func (h *DockHandler) List(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	var docks []models.Dock
	if err := h.db.
		Where("facility_id = ?", facilityID).
		Order("id ASC").
		Find(&docks).Error; err != nil {

		httperr.Internal(c, "failed_to_list_docks", "Could not list docks.")
		return
	}

	c.JSON(http.StatusOK, docks)
}

func (h *DockHandler) Create(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	var req CreateDockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	dock := models.Dock{
		FacilityID: facilityID,
		Name:       req.Name,
		Notes:      req.Notes,
		Active:     true,
	}

	if err := h.db.Create(&dock).Error; err != nil {
		httperr.Internal(c, "failed_to_create_dock", "Could not create dock.")
		return
	}

	c.JSON(http.StatusCreated, dock)
}

func (h *DockHandler) Update(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)
	id := c.Param("id")

	var dock models.Dock
	if err := h.db.
		Where("id = ? AND facility_id = ?", id, facilityID).
		First(&dock).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "dock_not_found", "Dock not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_dock", "Could not load dock.")
		return
	}

	var req UpdateDockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		dock.Name = *req.Name
	}
	if req.Notes != nil {
		dock.Notes = *req.Notes
	}
	if req.Active != nil {
		dock.Active = *req.Active
	}

	if err := h.db.Save(&dock).Error; err != nil {
		httperr.Internal(c, "failed_to_update_dock", "Could not update dock.")
		return
	}

	c.JSON(http.StatusOK, dock)
}
