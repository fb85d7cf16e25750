package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dockwise/dock-scheduler/internal/middleware"
	"github.com/dockwise/dock-scheduler/internal/models"
	"github.com/dockwise/dock-scheduler/internal/validators"
)

type OperatingHoursHandler struct {
	db *gorm.DB
}

func NewOperatingHoursHandler(db *gorm.DB) *OperatingHoursHandler {
	return &OperatingHoursHandler{db: db}
}

type OperatingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	IsOpen     bool   `json:"is_open"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type OperatingHoursUpdateRequest struct {
	Days []OperatingDayConfig `json:"days" binding:"required"`
}

func (h *OperatingHoursHandler) Get(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	var days []models.OperatingDay
	if err := h.db.
		Where("facility_id = ?", facilityID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_operating_hours"})
		return
	}

	c.JSON(http.StatusOK, days)
}

func (h *OperatingHoursHandler) Update(c *gin.Context) {
	facilityID := c.MustGet(middleware.ContextFacilityID).(uint)

	var req OperatingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if code := validateOperatingDay(d); code != "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   code,
				"weekday": d.Weekday,
			})
			return
		}
	}

	if err := h.db.Where("facility_id = ?", facilityID).Delete(&models.OperatingDay{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_hours"})
		return
	}

	var toCreate []models.OperatingDay
	for _, d := range req.Days {
		day := models.OperatingDay{
			FacilityID: facilityID,
			Weekday:    d.Weekday,
			IsOpen:     d.IsOpen,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
		}
		toCreate = append(toCreate, day)
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_operating_hours"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// validateOperatingDay rejects hour configurations the availability engine
// would later refuse as ConfigurationError, so bad setups fail at save
// time instead of at query time.
func validateOperatingDay(d OperatingDayConfig) string {
	if !d.IsOpen {
		return ""
	}

	if !validators.IsHHMM(d.StartTime) || !validators.IsHHMM(d.EndTime) {
		return "malformed_operating_hours"
	}
	if d.StartTime >= d.EndTime {
		return "malformed_operating_hours"
	}

	hasBreak := d.BreakStart != "" || d.BreakEnd != ""
	if !hasBreak {
		return ""
	}

	if !validators.IsHHMM(d.BreakStart) || !validators.IsHHMM(d.BreakEnd) {
		return "malformed_break"
	}
	// HH:MM strings order lexicographically like clock times.
	if d.BreakStart < d.StartTime || d.BreakStart >= d.BreakEnd || d.BreakEnd > d.EndTime {
		return "malformed_break"
	}

	return ""
}
