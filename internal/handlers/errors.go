package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dockwise/dock-scheduler/internal/httperr"
)

// writeSchedulingError maps the engine's error classes onto HTTP
// responses: business outcomes to 4xx, broken facility setup to 500,
// an admission lock timeout to a retryable 503.
func writeSchedulingError(c *gin.Context, err error) {
	if errors.Is(err, httperr.ErrLockTimeout) {
		httperr.Unavailable(c, "admission_busy", "Another admission for this slot is in progress. Retry shortly.")
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "booking_not_found", "appointment_type_not_found", "dock_not_found", "facility_not_found":
			httperr.NotFound(c, be.Code, "Resource not found.")
		case "invalid_state":
			httperr.Conflict(c, be.Code, "Booking is not in a state that allows this action.")
		default:
			httperr.BadRequest(c, be.Code, "Request rejected.")
		}
		return
	}

	var ce httperr.ConfigError
	if errors.As(err, &ce) {
		httperr.Internal(c, ce.Code, "Facility configuration is invalid. Contact an administrator.")
		return
	}

	httperr.Internal(c, "internal_error", "Unexpected error.")
}
