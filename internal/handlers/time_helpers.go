package handlers

import (
	"time"

	"github.com/dockwise/dock-scheduler/internal/models"
	"github.com/dockwise/dock-scheduler/internal/timezone"
)

// All business-hour arithmetic happens in the facility's zone; parsing a
// request date anywhere else silently shifts the day boundary.

func facilityLocation(facility *models.Facility) (*time.Location, error) {
	return timezone.Location(facility.Timezone)
}

func parseDateAtFacility(facility *models.Facility, dateStr string) (time.Time, error) {
	loc, err := facilityLocation(facility)
	if err != nil {
		return time.Time{}, err
	}
	return timezone.ParseDate(dateStr, loc)
}

func parseDateTimeAtFacility(
	facility *models.Facility,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	loc, err := facilityLocation(facility)
	if err != nil {
		return time.Time{}, err
	}
	return timezone.ParseDateTime(dateStr, timeStr, loc)
}
