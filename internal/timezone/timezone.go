package timezone

import (
	"time"

	"github.com/dockwise/dock-scheduler/internal/httperr"
)

// Location resolves an IANA timezone identifier. An unknown or empty
// identifier is a facility misconfiguration, not a transient failure.
func Location(tz string) (*time.Location, error) {
	if tz == "" {
		return nil, httperr.ErrConfig("missing_timezone", "facility has no timezone configured")
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, httperr.ErrConfig("invalid_timezone", "unknown IANA timezone: "+tz)
	}

	return loc, nil
}

func IsValid(tz string) bool {
	_, err := Location(tz)
	return err == nil
}

// ToFacilityLocal converts a stored UTC instant to the facility's wall clock.
func ToFacilityLocal(instant time.Time, loc *time.Location) time.Time {
	return instant.In(loc)
}

// ToUTC converts a facility-local wall-clock time back to a UTC instant.
func ToUTC(local time.Time) time.Time {
	return local.UTC()
}

// ToViewerLocal converts a stored UTC instant to the viewing user's wall
// clock. Used for display only, never for business-hour rules.
func ToViewerLocal(instant time.Time, viewerTz string) (time.Time, error) {
	loc, err := Location(viewerTz)
	if err != nil {
		return time.Time{}, err
	}
	return instant.In(loc), nil
}

func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// ParseDate interprets a "2006-01-02" string as midnight in the given zone.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

// ParseDateTime interprets "date HH:MM" strings in the given zone.
func ParseDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc)
}
