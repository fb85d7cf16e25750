package scheduling

import (
	"fmt"
	"time"

	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/models"
)

// DayWindow is a facility's weekly operating-hour configuration resolved
// onto one concrete date, in facility-local wall-clock time.
type DayWindow struct {
	Closed bool

	Open  time.Time
	Close time.Time

	BreakStart *time.Time
	BreakEnd   *time.Time
}

func (w DayWindow) HasBreak() bool {
	return w.BreakStart != nil && w.BreakEnd != nil
}

// ResolveDayWindow selects the operating window for date (facility-local
// midnight). day may be nil when no row exists for the weekday, which
// counts as closed. When overrideHours is true the appointment type opts
// out of the facility calendar and gets a synthetic 00:00-24:00 window.
func ResolveDayWindow(day *models.OperatingDay, date time.Time, overrideHours bool) (DayWindow, error) {
	if overrideHours {
		return DayWindow{
			Open:  date,
			Close: date.AddDate(0, 0, 1),
		}, nil
	}

	if day == nil || !day.IsOpen {
		return DayWindow{Closed: true}, nil
	}

	open, err := parseTimeOnDate(date, day.StartTime)
	if err != nil {
		return DayWindow{}, httperr.ErrConfig("malformed_operating_hours", err.Error())
	}

	close, err := parseTimeOnDate(date, day.EndTime)
	if err != nil {
		return DayWindow{}, httperr.ErrConfig("malformed_operating_hours", err.Error())
	}

	if !open.Before(close) {
		return DayWindow{}, httperr.ErrConfig(
			"malformed_operating_hours",
			fmt.Sprintf("close %s is not after open %s", day.EndTime, day.StartTime),
		)
	}

	win := DayWindow{Open: open, Close: close}

	if day.BreakStart != "" && day.BreakEnd != "" {
		bs, err := parseTimeOnDate(date, day.BreakStart)
		if err != nil {
			return DayWindow{}, httperr.ErrConfig("malformed_break", err.Error())
		}
		be, err := parseTimeOnDate(date, day.BreakEnd)
		if err != nil {
			return DayWindow{}, httperr.ErrConfig("malformed_break", err.Error())
		}

		if bs.Before(open) || !bs.Before(be) || be.After(close) {
			return DayWindow{}, httperr.ErrConfig(
				"malformed_break",
				fmt.Sprintf("break %s-%s outside open window %s-%s",
					day.BreakStart, day.BreakEnd, day.StartTime, day.EndTime),
			)
		}

		win.BreakStart = &bs
		win.BreakEnd = &be
	}

	return win, nil
}

// parseTimeOnDate anchors an "15:04" string onto a date, keeping the
// date's location so DST transitions resolve through the tz database.
func parseTimeOnDate(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", hm, err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}
