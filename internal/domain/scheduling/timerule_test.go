package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockwise/dock-scheduler/internal/httperr"
	"github.com/dockwise/dock-scheduler/internal/models"
)

func localDate(t *testing.T, tz string, y int, m time.Month, d int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	require.NoError(t, err)
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func TestResolveDayWindow_OpenDay(t *testing.T) {
	date := localDate(t, "America/New_York", 2026, time.March, 2) // Monday

	day := &models.OperatingDay{
		Weekday:   1,
		IsOpen:    true,
		StartTime: "08:00",
		EndTime:   "17:00",
	}

	win, err := ResolveDayWindow(day, date, false)
	require.NoError(t, err)

	assert.False(t, win.Closed)
	assert.Equal(t, "08:00", win.Open.Format("15:04"))
	assert.Equal(t, "17:00", win.Close.Format("15:04"))
	assert.Equal(t, date.Location(), win.Open.Location())
	assert.False(t, win.HasBreak())
}

func TestResolveDayWindow_ClosedDay(t *testing.T) {
	date := localDate(t, "America/New_York", 2026, time.March, 1) // Sunday

	day := &models.OperatingDay{Weekday: 0, IsOpen: false}

	win, err := ResolveDayWindow(day, date, false)
	require.NoError(t, err)
	assert.True(t, win.Closed)
}

func TestResolveDayWindow_MissingRowCountsAsClosed(t *testing.T) {
	date := localDate(t, "America/New_York", 2026, time.March, 1)

	win, err := ResolveDayWindow(nil, date, false)
	require.NoError(t, err)
	assert.True(t, win.Closed)
}

func TestResolveDayWindow_OverrideIgnoresCalendar(t *testing.T) {
	date := localDate(t, "America/New_York", 2026, time.March, 1) // closed Sunday

	win, err := ResolveDayWindow(nil, date, true)
	require.NoError(t, err)

	assert.False(t, win.Closed)
	assert.Equal(t, date, win.Open)
	assert.Equal(t, date.AddDate(0, 0, 1), win.Close)
}

func TestResolveDayWindow_Break(t *testing.T) {
	date := localDate(t, "America/New_York", 2026, time.March, 2)

	day := &models.OperatingDay{
		IsOpen:     true,
		StartTime:  "08:00",
		EndTime:    "17:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}

	win, err := ResolveDayWindow(day, date, false)
	require.NoError(t, err)

	require.True(t, win.HasBreak())
	assert.Equal(t, "12:00", win.BreakStart.Format("15:04"))
	assert.Equal(t, "13:00", win.BreakEnd.Format("15:04"))
}

func TestResolveDayWindow_MalformedHours(t *testing.T) {
	date := localDate(t, "America/New_York", 2026, time.March, 2)

	cases := []struct {
		name string
		day  models.OperatingDay
		code string
	}{
		{
			name: "close before open",
			day:  models.OperatingDay{IsOpen: true, StartTime: "17:00", EndTime: "08:00"},
			code: "malformed_operating_hours",
		},
		{
			name: "open equals close",
			day:  models.OperatingDay{IsOpen: true, StartTime: "08:00", EndTime: "08:00"},
			code: "malformed_operating_hours",
		},
		{
			name: "garbage open",
			day:  models.OperatingDay{IsOpen: true, StartTime: "8am", EndTime: "17:00"},
			code: "malformed_operating_hours",
		},
		{
			name: "break outside window",
			day: models.OperatingDay{
				IsOpen: true, StartTime: "08:00", EndTime: "17:00",
				BreakStart: "07:00", BreakEnd: "09:00",
			},
			code: "malformed_break",
		},
		{
			name: "inverted break",
			day: models.OperatingDay{
				IsOpen: true, StartTime: "08:00", EndTime: "17:00",
				BreakStart: "13:00", BreakEnd: "12:00",
			},
			code: "malformed_break",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveDayWindow(&tc.day, date, false)
			require.Error(t, err)

			var ce httperr.ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.code, ce.Code)
		})
	}
}

func TestResolveDayWindow_DSTSpringForward(t *testing.T) {
	// 2026-03-08: US spring-forward, 02:00 local does not exist.
	date := localDate(t, "America/New_York", 2026, time.March, 8)

	day := &models.OperatingDay{
		IsOpen:    true,
		StartTime: "08:00",
		EndTime:   "17:00",
	}

	win, err := ResolveDayWindow(day, date, false)
	require.NoError(t, err)

	// The 02:00 transition happens before opening; wall-clock hours
	// resolve through the tz database and the window stays 9h wide.
	assert.Equal(t, "08:00", win.Open.Format("15:04"))
	assert.Equal(t, "17:00", win.Close.Format("15:04"))
	assert.Equal(t, 9*time.Hour, win.Close.Sub(win.Open))
	assert.Equal(t, "EDT", win.Open.Format("MST"))
}
