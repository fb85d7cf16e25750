package scheduling

import "time"

// GranularityMinutes is the fixed step between candidate slot starts,
// matching the booking form's time rounding.
const GranularityMinutes = 15

// Reason codes for unavailable slots and rejected admissions. These are
// wire-visible: the booking UI branches on them.
const (
	ReasonOutsideHours = "outside-hours"
	ReasonBreak        = "break"
	ReasonPastHours    = "past-hours-disallowed"
	ReasonDailyCap     = "daily-cap-reached"
	ReasonNoCapacity   = "no-capacity"
	ReasonSlotNotFound = "slot-not-found"
)

// IsRejectionReason reports whether code is one of the admission reason
// codes, as opposed to a system-level error code.
func IsRejectionReason(code string) bool {
	switch code {
	case ReasonOutsideHours, ReasonBreak, ReasonPastHours,
		ReasonDailyCap, ReasonNoCapacity, ReasonSlotNotFound:
		return true
	}
	return false
}

// Slot is one bookable time-of-day interval for a facility, appointment
// type, and date. Start/End are facility-local "15:04"; StartUTC is the
// instant the booking form submits back on admission.
type Slot struct {
	Start    string    `json:"start"`
	End      string    `json:"end"`
	StartUTC time.Time `json:"start_utc"`

	ViewerStart string `json:"viewer_start,omitempty"`
	ViewerEnd   string `json:"viewer_end,omitempty"`

	Available         bool   `json:"available"`
	RemainingCapacity int    `json:"remaining_capacity"`
	Reason            string `json:"reason,omitempty"`
}

type AvailabilityInput struct {
	FacilityID        uint
	AppointmentTypeID uint
	Date              time.Time // facility-local midnight of the target day
	ViewerTimezone    string    // optional, display only
}

type AdmissionInput struct {
	FacilityID        uint
	AppointmentTypeID uint
	StartTimeUTC      time.Time
	DockID            *uint

	CarrierName  string
	CarrierPhone string
	CarrierEmail string

	TruckPlate   string
	TrailerPlate string
	Notes        string
}
