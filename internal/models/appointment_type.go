package models

import "time"

type AppointmentType struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FacilityID uint `gorm:"index" json:"facility_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	DurationMinutes    int `json:"duration_minutes"`
	BufferMinutes      int `json:"buffer_minutes"`
	GracePeriodMinutes int `json:"grace_period_minutes"`

	MaxConcurrent int  `gorm:"default:1" json:"max_concurrent"`
	MaxPerDay     *int `json:"max_per_day"`

	AllowThroughBreaks     bool `json:"allow_through_breaks"`
	AllowPastBusinessHours bool `json:"allow_past_business_hours"`
	OverrideFacilityHours  bool `json:"override_facility_hours"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
