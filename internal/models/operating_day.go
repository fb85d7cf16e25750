package models

import "time"

// OperatingDay holds the operating hours of a facility for one weekday
// (0 = Sunday, matching time.Weekday). Times are local "15:04" strings;
// break fields may be empty when the facility has no midday break.
type OperatingDay struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FacilityID uint `gorm:"index" json:"facility_id"`

	Weekday int `json:"weekday"`

	IsOpen     bool   `json:"is_open"`
	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
