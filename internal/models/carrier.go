package models

import "time"

// Carrier is the trucking company (or driver) a booking belongs to,
// deduplicated per facility by phone number.
type Carrier struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FacilityID uint `gorm:"index" json:"facility_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
