package models

import "time"

type Dock struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FacilityID uint `gorm:"index" json:"facility_id"`

	Name   string `gorm:"size:50;not null" json:"name"`
	Notes  string `gorm:"size:255" json:"notes"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
