package models

import "time"

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	FacilityID uint     `gorm:"index" json:"facility_id"`
	Facility   Facility `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"facility"`

	AppointmentTypeID uint            `json:"appointment_type_id"`
	AppointmentType   AppointmentType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment_type"`

	DockID *uint `json:"dock_id"`
	Dock   *Dock `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"dock,omitempty"`

	CarrierID uint    `json:"carrier_id"`
	Carrier   Carrier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"carrier"`

	// Stored in UTC. Business-hour rules are always evaluated in the
	// facility's local timezone.
	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	TruckPlate   string `gorm:"size:20" json:"truck_plate"`
	TrailerPlate string `gorm:"size:20" json:"trailer_plate"`
	Notes        string `gorm:"size:255" json:"notes"`

	ArrivedLate bool       `json:"arrived_late"`
	CheckedInAt *time.Time `json:"checked_in_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
