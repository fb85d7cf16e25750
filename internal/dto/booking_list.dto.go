package dto

import "time"

type BookingListDTO struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	CarrierName string    `json:"carrier_name"`
	TypeName    string    `json:"type_name"`
	DockID      *uint     `json:"dock_id,omitempty"`
	TruckPlate  string    `json:"truck_plate"`
	ArrivedLate bool      `json:"arrived_late"`
}
