package dto

import "time"

type AddMaintenanceLogDTO struct {
	EquipmentID     uint64     `json:"equipment_id" validate:"required,gt=0"`
	RequestID       *uint64    `json:"request_id,omitempty" validate:"omitempty,gt=0"`
	ServiceType     string     `json:"service_type" validate:"required,min=1,max=100"`
	Description     *string    `json:"description,omitempty"`
	Technician      *string    `json:"technician,omitempty" validate:"omitempty,max=255"`
	Cost            *string    `json:"cost,omitempty" validate:"omitempty,max=50"`
	NextServiceDate *time.Time `json:"next_service_date,omitempty"`
}
