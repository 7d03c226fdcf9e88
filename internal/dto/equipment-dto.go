package dto

import "time"

type CreateEquipmentDTO struct {
	Name              string     `json:"name" validate:"required,min=1,max=255"`
	SerialNumber      string     `json:"serial_number" validate:"required,min=1,max=255"`
	CategoryID        uint64     `json:"category_id" validate:"required,gt=0"`
	MaintenanceTeamID *uint64    `json:"maintenance_team_id,omitempty" validate:"omitempty,gt=0"`
	Department        *string    `json:"department,omitempty" validate:"omitempty,max=255"`
	AssignedTo        *string    `json:"assigned_to,omitempty" validate:"omitempty,max=255"`
	Location          *string    `json:"location,omitempty" validate:"omitempty,max=255"`
	PurchaseDate      *time.Time `json:"purchase_date,omitempty"`
	WarrantyExpiry    *time.Time `json:"warranty_expiry,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

type UpdateEquipmentDTO struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	CategoryID        *uint64 `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	MaintenanceTeamID *uint64 `json:"maintenance_team_id,omitempty" validate:"omitempty,gt=0"`
	Department        *string `json:"department,omitempty" validate:"omitempty,max=255"`
	AssignedTo        *string `json:"assigned_to,omitempty" validate:"omitempty,max=255"`
	Location          *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Status            *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive scrapped"`
	Notes             *string `json:"notes,omitempty"`
}
