package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// EquipmentMaintenanceLog — сервисная запись по оборудованию.
// Живёт независимо от жизненного цикла заявок.
type EquipmentMaintenanceLog struct {
	ID              uint64      `db:"id" json:"id"`
	EquipmentID     uint64      `db:"equipment_id" json:"equipment_id"`
	RequestID       null.Uint64 `db:"request_id" json:"request_id"`
	ServiceType     string      `db:"service_type" json:"service_type"`
	Description     null.String `db:"description" json:"description"`
	Technician      null.String `db:"technician" json:"technician"`
	Cost            null.String `db:"cost" json:"cost"`
	NextServiceDate null.Time   `db:"next_service_date" json:"next_service_date"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
}
