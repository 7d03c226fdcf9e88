package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID                uint64      `db:"id" json:"id"`
	Name              string      `db:"name" json:"name"`
	SerialNumber      string      `db:"serial_number" json:"serial_number"`
	CategoryID        uint64      `db:"category_id" json:"category_id"`
	MaintenanceTeamID null.Uint64 `db:"maintenance_team_id" json:"maintenance_team_id"`
	Department        null.String `db:"department" json:"department"`
	AssignedTo        null.String `db:"assigned_to" json:"assigned_to"`
	Location          null.String `db:"location" json:"location"`
	PurchaseDate      null.Time   `db:"purchase_date" json:"purchase_date"`
	WarrantyExpiry    null.Time   `db:"warranty_expiry" json:"warranty_expiry"`
	Status            string      `db:"status" json:"status"`
	Notes             null.String `db:"notes" json:"notes"`
	CreatedAt         time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at" json:"updated_at"`
}
