package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// MaintenanceRequest — заявка на обслуживание (work order) по одной
// единице оборудования.
type MaintenanceRequest struct {
	ID                uint64      `db:"id" json:"id"`
	RequestNumber     string      `db:"request_number" json:"request_number"`
	Type              string      `db:"type" json:"type"`
	Subject           string      `db:"subject" json:"subject"`
	Description       null.String `db:"description" json:"description"`
	EquipmentID       uint64      `db:"equipment_id" json:"equipment_id"`
	MaintenanceTeamID uint64      `db:"maintenance_team_id" json:"maintenance_team_id"`
	AssignedToUserID  null.Uint64 `db:"assigned_to_user_id" json:"assigned_to_user_id"`
	Priority          string      `db:"priority" json:"priority"`
	Status            string      `db:"status" json:"status"`
	ScheduledDate     null.Time   `db:"scheduled_date" json:"scheduled_date"`
	StartedAt         null.Time   `db:"started_at" json:"started_at"`
	CompletedAt       null.Time   `db:"completed_at" json:"completed_at"`
	DurationMinutes   null.Int    `db:"duration_minutes" json:"duration_minutes"`
	Notes             null.String `db:"notes" json:"notes"`
	CreatedAt         time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at" json:"updated_at"`
}
