package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// MaintenanceHistory — append-only журнал аудита заявок.
// Записи никогда не обновляются и не удаляются.
type MaintenanceHistory struct {
	ID          uint64      `db:"id" json:"id"`
	RequestID   uint64      `db:"request_id" json:"request_id"`
	EquipmentID uint64      `db:"equipment_id" json:"equipment_id"` // денормализовано для выборки по оборудованию
	Action      string      `db:"action" json:"action"`
	OldValue    null.String `db:"old_value" json:"old_value"`
	NewValue    null.String `db:"new_value" json:"new_value"`
	ChangedBy   null.Uint64 `db:"changed_by" json:"changed_by"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}
