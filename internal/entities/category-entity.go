package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// EquipmentCategory — справочник, приложение его не изменяет.
type EquipmentCategory struct {
	ID          uint64      `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Description null.String `db:"description" json:"description"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}
