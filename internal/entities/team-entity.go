package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type MaintenanceTeam struct {
	ID          uint64      `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Description null.String `db:"description" json:"description"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// TeamMember — связка пользователь↔бригада с необязательной меткой роли
// ("Lead", "Technician" и т.п.).
type TeamMember struct {
	ID        uint64      `db:"id" json:"id"`
	TeamID    uint64      `db:"team_id" json:"team_id"`
	UserID    uint64      `db:"user_id" json:"user_id"`
	Role      null.String `db:"role" json:"role"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`

	// Имя пользователя, подтягивается JOIN-ом, не колонка таблицы
	UserName null.String `db:"-" json:"user_name"`
}
