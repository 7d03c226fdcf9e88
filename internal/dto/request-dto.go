package dto

import "time"

type CreateRequestDTO struct {
	Type          string     `json:"type" validate:"required,oneof=corrective preventive"`
	Subject       string     `json:"subject" validate:"required,min=1,max=255"`
	Description   *string    `json:"description,omitempty"`
	EquipmentID   uint64     `json:"equipment_id" validate:"required,gt=0"`
	TeamID        uint64     `json:"maintenance_team_id" validate:"required,gt=0"`
	Priority      *string    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
}

// UpdateRequestDTO — частичное обновление. Переходы статуса свободные,
// валидируется только принадлежность множеству значений.
type UpdateRequestDTO struct {
	Status           *string    `json:"status,omitempty" validate:"omitempty,oneof=new in_progress repaired scrap"`
	Priority         *string    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	AssignedToUserID *uint64    `json:"assigned_to_user_id,omitempty" validate:"omitempty,gt=0"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	DurationMinutes  *int       `json:"duration_minutes,omitempty" validate:"omitempty,gte=0"`
	Notes            *string    `json:"notes,omitempty"`
}

type CreatedRequestDTO struct {
	ID            uint64 `json:"id"`
	RequestNumber string `json:"request_number"`
}
