package dto

type CreateTeamDTO struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty"`
}

type UpdateTeamDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty"`
}

type AddTeamMemberDTO struct {
	TeamID uint64  `json:"team_id" validate:"required,gt=0"`
	UserID uint64  `json:"user_id" validate:"required,gt=0"`
	Role   *string `json:"role,omitempty" validate:"omitempty,max=100"`
}
