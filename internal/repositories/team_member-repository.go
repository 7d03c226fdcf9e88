package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const teamMemberTable = "team_members"

type TeamMemberRepositoryInterface interface {
	GetByTeam(ctx context.Context, teamID uint64) ([]entities.TeamMember, error)
	AddMember(ctx context.Context, payload dto.AddTeamMemberDTO) (uint64, error)
	RemoveMember(ctx context.Context, id uint64) error
}

type TeamMemberRepository struct {
	storage *pgxpool.Pool
}

func NewTeamMemberRepository(storage *pgxpool.Pool) TeamMemberRepositoryInterface {
	return &TeamMemberRepository{storage: storage}
}

// GetByTeam подтягивает имя пользователя JOIN-ом, чтобы фронту не
// ходить отдельно за каждым участником.
func (r *TeamMemberRepository) GetByTeam(ctx context.Context, teamID uint64) ([]entities.TeamMember, error) {
	query := fmt.Sprintf(`
		SELECT m.id, m.team_id, m.user_id, m.role, m.created_at, u.name AS user_name
		FROM %s m
		LEFT JOIN users u ON u.id = m.user_id
		WHERE m.team_id = $1
		ORDER BY m.id ASC`, teamMemberTable)

	rows, err := r.storage.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения участников бригады: %w", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.CreatedAt, &m.UserName); err != nil {
			return nil, fmt.Errorf("ошибка сканирования участника бригады: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *TeamMemberRepository) AddMember(ctx context.Context, payload dto.AddTeamMemberDTO) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (team_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (team_id, user_id) DO UPDATE SET role = EXCLUDED.role
		RETURNING id`, teamMemberTable)

	var id uint64
	if err := r.storage.QueryRow(ctx, query, payload.TeamID, payload.UserID, payload.Role).Scan(&id); err != nil {
		return 0, fmt.Errorf("ошибка добавления участника бригады: %w", err)
	}
	return id, nil
}

func (r *TeamMemberRepository) RemoveMember(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", teamMemberTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
