package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const teamTable = "maintenance_teams"
const teamFields = "id, name, description, created_at, updated_at"

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeam(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error)
	CountTeams(ctx context.Context) (int, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func (r *TeamRepository) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY name ASC", teamFields, teamTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка бригад: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.MaintenanceTeam, 0)
	for rows.Next() {
		var t entities.MaintenanceTeam
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования бригады в списке: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", teamFields, teamTable)

	var t entities.MaintenanceTeam
	err := r.storage.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования бригады: %w", err)
	}
	return &t, nil
}

func (r *TeamRepository) CountTeams(ctx context.Context) (int, error) {
	var total int
	if err := r.storage.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", teamTable)).Scan(&total); err != nil {
		return 0, fmt.Errorf("ошибка подсчета бригад: %w", err)
	}
	return total, nil
}

func (r *TeamRepository) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error) {
	query := fmt.Sprintf("INSERT INTO %s (name, description) VALUES ($1, $2) RETURNING id", teamTable)

	var id uint64
	if err := r.storage.QueryRow(ctx, query, payload.Name, payload.Description).Scan(&id); err != nil {
		return 0, fmt.Errorf("ошибка создания бригады: %w", err)
	}
	return id, nil
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $3`, teamTable)

	result, err := r.storage.Exec(ctx, query, payload.Name, payload.Description, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления бригады: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
