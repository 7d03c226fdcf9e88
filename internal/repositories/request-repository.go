package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const requestTable = "maintenance_requests"
const requestFields = "id, request_number, type, subject, description, equipment_id, maintenance_team_id, assigned_to_user_id, priority, status, scheduled_date, started_at, completed_at, duration_minutes, notes, created_at, updated_at"

// RequestFilter - параметры выборки списка заявок.
type RequestFilter struct {
	Status      string
	Type        string
	Priority    string
	EquipmentID uint64
	TeamID      uint64
	Limit       uint64
	Offset      uint64
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter RequestFilter) ([]entities.MaintenanceRequest, uint64, error)
	GetAllRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, request *entities.MaintenanceRequest) (uint64, error)
	UpdateRequestInTx(ctx context.Context, tx pgx.Tx, id uint64, payload dto.UpdateRequestDTO) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

func scanRequestRow(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var m entities.MaintenanceRequest
	err := row.Scan(
		&m.ID, &m.RequestNumber, &m.Type, &m.Subject, &m.Description,
		&m.EquipmentID, &m.MaintenanceTeamID, &m.AssignedToUserID,
		&m.Priority, &m.Status,
		&m.ScheduledDate, &m.StartedAt, &m.CompletedAt, &m.DurationMinutes,
		&m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования заявки: %w", err)
	}
	return &m, nil
}

func (r *RequestRepository) GetRequests(ctx context.Context, filter RequestFilter) ([]entities.MaintenanceRequest, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applyFilter := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Status != "" {
			b = b.Where(sq.Eq{"status": filter.Status})
		}
		if filter.Type != "" {
			b = b.Where(sq.Eq{"type": filter.Type})
		}
		if filter.Priority != "" {
			b = b.Where(sq.Eq{"priority": filter.Priority})
		}
		if filter.EquipmentID > 0 {
			b = b.Where(sq.Eq{"equipment_id": filter.EquipmentID})
		}
		if filter.TeamID > 0 {
			b = b.Where(sq.Eq{"maintenance_team_id": filter.TeamID})
		}
		return b
	}

	countQuery, countArgs, err := applyFilter(psql.Select("COUNT(*)").From(requestTable)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса подсчета заявок: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета заявок: %w", err)
	}

	listBuilder := applyFilter(psql.Select(requestFields).From(requestTable)).OrderBy("created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	listQuery, listArgs, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса списка заявок: %w", err)
	}

	rows, err := r.storage.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка заявок: %w", err)
	}
	defer rows.Close()

	requests := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		var m entities.MaintenanceRequest
		if err := rows.Scan(
			&m.ID, &m.RequestNumber, &m.Type, &m.Subject, &m.Description,
			&m.EquipmentID, &m.MaintenanceTeamID, &m.AssignedToUserID,
			&m.Priority, &m.Status,
			&m.ScheduledDate, &m.StartedAt, &m.CompletedAt, &m.DurationMinutes,
			&m.Notes, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования заявки в списке: %w", err)
		}
		requests = append(requests, m)
	}
	return requests, total, rows.Err()
}

// GetAllRequests - полная выборка без пагинации. Агрегаты дашборда
// считаются в сервисе по этому срезу.
func (r *RequestRepository) GetAllRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	requests, _, err := r.GetRequests(ctx, RequestFilter{})
	return requests, err
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", requestFields, requestTable)
	return scanRequestRow(r.storage.QueryRow(ctx, query, id))
}

func (r *RequestRepository) CreateRequest(ctx context.Context, request *entities.MaintenanceRequest) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (request_number, type, subject, description, equipment_id, maintenance_team_id, priority, status, scheduled_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`, requestTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		request.RequestNumber, request.Type, request.Subject, request.Description,
		request.EquipmentID, request.MaintenanceTeamID,
		request.Priority, request.Status, request.ScheduledDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания заявки: %w", err)
	}
	return id, nil
}

// UpdateRequestInTx - частичное обновление в транзакции. Заявка и её
// запись аудита должны попадать в базу атомарно, поэтому метод
// принимает tx, а не pool.
func (r *RequestRepository) UpdateRequestInTx(ctx context.Context, tx pgx.Tx, id uint64, payload dto.UpdateRequestDTO) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(requestTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).Where(sq.Eq{"id": id})

	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
	}
	if payload.Priority != nil {
		builder = builder.Set("priority", *payload.Priority)
	}
	if payload.AssignedToUserID != nil {
		builder = builder.Set("assigned_to_user_id", *payload.AssignedToUserID)
	}
	if payload.StartedAt != nil {
		builder = builder.Set("started_at", *payload.StartedAt)
	}
	if payload.CompletedAt != nil {
		builder = builder.Set("completed_at", *payload.CompletedAt)
	}
	if payload.DurationMinutes != nil {
		builder = builder.Set("duration_minutes", *payload.DurationMinutes)
	}
	if payload.Notes != nil {
		builder = builder.Set("notes", *payload.Notes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса обновления заявки: %w", err)
	}

	result, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления заявки: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
