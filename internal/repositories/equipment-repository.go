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

const equipmentTable = "equipment"
const equipmentFields = "id, name, serial_number, category_id, maintenance_team_id, department, assigned_to, location, purchase_date, warranty_expiry, status, notes, created_at, updated_at"

// EquipmentFilter - параметры выборки списка оборудования.
type EquipmentFilter struct {
	Status     string
	CategoryID uint64
	TeamID     uint64
	Search     string
	Limit      uint64
	Offset     uint64
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter EquipmentFilter) ([]entities.Equipment, uint64, error)
	GetAllEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindBySerialNumber(ctx context.Context, serialNumber string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status string) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.CategoryID, &e.MaintenanceTeamID,
		&e.Department, &e.AssignedTo, &e.Location,
		&e.PurchaseDate, &e.WarrantyExpiry, &e.Status, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования оборудования: %w", err)
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter EquipmentFilter) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applyFilter := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Status != "" {
			b = b.Where(sq.Eq{"status": filter.Status})
		}
		if filter.CategoryID > 0 {
			b = b.Where(sq.Eq{"category_id": filter.CategoryID})
		}
		if filter.TeamID > 0 {
			b = b.Where(sq.Eq{"maintenance_team_id": filter.TeamID})
		}
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			b = b.Where(sq.Or{
				sq.ILike{"name": pat},
				sq.ILike{"serial_number": pat},
			})
		}
		return b
	}

	countQuery, countArgs, err := applyFilter(psql.Select("COUNT(*)").From(equipmentTable)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса подсчета оборудования: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета оборудования: %w", err)
	}

	listBuilder := applyFilter(psql.Select(equipmentFields).From(equipmentTable)).OrderBy("created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	listQuery, listArgs, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса списка оборудования: %w", err)
	}

	rows, err := r.storage.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка оборудования: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(
			&e.ID, &e.Name, &e.SerialNumber, &e.CategoryID, &e.MaintenanceTeamID,
			&e.Department, &e.AssignedTo, &e.Location,
			&e.PurchaseDate, &e.WarrantyExpiry, &e.Status, &e.Notes,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования оборудования в списке: %w", err)
		}
		items = append(items, e)
	}
	return items, total, rows.Err()
}

// GetAllEquipments - полная выборка без пагинации, для дашборда.
func (r *EquipmentRepository) GetAllEquipments(ctx context.Context) ([]entities.Equipment, error) {
	items, _, err := r.GetEquipments(ctx, EquipmentFilter{})
	return items, err
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentFields, equipmentTable)
	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) FindBySerialNumber(ctx context.Context, serialNumber string) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE serial_number = $1", equipmentFields, equipmentTable)
	return scanEquipment(r.storage.QueryRow(ctx, query, serialNumber))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, serial_number, category_id, maintenance_team_id, department, assigned_to, location, purchase_date, warranty_expiry, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`, equipmentTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		payload.Name, payload.SerialNumber, payload.CategoryID, payload.MaintenanceTeamID,
		payload.Department, payload.AssignedTo, payload.Location,
		payload.PurchaseDate, payload.WarrantyExpiry, payload.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания оборудования: %w", err)
	}
	return id, nil
}

// UpdateEquipment - частичное обновление, nil-поля не трогаем.
func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(equipmentTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).Where(sq.Eq{"id": id})

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.CategoryID != nil {
		builder = builder.Set("category_id", *payload.CategoryID)
	}
	if payload.MaintenanceTeamID != nil {
		builder = builder.Set("maintenance_team_id", *payload.MaintenanceTeamID)
	}
	if payload.Department != nil {
		builder = builder.Set("department", *payload.Department)
	}
	if payload.AssignedTo != nil {
		builder = builder.Set("assigned_to", *payload.AssignedTo)
	}
	if payload.Location != nil {
		builder = builder.Set("location", *payload.Location)
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
	}
	if payload.Notes != nil {
		builder = builder.Set("notes", *payload.Notes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса обновления оборудования: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления оборудования: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateStatusInTx используется каскадом списания заявки: статус
// оборудования меняется в той же транзакции, что и заявка.
func (r *EquipmentRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	query := fmt.Sprintf("UPDATE %s SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2", equipmentTable)

	result, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса оборудования: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
