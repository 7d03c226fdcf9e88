package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
)

const historyTable = "maintenance_history"
const historyFields = "id, request_id, equipment_id, action, old_value, new_value, changed_by, created_at"

// HistoryRepository пишет в append-only журнал. UPDATE и DELETE по
// таблице maintenance_history не существуют намеренно.
type HistoryRepositoryInterface interface {
	Create(ctx context.Context, entry *entities.MaintenanceHistory) error
	CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.MaintenanceHistory) error
	GetByRequest(ctx context.Context, requestID uint64) ([]entities.MaintenanceHistory, error)
	GetByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceHistory, error)
}

type HistoryRepository struct {
	storage *pgxpool.Pool
}

func NewHistoryRepository(storage *pgxpool.Pool) HistoryRepositoryInterface {
	return &HistoryRepository{storage: storage}
}

const historyInsertQuery = `
	INSERT INTO maintenance_history (request_id, equipment_id, action, old_value, new_value, changed_by)
	VALUES ($1, $2, $3, $4, $5, $6)`

func (r *HistoryRepository) Create(ctx context.Context, entry *entities.MaintenanceHistory) error {
	_, err := r.storage.Exec(ctx, historyInsertQuery,
		entry.RequestID, entry.EquipmentID, entry.Action,
		entry.OldValue, entry.NewValue, entry.ChangedBy)
	return err
}

func (r *HistoryRepository) CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.MaintenanceHistory) error {
	_, err := tx.Exec(ctx, historyInsertQuery,
		entry.RequestID, entry.EquipmentID, entry.Action,
		entry.OldValue, entry.NewValue, entry.ChangedBy)
	return err
}

func (r *HistoryRepository) GetByRequest(ctx context.Context, requestID uint64) ([]entities.MaintenanceHistory, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE request_id = $1
		ORDER BY created_at ASC, id ASC`, historyFields, historyTable)
	return r.queryHistory(ctx, query, requestID)
}

func (r *HistoryRepository) GetByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceHistory, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE equipment_id = $1
		ORDER BY created_at ASC, id ASC`, historyFields, historyTable)
	return r.queryHistory(ctx, query, equipmentID)
}

func (r *HistoryRepository) queryHistory(ctx context.Context, query string, arg uint64) ([]entities.MaintenanceHistory, error) {
	rows, err := r.storage.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения истории: %w", err)
	}
	defer rows.Close()

	history := make([]entities.MaintenanceHistory, 0)
	for rows.Next() {
		var h entities.MaintenanceHistory
		if err := rows.Scan(
			&h.ID, &h.RequestID, &h.EquipmentID, &h.Action,
			&h.OldValue, &h.NewValue, &h.ChangedBy, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования записи истории: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
