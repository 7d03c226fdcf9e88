package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

const maintenanceLogTable = "equipment_maintenance_log"
const maintenanceLogFields = "id, equipment_id, request_id, service_type, description, technician, cost, next_service_date, created_at"

type MaintenanceLogRepositoryInterface interface {
	GetByEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentMaintenanceLog, error)
	Create(ctx context.Context, payload dto.AddMaintenanceLogDTO) (uint64, error)
}

type MaintenanceLogRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceLogRepository(storage *pgxpool.Pool) MaintenanceLogRepositoryInterface {
	return &MaintenanceLogRepository{storage: storage}
}

// GetByEquipment возвращает сервисные записи свежие-первыми.
func (r *MaintenanceLogRepository) GetByEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentMaintenanceLog, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE equipment_id = $1
		ORDER BY created_at DESC, id DESC`, maintenanceLogFields, maintenanceLogTable)

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения сервисного журнала: %w", err)
	}
	defer rows.Close()

	logs := make([]entities.EquipmentMaintenanceLog, 0)
	for rows.Next() {
		var l entities.EquipmentMaintenanceLog
		if err := rows.Scan(
			&l.ID, &l.EquipmentID, &l.RequestID, &l.ServiceType,
			&l.Description, &l.Technician, &l.Cost, &l.NextServiceDate, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования сервисной записи: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *MaintenanceLogRepository) Create(ctx context.Context, payload dto.AddMaintenanceLogDTO) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (equipment_id, request_id, service_type, description, technician, cost, next_service_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`, maintenanceLogTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		payload.EquipmentID, payload.RequestID, payload.ServiceType,
		payload.Description, payload.Technician, payload.Cost, payload.NextServiceDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания сервисной записи: %w", err)
	}
	return id, nil
}
