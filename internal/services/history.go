package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

// WritePolicy определяет, валит ли ошибка записи аудита всю операцию.
type WritePolicy int

const (
	// Durable - запись обязана попасть в базу вместе с операцией.
	Durable WritePolicy = iota
	// BestEffort - потеря записи допустима, ошибка только логируется.
	BestEffort
)

type HistoryServiceInterface interface {
	Append(ctx context.Context, tx pgx.Tx, entry *entities.MaintenanceHistory, policy WritePolicy) error
	GetByRequest(ctx context.Context, requestID uint64) ([]entities.MaintenanceHistory, error)
	GetByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceHistory, error)
}

type HistoryService struct {
	historyRepo repositories.HistoryRepositoryInterface
	logger      *zap.Logger
}

func NewHistoryService(historyRepo repositories.HistoryRepositoryInterface, logger *zap.Logger) HistoryServiceInterface {
	return &HistoryService{historyRepo: historyRepo, logger: logger}
}

// Append добавляет запись в журнал аудита. При tx == nil пишет вне
// транзакции. С политикой BestEffort ошибка проглатывается: так ведёт
// себя запись "created", которая не должна ломать создание заявки.
func (s *HistoryService) Append(ctx context.Context, tx pgx.Tx, entry *entities.MaintenanceHistory, policy WritePolicy) error {
	var err error
	if tx != nil {
		err = s.historyRepo.CreateInTx(ctx, tx, entry)
	} else {
		err = s.historyRepo.Create(ctx, entry)
	}

	if err != nil {
		if policy == BestEffort {
			s.logger.Warn("запись аудита потеряна",
				zap.Uint64("requestID", entry.RequestID),
				zap.String("action", entry.Action),
				zap.Error(err))
			return nil
		}
		s.logger.Error("ошибка записи аудита",
			zap.Uint64("requestID", entry.RequestID),
			zap.String("action", entry.Action),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *HistoryService) GetByRequest(ctx context.Context, requestID uint64) ([]entities.MaintenanceHistory, error) {
	return s.historyRepo.GetByRequest(ctx, requestID)
}

func (s *HistoryService) GetByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceHistory, error) {
	return s.historyRepo.GetByEquipment(ctx, equipmentID)
}
