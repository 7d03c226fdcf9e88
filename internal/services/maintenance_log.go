package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type MaintenanceLogServiceInterface interface {
	GetByEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentMaintenanceLog, error)
	AddEntry(ctx context.Context, payload dto.AddMaintenanceLogDTO) (uint64, error)
}

type MaintenanceLogService struct {
	logRepo       repositories.MaintenanceLogRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewMaintenanceLogService(
	logRepo repositories.MaintenanceLogRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) MaintenanceLogServiceInterface {
	return &MaintenanceLogService{
		logRepo:       logRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (s *MaintenanceLogService) GetByEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentMaintenanceLog, error) {
	return s.logRepo.GetByEquipment(ctx, equipmentID)
}

func (s *MaintenanceLogService) AddEntry(ctx context.Context, payload dto.AddMaintenanceLogDTO) (uint64, error) {
	if err := requireAdmin(ctx); err != nil {
		return 0, err
	}

	if _, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return 0, err
	}

	id, err := s.logRepo.Create(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка создания сервисной записи", zap.Error(err))
		return 0, err
	}
	return id, nil
}
