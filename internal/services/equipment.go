package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter repositories.EquipmentFilter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(equipmentRepo repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepo: equipmentRepo, logger: logger}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter repositories.EquipmentFilter) ([]entities.Equipment, uint64, error) {
	return s.equipmentRepo.GetEquipments(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	if err := requireAdmin(ctx); err != nil {
		return 0, err
	}

	// Серийный номер уникален в рамках всего парка.
	existing, err := s.equipmentRepo.FindBySerialNumber(ctx, payload.SerialNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return 0, err
	}
	if existing != nil {
		return 0, apperrors.NewBadRequestError("Оборудование с таким серийным номером уже зарегистрировано")
	}

	id, err := s.equipmentRepo.CreateEquipment(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка создания оборудования", zap.Error(err))
		return 0, err
	}

	s.logger.Info("оборудование зарегистрировано",
		zap.Uint64("id", id),
		zap.String("serialNumber", payload.SerialNumber))
	return id, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return s.equipmentRepo.UpdateEquipment(ctx, id, payload)
}
