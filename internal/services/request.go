package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	"gearguard/pkg/utils"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter repositories.RequestFilter) ([]entities.MaintenanceRequest, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.CreatedRequestDTO, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) error
}

type RequestService struct {
	txManager      repositories.TxManagerInterface
	requestRepo    repositories.RequestRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	teamRepo       repositories.TeamRepositoryInterface
	historyService HistoryServiceInterface
	logger         *zap.Logger
}

func NewRequestService(
	txManager repositories.TxManagerInterface,
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	historyService HistoryServiceInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		txManager:      txManager,
		requestRepo:    requestRepo,
		equipmentRepo:  equipmentRepo,
		teamRepo:       teamRepo,
		historyService: historyService,
		logger:         logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context, filter repositories.RequestFilter) ([]entities.MaintenanceRequest, uint64, error) {
	return s.requestRepo.GetRequests(ctx, filter)
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	return s.requestRepo.FindRequest(ctx, id)
}

// CreateRequest регистрирует заявку: номер MR-<unix-миллисекунды>,
// стартовый статус всегда "new". Запись аудита "created" пишется
// best-effort и не блокирует создание.
func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.CreatedRequestDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.teamRepo.FindTeam(ctx, payload.TeamID); err != nil {
		return nil, err
	}

	priority := constants.PriorityMedium
	if payload.Priority != nil {
		priority = *payload.Priority
	}

	request := &entities.MaintenanceRequest{
		RequestNumber:     fmt.Sprintf("MR-%d", time.Now().UnixMilli()),
		Type:              payload.Type,
		Subject:           payload.Subject,
		Description:       null.StringFromPtr(payload.Description),
		EquipmentID:       equipment.ID,
		MaintenanceTeamID: payload.TeamID,
		Priority:          priority,
		Status:            constants.RequestStatusNew,
		ScheduledDate:     null.TimeFromPtr(payload.ScheduledDate),
	}

	id, err := s.requestRepo.CreateRequest(ctx, request)
	if err != nil {
		s.logger.Error("ошибка создания заявки", zap.Error(err))
		return nil, err
	}

	userID, _ := utils.GetUserIDFromCtx(ctx)
	_ = s.historyService.Append(ctx, nil, &entities.MaintenanceHistory{
		RequestID:   id,
		EquipmentID: equipment.ID,
		Action:      constants.HistoryActionCreated,
		NewValue:    null.StringFrom(constants.RequestStatusNew),
		ChangedBy:   null.Uint64FromPtr(nonZeroPtr(userID)),
	}, BestEffort)

	s.logger.Info("заявка создана",
		zap.Uint64("id", id),
		zap.String("number", request.RequestNumber))

	return &dto.CreatedRequestDTO{ID: id, RequestNumber: request.RequestNumber}, nil
}

// UpdateRequest - частичное обновление. Смена статуса и её запись
// аудита атомарны; переход в "scrap" в той же транзакции списывает
// оборудование.
func (s *RequestService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) error {
	current, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return err
	}

	userID, _ := utils.GetUserIDFromCtx(ctx)
	statusChanged := payload.Status != nil && *payload.Status != current.Status

	return s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.requestRepo.UpdateRequestInTx(ctx, tx, id, payload); err != nil {
			return err
		}

		if statusChanged {
			entry := &entities.MaintenanceHistory{
				RequestID:   id,
				EquipmentID: current.EquipmentID,
				Action:      constants.HistoryActionStatusChanged,
				OldValue:    null.StringFrom(current.Status),
				NewValue:    null.StringFrom(*payload.Status),
				ChangedBy:   null.Uint64FromPtr(nonZeroPtr(userID)),
			}
			if err := s.historyService.Append(ctx, tx, entry, Durable); err != nil {
				return err
			}

			if *payload.Status == constants.RequestStatusScrap {
				if err := s.equipmentRepo.UpdateStatusInTx(ctx, tx, current.EquipmentID, constants.EquipmentStatusScrapped); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func nonZeroPtr(v uint64) *uint64 {
	if v == 0 {
		return nil
	}
	return &v
}
