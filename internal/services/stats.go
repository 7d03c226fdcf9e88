package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
)

// DashboardService считает агрегаты в памяти по полному срезу заявок.
// Счётчиков в базе нет, каждый вызов видит актуальное состояние.
type DashboardServiceInterface interface {
	GetSnapshot(ctx context.Context) (*dto.DashboardSnapshotDTO, error)
	GetUpcomingPreventive(ctx context.Context, days int) ([]entities.MaintenanceRequest, error)
	GetByPriority(ctx context.Context, priority string) ([]entities.MaintenanceRequest, error)
}

type DashboardService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger

	// Подменяется в тестах для детерминированного "сейчас".
	now func() time.Time
}

func NewDashboardService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// GetSnapshot деградирует при недоступном хранилище: чтение дашборда
// отдаёт нулевые счётчики вместо ошибки, падают только записи.
func (s *DashboardService) GetSnapshot(ctx context.Context) (*dto.DashboardSnapshotDTO, error) {
	requests, err := s.requestRepo.GetAllRequests(ctx)
	if err != nil {
		s.logger.Warn("дашборд: заявки недоступны, счётчики по ним нулевые", zap.Error(err))
		requests = nil
	}
	equipments, err := s.equipmentRepo.GetAllEquipments(ctx)
	if err != nil {
		s.logger.Warn("дашборд: оборудование недоступно, счётчики по нему нулевые", zap.Error(err))
		equipments = nil
	}
	totalTeams, err := s.teamRepo.CountTeams(ctx)
	if err != nil {
		s.logger.Warn("дашборд: бригады недоступны, счётчик нулевой", zap.Error(err))
		totalTeams = 0
	}

	now := s.now()
	upcomingUntil := now.AddDate(0, 0, 7)
	snapshot := &dto.DashboardSnapshotDTO{
		TotalRequests: len(requests),
		TotalTeams:    totalTeams,
	}

	for _, r := range requests {
		open := constants.IsOpenRequestStatus(r.Status)
		if open {
			snapshot.OpenRequests++
			// Просрочена: открыта и плановая дата уже в прошлом.
			if r.ScheduledDate.Valid && r.ScheduledDate.Time.Before(now) {
				snapshot.OverdueRequests++
			}
		}

		if r.Type == constants.RequestTypePreventive && r.ScheduledDate.Valid &&
			!r.ScheduledDate.Time.Before(now) && !r.ScheduledDate.Time.After(upcomingUntil) {
			snapshot.UpcomingMaintenanceCount++
		}

		switch r.Status {
		case constants.RequestStatusNew:
			snapshot.RequestsByStatus.New++
		case constants.RequestStatusInProgress:
			snapshot.RequestsByStatus.InProgress++
		case constants.RequestStatusRepaired:
			snapshot.RequestsByStatus.Repaired++
		case constants.RequestStatusScrap:
			snapshot.RequestsByStatus.Scrap++
		}
	}

	snapshot.TotalEquipment = len(equipments)
	for _, e := range equipments {
		if e.Status == constants.EquipmentStatusActive {
			snapshot.ActiveEquipment++
		}
	}

	return snapshot, nil
}

// GetUpcomingPreventive - плановые работы в окне [сейчас, сейчас+days],
// отсортированные по плановой дате по возрастанию. Тип фильтруется в
// SQL, дата - здесь: окно привязано к моменту вызова.
func (s *DashboardService) GetUpcomingPreventive(ctx context.Context, days int) ([]entities.MaintenanceRequest, error) {
	requests, _, err := s.requestRepo.GetRequests(ctx, repositories.RequestFilter{
		Type: constants.RequestTypePreventive,
	})
	if err != nil {
		s.logger.Warn("дашборд: план работ недоступен, отдаём пустой список", zap.Error(err))
		return []entities.MaintenanceRequest{}, nil
	}

	now := s.now()
	until := now.AddDate(0, 0, days)

	upcoming := make([]entities.MaintenanceRequest, 0)
	for _, r := range requests {
		if !r.ScheduledDate.Valid {
			continue
		}
		if r.ScheduledDate.Time.Before(now) || r.ScheduledDate.Time.After(until) {
			continue
		}
		upcoming = append(upcoming, r)
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledDate.Time.Before(upcoming[j].ScheduledDate.Time)
	})
	return upcoming, nil
}

// GetByPriority - заявки указанного приоритета, свежие первыми.
func (s *DashboardService) GetByPriority(ctx context.Context, priority string) ([]entities.MaintenanceRequest, error) {
	requests, _, err := s.requestRepo.GetRequests(ctx, repositories.RequestFilter{Priority: priority})
	if err != nil {
		s.logger.Warn("дашборд: выборка по приоритету недоступна, отдаём пустой список", zap.Error(err))
		return []entities.MaintenanceRequest{}, nil
	}
	return requests, nil
}
