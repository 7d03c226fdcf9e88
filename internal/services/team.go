package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeam(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error
	GetMembers(ctx context.Context, teamID uint64) ([]entities.TeamMember, error)
	AddMember(ctx context.Context, payload dto.AddTeamMemberDTO) (uint64, error)
	RemoveMember(ctx context.Context, id uint64) error
}

type TeamService struct {
	teamRepo   repositories.TeamRepositoryInterface
	memberRepo repositories.TeamMemberRepositoryInterface
	logger     *zap.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepositoryInterface,
	memberRepo repositories.TeamMemberRepositoryInterface,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	return s.teamRepo.GetTeams(ctx)
}

func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error) {
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error) {
	if err := requireAdmin(ctx); err != nil {
		return 0, err
	}

	id, err := s.teamRepo.CreateTeam(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка создания бригады", zap.Error(err))
		return 0, err
	}
	s.logger.Info("бригада создана", zap.Uint64("id", id), zap.String("name", payload.Name))
	return id, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return s.teamRepo.UpdateTeam(ctx, id, payload)
}

func (s *TeamService) GetMembers(ctx context.Context, teamID uint64) ([]entities.TeamMember, error) {
	return s.memberRepo.GetByTeam(ctx, teamID)
}

func (s *TeamService) AddMember(ctx context.Context, payload dto.AddTeamMemberDTO) (uint64, error) {
	if err := requireAdmin(ctx); err != nil {
		return 0, err
	}

	// Бригада должна существовать, иначе вернём 404 вместо ошибки FK.
	if _, err := s.teamRepo.FindTeam(ctx, payload.TeamID); err != nil {
		return 0, err
	}
	return s.memberRepo.AddMember(ctx, payload)
}

func (s *TeamService) RemoveMember(ctx context.Context, id uint64) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return s.memberRepo.RemoveMember(ctx, id)
}
