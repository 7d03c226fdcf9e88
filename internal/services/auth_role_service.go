package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/repositories"
)

const userRoleCacheKeyPrefix = "user_role:"

// AuthRoleService отдаёт актуальную роль пользователя для middleware.
// Роль читается из базы, а не из токена: понижение прав вступает в силу
// не позже, чем истечёт кеш, без ожидания истечения access-токена.
type AuthRoleService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	ttl       time.Duration
	logger    *zap.Logger
}

func NewAuthRoleService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) *AuthRoleService {
	return &AuthRoleService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		ttl:       ttl,
		logger:    logger,
	}
}

func (s *AuthRoleService) GetRole(ctx context.Context, userID uint64) (string, error) {
	key := fmt.Sprintf("%s%d", userRoleCacheKeyPrefix, userID)

	if cached, err := s.cacheRepo.Get(ctx, key); err == nil && cached != "" {
		return cached, nil
	}

	role, err := s.userRepo.GetRole(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := s.cacheRepo.Set(ctx, key, role, s.ttl); err != nil {
		// Кеш не критичен, работаем дальше от базы.
		s.logger.Warn("не удалось закешировать роль пользователя", zap.Uint64("userID", userID), zap.Error(err))
	}
	return role, nil
}

// InvalidateRole сбрасывает кеш после смены роли пользователя.
func (s *AuthRoleService) InvalidateRole(ctx context.Context, userID uint64) error {
	return s.cacheRepo.Del(ctx, fmt.Sprintf("%s%d", userRoleCacheKeyPrefix, userID))
}
