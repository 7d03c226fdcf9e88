package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *zap.Logger) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, logger: logger}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error) {
	return s.categoryRepo.GetCategories(ctx)
}

func (s *CategoryService) FindCategory(ctx context.Context, id uint64) (*entities.EquipmentCategory, error) {
	return s.categoryRepo.FindCategory(ctx, id)
}
