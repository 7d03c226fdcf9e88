package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const categoryTable = "equipment_categories"

// CategoryRepository - справочник категорий, только чтение.
// Наполняется миграцией-сидером.
type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error)
	FindCategory(ctx context.Context, id uint64) (*entities.EquipmentCategory, error)
}

type CategoryRepository struct {
	storage *pgxpool.Pool
}

func NewCategoryRepository(storage *pgxpool.Pool) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage}
}

func (r *CategoryRepository) GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error) {
	query := fmt.Sprintf("SELECT id, name, description, created_at FROM %s ORDER BY name ASC", categoryTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения категорий: %w", err)
	}
	defer rows.Close()

	categories := make([]entities.EquipmentCategory, 0)
	for rows.Next() {
		var c entities.EquipmentCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования категории: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindCategory(ctx context.Context, id uint64) (*entities.EquipmentCategory, error) {
	query := fmt.Sprintf("SELECT id, name, description, created_at FROM %s WHERE id = $1", categoryTable)

	var c entities.EquipmentCategory
	err := r.storage.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования категории: %w", err)
	}
	return &c, nil
}
