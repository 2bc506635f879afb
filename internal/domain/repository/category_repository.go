package repository

import (
	"context"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
)

// CategoryRepository kategoriyalar bilan ishlash uchun interface
type CategoryRepository interface {
	// GetAllCategories barcha kategoriyalarni jonli kuzatish
	GetAllCategories(ctx context.Context) (LiveQuery[entity.Category], error)

	// GetCategoryByID ID bo'yicha kategoriya. Topilmasa nil, nil.
	GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error)

	Insert(ctx context.Context, category entity.Category) error
	InsertAll(ctx context.Context, categories []entity.Category) error
	DeleteAll(ctx context.Context) error
}
