package repository

import (
	"context"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
)

// ProductRepository mahsulotlar bilan ishlash uchun interface
type ProductRepository interface {
	// InsertAll mahsulotlarni bitta tranzaksiyada saqlash (insert-or-replace)
	InsertAll(ctx context.Context, products []entity.Product) error

	// Insert bitta mahsulotni saqlash (insert-or-replace)
	Insert(ctx context.Context, product entity.Product) error

	// Delete mahsulotni ID bo'yicha o'chirish
	Delete(ctx context.Context, product entity.Product) error

	// DeleteAll barcha mahsulotlarni o'chirish
	DeleteAll(ctx context.Context) error

	// GetAllProducts barcha mahsulotlarni jonli kuzatish
	GetAllProducts(ctx context.Context) (LiveQuery[entity.Product], error)

	// GetProductByID ID bo'yicha mahsulotni olish. Topilmasa nil, nil qaytaradi.
	GetProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// GetProductsByCategory kategoriya bo'yicha mahsulotlarni jonli kuzatish
	GetProductsByCategory(ctx context.Context, categoryID int64) (LiveQuery[entity.Product], error)
}
