package repository

import (
	"context"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
)

// CartRepository savat bilan ishlash uchun interface
type CartRepository interface {
	// GetAllCartItems savatni jonli kuzatish
	GetAllCartItems(ctx context.Context) (LiveQuery[entity.CartItem], error)

	// GetCartItemByProductID mahsulot bo'yicha savat elementi. Topilmasa nil, nil.
	GetCartItemByProductID(ctx context.Context, productID int64) (*entity.CartItem, error)

	// InsertCartItem elementni saqlash va uning ID sini qaytarish
	InsertCartItem(ctx context.Context, item entity.CartItem) (int64, error)

	// DeleteCartItem elementni ID bo'yicha o'chirish
	DeleteCartItem(ctx context.Context, item entity.CartItem) error

	// ClearCart savatni tozalash
	ClearCart(ctx context.Context) error
}
