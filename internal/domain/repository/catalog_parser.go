package repository

import (
	"context"
	"io"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
)

// CatalogParser tashqi fayldan mahsulotlar ro'yxatini o'qiydi.
// Qaytgan mahsulotlarda ID 0 bo'lishi mumkin; ID ni usecase beradi.
type CatalogParser interface {
	// ParseProducts fayl yo'li bo'yicha o'qish
	ParseProducts(ctx context.Context, path string) ([]entity.Product, error)

	// ParseProductsFrom reader dan o'qish; source faqat xabarlar uchun
	ParseProductsFrom(ctx context.Context, r io.Reader, source string) ([]entity.Product, error)
}
