package usecase

import (
	"context"

	"github.com/pkg/errors"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
	"github.com/yourusername/shop-catalog/internal/domain/repository"
)

// CartLine savatdagi bitta qator
type CartLine struct {
	Item     entity.CartItem
	Product  entity.Product
	Subtotal float64
}

// CartSummary savat holati
type CartSummary struct {
	Lines []CartLine
	Count int
	Total float64
}

// CartUseCase savat bilan bog'liq business logic
type CartUseCase interface {
	// AddToCart mahsulotni savatga qo'shish (mavjud bo'lsa sonini oshirish)
	AddToCart(ctx context.Context, productID int64) (entity.CartItem, error)

	// RemoveFromCart elementni savatdan olib tashlash
	RemoveFromCart(ctx context.Context, item entity.CartItem) error

	// ClearCart savatni tozalash
	ClearCart(ctx context.Context) error

	// Summary savat qatorlari va jami summa
	Summary(ctx context.Context) (*CartSummary, error)
}

type cartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase yangi CartUseCase yaratish
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartUseCase {
	return &cartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (u *cartUseCase) AddToCart(ctx context.Context, productID int64) (entity.CartItem, error) {
	product, err := u.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return entity.CartItem{}, err
	}
	if product == nil {
		return entity.CartItem{}, errors.Wrapf(ErrProductNotFound, "id %d", productID)
	}

	item, err := u.cartRepo.GetCartItemByProductID(ctx, productID)
	if err != nil {
		return entity.CartItem{}, err
	}

	next := entity.CartItem{ProductID: productID, Quantity: 1}
	if item != nil {
		next = *item
		next.Quantity++
	}

	id, err := u.cartRepo.InsertCartItem(ctx, next)
	if err != nil {
		return entity.CartItem{}, err
	}
	next.ID = id
	return next, nil
}

func (u *cartUseCase) RemoveFromCart(ctx context.Context, item entity.CartItem) error {
	return u.cartRepo.DeleteCartItem(ctx, item)
}

func (u *cartUseCase) ClearCart(ctx context.Context) error {
	return u.cartRepo.ClearCart(ctx)
}

func (u *cartUseCase) Summary(ctx context.Context) (*CartSummary, error) {
	itemsQuery, err := u.cartRepo.GetAllCartItems(ctx)
	if err != nil {
		return nil, err
	}
	items, err := repository.First(ctx, itemsQuery)
	if err != nil {
		return nil, err
	}

	summary := &CartSummary{}
	for _, item := range items {
		product, err := u.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		// o'chirilgan mahsulot
		if product == nil {
			continue
		}

		line := CartLine{
			Item:     item,
			Product:  *product,
			Subtotal: product.Price * float64(item.Quantity),
		}
		summary.Lines = append(summary.Lines, line)
		summary.Count += item.Quantity
		summary.Total += line.Subtotal
	}
	return summary, nil
}
