package entity

import "github.com/pkg/errors"

// ErrInvalidCartItem savat elementi noto'g'ri
var ErrInvalidCartItem = errors.New("invalid cart item")

// CartItem savatdagi mahsulot. ID = 0 bo'lsa baza o'zi yaratadi.
type CartItem struct {
	ID        int64
	ProductID int64
	Quantity  int
}

// Validate savat elementini tekshirish
func (c CartItem) Validate() error {
	if c.ProductID == 0 {
		return errors.Wrap(ErrInvalidCartItem, "missing product id")
	}
	if c.Quantity <= 0 {
		return errors.Wrapf(ErrInvalidCartItem, "product %d: quantity %d", c.ProductID, c.Quantity)
	}
	return nil
}
