package entity

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidProduct mahsulot maydonlari noto'g'ri
var ErrInvalidProduct = errors.New("invalid product")

// Product mahsulot entity (products jadvalining bitta qatori)
type Product struct {
	ID             int64
	Name           string
	Description    string
	Price          float64
	ImageURL       string
	Category       string
	CategoryID     int64
	Details        string
	Specifications string
	InStock        bool
}

// Validate SQLite REAL ustunida aniq saqlanmaydigan narxni rad etadi.
// Bo'sh nom va manfiy narx qabul qilinadi.
func (p Product) Validate() error {
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return errors.Wrapf(ErrInvalidProduct, "product %d: bad price %v", p.ID, p.Price)
	}
	return nil
}

// ProductCatalog import qilingan mahsulotlar katalogi
type ProductCatalog struct {
	Products   []Product
	ImportedAt time.Time
	Source     string // Excel fayl nomi
}
