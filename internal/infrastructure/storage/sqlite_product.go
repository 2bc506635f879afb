package storage

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
	"github.com/yourusername/shop-catalog/internal/domain/repository"
)

const (
	productColumns = `id, name, description, price, imageUrl, category, categoryId, details, specifications, inStock`

	insertProductSQL         = `INSERT OR REPLACE INTO products (` + productColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	deleteProductSQL         = `DELETE FROM products WHERE id = ?`
	deleteAllProductsSQL     = `DELETE FROM products`
	selectAllProductsSQL     = `SELECT ` + productColumns + ` FROM products`
	selectProductByIDSQL     = `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	selectProductsByCategory = `SELECT ` + productColumns + ` FROM products WHERE categoryId = ?`
)

// Mahsulot yozuvlari cart_items ga ham ta'sir qiladi: REPLACE va DELETE
// eski qatorni o'chiradi va ON DELETE CASCADE savatni tozalaydi.
var productWriteTables = []string{TableProducts, TableCartItems}

type sqliteProductRepository struct {
	db *Database
}

// NewSQLiteProductRepository SQLite asosidagi product repository
func NewSQLiteProductRepository(db *Database) repository.ProductRepository {
	return &sqliteProductRepository{db: db}
}

// InsertAll mahsulotlarni bitta tranzaksiyada saqlash
func (r *sqliteProductRepository) InsertAll(ctx context.Context, products []entity.Product) error {
	return r.db.RunInTx(ctx, productWriteTables, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertProductSQL)
		if err != nil {
			return errors.Wrap(err, "prepare product insert")
		}
		defer stmt.Close()

		for _, p := range products {
			if err := p.Validate(); err != nil {
				return err
			}
			if _, err := stmt.ExecContext(ctx, productArgs(p)...); err != nil {
				return errors.Wrapf(err, "insert product %d", p.ID)
			}
		}
		return nil
	})
}

// Insert bitta mahsulotni saqlash
func (r *sqliteProductRepository) Insert(ctx context.Context, product entity.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return r.db.RunInTx(ctx, productWriteTables, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertProductSQL, productArgs(product)...); err != nil {
			return errors.Wrapf(err, "insert product %d", product.ID)
		}
		return nil
	})
}

// Delete mahsulotni ID bo'yicha o'chirish; qator bo'lmasa xato emas
func (r *sqliteProductRepository) Delete(ctx context.Context, product entity.Product) error {
	return r.db.RunInTx(ctx, productWriteTables, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteProductSQL, product.ID); err != nil {
			return errors.Wrapf(err, "delete product %d", product.ID)
		}
		return nil
	})
}

// DeleteAll barcha mahsulotlarni o'chirish
func (r *sqliteProductRepository) DeleteAll(ctx context.Context) error {
	return r.db.RunInTx(ctx, productWriteTables, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, deleteAllProductsSQL)
		if err != nil {
			return errors.Wrap(err, "prepare delete all products")
		}
		defer stmt.Close()

		if _, err := stmt.ExecContext(ctx); err != nil {
			return errors.Wrap(err, "delete all products")
		}
		return nil
	})
}

// GetAllProducts barcha mahsulotlarni jonli kuzatish
func (r *sqliteProductRepository) GetAllProducts(ctx context.Context) (repository.LiveQuery[entity.Product], error) {
	return newLiveQuery(ctx, r.db.tracker, "products.all", []string{TableProducts},
		func(ctx context.Context) ([]entity.Product, error) {
			return queryRows(ctx, r.db.db, scanProduct, selectAllProductsSQL)
		})
}

// GetProductByID ID bo'yicha mahsulotni olish
func (r *sqliteProductRepository) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	return queryOne(ctx, r.db.db, scanProduct, selectProductByIDSQL, id)
}

// GetProductsByCategory kategoriya bo'yicha mahsulotlarni jonli kuzatish
func (r *sqliteProductRepository) GetProductsByCategory(ctx context.Context, categoryID int64) (repository.LiveQuery[entity.Product], error) {
	return newLiveQuery(ctx, r.db.tracker, "products.by_category", []string{TableProducts},
		func(ctx context.Context) ([]entity.Product, error) {
			return queryRows(ctx, r.db.db, scanProduct, selectProductsByCategory, categoryID)
		})
}

func productArgs(p entity.Product) []any {
	return []any{
		p.ID,
		p.Name,
		p.Description,
		p.Price,
		p.ImageURL,
		p.Category,
		p.CategoryID,
		p.Details,
		p.Specifications,
		boolToInt(p.InStock),
	}
}

func scanProduct(row rowScanner) (entity.Product, error) {
	var (
		p       entity.Product
		inStock int64
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.ImageURL,
		&p.Category,
		&p.CategoryID,
		&p.Details,
		&p.Specifications,
		&inStock,
	)
	p.InStock = inStock != 0
	return p, err
}
