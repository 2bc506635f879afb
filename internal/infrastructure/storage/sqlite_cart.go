package storage

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
	"github.com/yourusername/shop-catalog/internal/domain/repository"
)

const (
	insertCartItemSQL          = `INSERT INTO cart_items (productId, quantity) VALUES (?, ?)`
	replaceCartItemSQL         = `INSERT OR REPLACE INTO cart_items (id, productId, quantity) VALUES (?, ?, ?)`
	deleteCartItemSQL          = `DELETE FROM cart_items WHERE id = ?`
	clearCartSQL               = `DELETE FROM cart_items`
	selectAllCartItemsSQL      = `SELECT id, productId, quantity FROM cart_items`
	selectCartItemByProductSQL = `SELECT id, productId, quantity FROM cart_items WHERE productId = ? LIMIT 1`
)

var cartWriteTables = []string{TableCartItems}

type sqliteCartRepository struct {
	db *Database
}

// NewSQLiteCartRepository SQLite asosidagi savat repository
func NewSQLiteCartRepository(db *Database) repository.CartRepository {
	return &sqliteCartRepository{db: db}
}

// GetAllCartItems savatni jonli kuzatish
func (r *sqliteCartRepository) GetAllCartItems(ctx context.Context) (repository.LiveQuery[entity.CartItem], error) {
	return newLiveQuery(ctx, r.db.tracker, "cart_items.all", []string{TableCartItems},
		func(ctx context.Context) ([]entity.CartItem, error) {
			return queryRows(ctx, r.db.db, scanCartItem, selectAllCartItemsSQL)
		})
}

// GetCartItemByProductID mahsulot bo'yicha savat elementini olish
func (r *sqliteCartRepository) GetCartItemByProductID(ctx context.Context, productID int64) (*entity.CartItem, error) {
	return queryOne(ctx, r.db.db, scanCartItem, selectCartItemByProductSQL, productID)
}

// InsertCartItem elementni saqlash. ID = 0 bo'lsa yangi ID yaratiladi.
func (r *sqliteCartRepository) InsertCartItem(ctx context.Context, item entity.CartItem) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}

	id := item.ID
	err := r.db.RunInTx(ctx, cartWriteTables, func(tx *sql.Tx) error {
		if item.ID != 0 {
			_, err := tx.ExecContext(ctx, replaceCartItemSQL, item.ID, item.ProductID, item.Quantity)
			return errors.Wrapf(err, "replace cart item %d", item.ID)
		}

		res, err := tx.ExecContext(ctx, insertCartItemSQL, item.ProductID, item.Quantity)
		if err != nil {
			return errors.Wrapf(err, "insert cart item for product %d", item.ProductID)
		}
		id, err = res.LastInsertId()
		return errors.Wrap(err, "cart item id")
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteCartItem elementni o'chirish
func (r *sqliteCartRepository) DeleteCartItem(ctx context.Context, item entity.CartItem) error {
	return r.db.RunInTx(ctx, cartWriteTables, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, deleteCartItemSQL, item.ID)
		return errors.Wrapf(err, "delete cart item %d", item.ID)
	})
}

// ClearCart savatni tozalash
func (r *sqliteCartRepository) ClearCart(ctx context.Context) error {
	return r.db.RunInTx(ctx, cartWriteTables, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, clearCartSQL)
		return errors.Wrap(err, "clear cart")
	})
}

func scanCartItem(row rowScanner) (entity.CartItem, error) {
	var c entity.CartItem
	err := row.Scan(&c.ID, &c.ProductID, &c.Quantity)
	return c, err
}
