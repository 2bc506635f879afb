package storage

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// Jadval nomlari
const (
	TableProducts   = "products"
	TableCategories = "categories"
	TableCartItems  = "cart_items"
)

// Tables kuzatiladigan barcha jadvallar
var Tables = []string{TableProducts, TableCategories, TableCartItems}

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id INTEGER NOT NULL PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	price REAL NOT NULL,
	imageUrl TEXT NOT NULL,
	category TEXT NOT NULL,
	categoryId INTEGER NOT NULL,
	details TEXT NOT NULL,
	specifications TEXT NOT NULL,
	inStock INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products (categoryId);

CREATE TABLE IF NOT EXISTS categories (
	id INTEGER NOT NULL PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	imageUrl TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cart_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	productId INTEGER NOT NULL REFERENCES products (id) ON DELETE CASCADE,
	quantity INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cart_items_product ON cart_items (productId);
`

func createSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "schema yaratib bo'lmadi")
	}
	return nil
}
