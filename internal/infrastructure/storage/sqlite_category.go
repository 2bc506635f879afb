package storage

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
	"github.com/yourusername/shop-catalog/internal/domain/repository"
)

const (
	categoryColumns = `id, name, description, imageUrl`

	insertCategorySQL      = `INSERT OR REPLACE INTO categories (` + categoryColumns + `) VALUES (?, ?, ?, ?)`
	deleteAllCategoriesSQL = `DELETE FROM categories`
	selectAllCategoriesSQL = `SELECT ` + categoryColumns + ` FROM categories`
	selectCategoryByIDSQL  = `SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`
)

var categoryWriteTables = []string{TableCategories}

type sqliteCategoryRepository struct {
	db *Database
}

// NewSQLiteCategoryRepository SQLite asosidagi category repository
func NewSQLiteCategoryRepository(db *Database) repository.CategoryRepository {
	return &sqliteCategoryRepository{db: db}
}

func (r *sqliteCategoryRepository) GetAllCategories(ctx context.Context) (repository.LiveQuery[entity.Category], error) {
	return newLiveQuery(ctx, r.db.tracker, "categories.all", []string{TableCategories},
		func(ctx context.Context) ([]entity.Category, error) {
			return queryRows(ctx, r.db.db, scanCategory, selectAllCategoriesSQL)
		})
}

func (r *sqliteCategoryRepository) GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	return queryOne(ctx, r.db.db, scanCategory, selectCategoryByIDSQL, id)
}

func (r *sqliteCategoryRepository) Insert(ctx context.Context, category entity.Category) error {
	return r.InsertAll(ctx, []entity.Category{category})
}

func (r *sqliteCategoryRepository) InsertAll(ctx context.Context, categories []entity.Category) error {
	return r.db.RunInTx(ctx, categoryWriteTables, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertCategorySQL)
		if err != nil {
			return errors.Wrap(err, "prepare category insert")
		}
		defer stmt.Close()

		for _, c := range categories {
			if _, err := stmt.ExecContext(ctx, c.ID, c.Name, c.Description, c.ImageURL); err != nil {
				return errors.Wrapf(err, "insert category %d", c.ID)
			}
		}
		return nil
	})
}

func (r *sqliteCategoryRepository) DeleteAll(ctx context.Context) error {
	return r.db.RunInTx(ctx, categoryWriteTables, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, deleteAllCategoriesSQL)
		return errors.Wrap(err, "delete all categories")
	})
}

func scanCategory(row rowScanner) (entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL)
	return c, err
}
