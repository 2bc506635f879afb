package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
	"github.com/yourusername/shop-catalog/internal/domain/repository"
)

const updateTimeout = 3 * time.Second

func openTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := Open(context.Background(), Options{
		Path:    filepath.Join(t.TempDir(), "shop.db"),
		Workers: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testProduct(id, categoryID int64, name string) entity.Product {
	return entity.Product{
		ID:             id,
		Name:           name,
		Description:    name + " description",
		Price:          float64(id) * 10.5,
		ImageURL:       "https://example.com/" + name + ".jpg",
		Category:       "category",
		CategoryID:     categoryID,
		Details:        "details of " + name,
		Specifications: "• spec one\n• spec two",
		InStock:        id%2 == 0,
	}
}

// waitFor ok true qaytargan birinchi natijani kutadi
func waitFor[T any](t *testing.T, lq repository.LiveQuery[T], ok func([]T) bool) []T {
	t.Helper()

	deadline := time.After(updateTimeout)
	for {
		select {
		case rows, open := <-lq.Updates():
			require.True(t, open, "live query closed: %v", lq.Err())
			if ok(rows) {
				return rows
			}
		case <-deadline:
			t.Fatal("timed out waiting for live query update")
			return nil
		}
	}
}

func hasLen[T any](n int) func([]T) bool {
	return func(rows []T) bool { return len(rows) == n }
}
