package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/shop-catalog/internal/infrastructure/parser"
	"github.com/yourusername/shop-catalog/internal/infrastructure/storage"
	"github.com/yourusername/shop-catalog/internal/usecase"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	db, err := storage.Open(context.Background(), storage.Options{
		Path:    filepath.Join(t.TempDir(), "shop.db"),
		Workers: 2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	products := storage.NewSQLiteProductRepository(db)
	categories := storage.NewSQLiteCategoryRepository(db)
	cart := storage.NewSQLiteCartRepository(db)

	return NewHandler(
		usecase.NewCatalogUseCase(products, categories, parser.NewExcelParser()),
		usecase.NewCartUseCase(cart, products),
	)
}

func execute(ctx context.Context, h *Handler, args ...string) (string, error) {
	var out bytes.Buffer
	root := h.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestCommands_SeedListGet(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	out, err := execute(ctx, h, "list")
	require.NoError(t, err)
	assert.Equal(t, "no products\n", out)

	out, err = execute(ctx, h, "seed")
	require.NoError(t, err)
	assert.Equal(t, "sample catalog inserted\n", out)

	out, err = execute(ctx, h, "seed")
	require.NoError(t, err)
	assert.Equal(t, "catalog is not empty, nothing to do\n", out)

	out, err = execute(ctx, h, "list", "--category", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "#4 Gardiner Ultimate Flocked Brush 35 cm $223.86 [Water-fed Brushes] in stock")
	assert.Contains(t, out, "#5 Unger HydraBrush 35 cm $189.99 [Water-fed Brushes] out of stock")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	out, err = execute(ctx, h, "get", "7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#7 Moerman Bi-Component Telescopic Pole\n"))
	assert.Contains(t, out, "category: Telescopic Poles (3)")
}

func TestCommands_GetErrors(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	_, err := execute(ctx, h, "get", "abc")
	assert.Error(t, err)

	_, err = execute(ctx, h, "get", "42")
	assert.ErrorIs(t, err, usecase.ErrProductNotFound)
}

func TestCommands_SearchDeleteClear(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()
	_, err := execute(ctx, h, "seed")
	require.NoError(t, err)

	out, err := execute(ctx, h, "search", "moerman")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	_, err = execute(ctx, h, "delete", "1")
	require.NoError(t, err)

	out, err = execute(ctx, h, "search", "moerman")
	require.NoError(t, err)
	assert.NotContains(t, out, "#1 ")

	_, err = execute(ctx, h, "clear")
	require.NoError(t, err)

	out, err = execute(ctx, h, "list")
	require.NoError(t, err)
	assert.Equal(t, "no products\n", out)
}

func TestCommands_Cart(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()
	_, err := execute(ctx, h, "seed")
	require.NoError(t, err)

	_, err = execute(ctx, h, "cart", "add", "2")
	require.NoError(t, err)
	out, err := execute(ctx, h, "cart", "add", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "product 2 x2")

	out, err = execute(ctx, h, "cart", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Super Combo Washer & Squeegee x2 = $457.88")
	assert.Contains(t, out, "items: 2, total: $457.88")

	_, err = execute(ctx, h, "cart", "clear")
	require.NoError(t, err)

	out, err = execute(ctx, h, "cart", "show")
	require.NoError(t, err)
	assert.Equal(t, "items: 0, total: $0.00\n", out)
}

func TestCommands_WatchStopsOnCancel(t *testing.T) {
	h := newTestHandler(t)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	out, err := execute(ctx, h, "watch")
	require.NoError(t, err)
	assert.Contains(t, out, "--- 0 products\nno products\n")
}
