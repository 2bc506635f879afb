package storage

import (
	"context"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
	"github.com/yourusername/shop-catalog/internal/domain/repository"
)

func TestCartRepository_InsertAndReplace(t *testing.T) {
	db := openTestDB(t)
	products := NewSQLiteProductRepository(db)
	cart := NewSQLiteCartRepository(db)
	ctx := context.Background()

	require.NoError(t, products.Insert(ctx, testProduct(1, 1, "a")))

	id, err := cart.InsertCartItem(ctx, entity.CartItem{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = cart.InsertCartItem(ctx, entity.CartItem{ID: id, ProductID: 1, Quantity: 4})
	require.NoError(t, err)

	item, err := cart.GetCartItemByProductID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, entity.CartItem{ID: id, ProductID: 1, Quantity: 4}, *item)

	missing, err := cart.GetCartItemByProductID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCartRepository_RejectsUnknownProduct(t *testing.T) {
	cart := NewSQLiteCartRepository(openTestDB(t))

	_, err := cart.InsertCartItem(context.Background(), entity.CartItem{ProductID: 42, Quantity: 1})
	require.Error(t, err)

	var sqliteErr sqlite3.Error
	require.True(t, errors.As(err, &sqliteErr))
	assert.Equal(t, sqlite3.ErrConstraint, sqliteErr.Code)
}

func TestCartRepository_RejectsInvalidItem(t *testing.T) {
	cart := NewSQLiteCartRepository(openTestDB(t))

	_, err := cart.InsertCartItem(context.Background(), entity.CartItem{ProductID: 1, Quantity: 0})
	assert.ErrorIs(t, err, entity.ErrInvalidCartItem)
}

func TestCartRepository_ProductDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	products := NewSQLiteProductRepository(db)
	cart := NewSQLiteCartRepository(db)
	ctx := context.Background()

	require.NoError(t, products.InsertAll(ctx, []entity.Product{testProduct(1, 1, "a"), testProduct(2, 1, "b")}))
	_, err := cart.InsertCartItem(ctx, entity.CartItem{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	_, err = cart.InsertCartItem(ctx, entity.CartItem{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	lq, err := cart.GetAllCartItems(ctx)
	require.NoError(t, err)
	defer lq.Close()
	waitFor(t, lq, hasLen[entity.CartItem](2))

	require.NoError(t, products.Delete(ctx, entity.Product{ID: 1}))
	rows := waitFor(t, lq, hasLen[entity.CartItem](1))
	assert.Equal(t, int64(2), rows[0].ProductID)
}

func TestCartRepository_DeleteAndClear(t *testing.T) {
	db := openTestDB(t)
	products := NewSQLiteProductRepository(db)
	cart := NewSQLiteCartRepository(db)
	ctx := context.Background()

	require.NoError(t, products.InsertAll(ctx, []entity.Product{testProduct(1, 1, "a"), testProduct(2, 1, "b")}))
	first, err := cart.InsertCartItem(ctx, entity.CartItem{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = cart.InsertCartItem(ctx, entity.CartItem{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, cart.DeleteCartItem(ctx, entity.CartItem{ID: first}))

	lq, err := cart.GetAllCartItems(ctx)
	require.NoError(t, err)
	items, err := repository.First(ctx, lq)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)

	require.NoError(t, cart.ClearCart(ctx))
	lq, err = cart.GetAllCartItems(ctx)
	require.NoError(t, err)
	items, err = repository.First(ctx, lq)
	require.NoError(t, err)
	assert.Empty(t, items)
}
