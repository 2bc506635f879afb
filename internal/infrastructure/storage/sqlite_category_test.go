package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/shop-catalog/internal/domain/entity"
)

func TestCategoryRepository_CRUD(t *testing.T) {
	repo := NewSQLiteCategoryRepository(openTestDB(t))
	ctx := context.Background()

	lq, err := repo.GetAllCategories(ctx)
	require.NoError(t, err)
	defer lq.Close()
	waitFor(t, lq, hasLen[entity.Category](0))

	poles := entity.Category{ID: 3, Name: "Telescopic Poles", Description: "Poles", ImageURL: "https://img/3.jpg"}
	require.NoError(t, repo.InsertAll(ctx, []entity.Category{
		{ID: 1, Name: "Traditional Sets"},
		poles,
	}))
	waitFor(t, lq, hasLen[entity.Category](2))

	got, err := repo.GetCategoryByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, poles, *got)

	renamed := entity.Category{ID: 3, Name: "Poles"}
	require.NoError(t, repo.Insert(ctx, renamed))
	got, err = repo.GetCategoryByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, renamed, *got)

	require.NoError(t, repo.DeleteAll(ctx))
	waitFor(t, lq, hasLen[entity.Category](0))

	got, err = repo.GetCategoryByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}
