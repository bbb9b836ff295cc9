package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glasscard/storefront-api/internal/model"
)

func TestStore_Unconfigured(t *testing.T) {
	store, err := Connect(context.Background(), "", "ecommerce")
	require.NoError(t, err)
	ctx := context.Background()

	assert.False(t, store.Available())
	assert.ErrorIs(t, store.Ping(ctx), ErrUnavailable)
	assert.NoError(t, store.Close(ctx))

	_, err = store.CollectionNames(ctx, 10)
	assert.ErrorIs(t, err, ErrUnavailable)

	// Every repository reports the missing store instead of panicking.
	assert.ErrorIs(t, NewUserRepository(store).Create(ctx, &model.User{}), ErrUnavailable)
	_, _, err = NewProductRepository(store).List(ctx, ProductFilter{Page: 1, Limit: 12})
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = NewCategoryRepository(store).List(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = NewReviewRepository(store).ListByProduct(ctx, "p")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = NewCartRepository(store).ListByClient(ctx, "c")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = NewOrderRepository(store).List(ctx, "")
	assert.ErrorIs(t, err, ErrUnavailable)
}
