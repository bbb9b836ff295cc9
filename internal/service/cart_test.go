package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/glasscard/storefront-api/internal/dto"
	"github.com/glasscard/storefront-api/internal/model"
)

type mockCartRepo struct {
	items map[string]*model.CartItem
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{items: make(map[string]*model.CartItem)}
}

func (m *mockCartRepo) Add(_ context.Context, item *model.CartItem) error {
	item.ID = primitive.NewObjectID()
	m.items[item.ID.Hex()] = item
	return nil
}

func (m *mockCartRepo) ListByClient(_ context.Context, clientID string) ([]model.CartItem, error) {
	var out []model.CartItem
	for _, item := range m.items {
		if item.ClientID == clientID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *mockCartRepo) UpdateQty(_ context.Context, itemID string, qty int) error {
	item, ok := m.items[itemID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	item.Qty = qty
	item.UpdatedAt = time.Now()
	return nil
}

func (m *mockCartRepo) Remove(_ context.Context, itemID string) error {
	delete(m.items, itemID)
	return nil
}

func TestCartService_AddItem_DefaultQty(t *testing.T) {
	carts := newMockCartRepo()
	svc := NewCartService(carts, &mockProductRepo{})

	id, err := svc.AddItem(context.Background(), dto.AddCartItemRequest{
		ClientID: "client-1", ProductID: "whatever",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, carts.items[id].Qty)
}

func TestCartService_GetCart_ResolvesProducts(t *testing.T) {
	carts := newMockCartRepo()
	prods := &mockProductRepo{}
	svc := NewCartService(carts, prods)

	price := 59.0
	catalog := NewCatalogService(&mockCategoryRepo{}, prods)
	productID, err := catalog.CreateProduct(context.Background(), dto.CreateProductRequest{
		Title: "Premium Card", Price: &price, Category: "cards",
	})
	require.NoError(t, err)

	_, err = svc.AddItem(context.Background(), dto.AddCartItemRequest{
		ClientID: "client-1", ProductID: productID, Qty: 2,
	})
	require.NoError(t, err)

	rows, err := svc.GetCart(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Product)
	assert.Equal(t, "Premium Card", rows[0].Product.Title)
	assert.Equal(t, 2, rows[0].Qty)
}

func TestCartService_GetCart_NullProductOnMiss(t *testing.T) {
	carts := newMockCartRepo()
	svc := NewCartService(carts, &mockProductRepo{})

	// Unparsable and nonexistent product ids both degrade to a null product.
	for _, productID := range []string{"not-a-hex-id", primitive.NewObjectID().Hex()} {
		_, err := svc.AddItem(context.Background(), dto.AddCartItemRequest{
			ClientID: "client-2", ProductID: productID,
		})
		require.NoError(t, err)
	}

	rows, err := svc.GetCart(context.Background(), "client-2")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Nil(t, row.Product)
	}
}

func TestCartService_AddItem_NoDedupe(t *testing.T) {
	carts := newMockCartRepo()
	svc := NewCartService(carts, &mockProductRepo{})

	for i := 0; i < 2; i++ {
		_, err := svc.AddItem(context.Background(), dto.AddCartItemRequest{
			ClientID: "client-3", ProductID: "same-product",
		})
		require.NoError(t, err)
	}

	rows, err := svc.GetCart(context.Background(), "client-3")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCartService_UpdateItem_NotFound(t *testing.T) {
	svc := NewCartService(newMockCartRepo(), &mockProductRepo{})

	err := svc.UpdateItem(context.Background(), primitive.NewObjectID().Hex(), 3)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_RemoveItem_Idempotent(t *testing.T) {
	svc := NewCartService(newMockCartRepo(), &mockProductRepo{})

	err := svc.RemoveItem(context.Background(), primitive.NewObjectID().Hex())
	assert.NoError(t, err)
}
