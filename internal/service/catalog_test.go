package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/glasscard/storefront-api/internal/dto"
	"github.com/glasscard/storefront-api/internal/model"
	"github.com/glasscard/storefront-api/internal/repository"
)

type mockCategoryRepo struct {
	categories []model.Category
}

func (m *mockCategoryRepo) Create(_ context.Context, cat *model.Category) error {
	cat.ID = primitive.NewObjectID()
	m.categories = append(m.categories, *cat)
	return nil
}

func (m *mockCategoryRepo) CreateMany(_ context.Context, cats []model.Category) error {
	for i := range cats {
		cats[i].ID = primitive.NewObjectID()
	}
	m.categories = append(m.categories, cats...)
	return nil
}

func (m *mockCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	return m.categories, nil
}

type mockProductRepo struct {
	products []model.Product
}

func (m *mockProductRepo) Create(_ context.Context, p *model.Product) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	m.products = append(m.products, *p)
	return nil
}

func (m *mockProductRepo) CreateMany(_ context.Context, products []model.Product) error {
	for i := range products {
		products[i].ID = primitive.NewObjectID()
	}
	m.products = append(m.products, products...)
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*model.Product, error) {
	for i := range m.products {
		if m.products[i].ID.Hex() == id {
			return &m.products[i], nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) List(_ context.Context, f repository.ProductFilter) ([]model.Product, int64, error) {
	var matched []model.Product
	for _, p := range m.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.Query != "" {
			q := strings.ToLower(f.Query)
			if !strings.Contains(strings.ToLower(p.Title), q) &&
				!strings.Contains(strings.ToLower(p.Description), q) {
				continue
			}
		}
		matched = append(matched, p)
	}
	total := int64(len(matched))
	start := (f.Page - 1) * f.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *mockProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func newCatalog() (*CatalogService, *mockCategoryRepo, *mockProductRepo) {
	cats := &mockCategoryRepo{}
	prods := &mockProductRepo{}
	return NewCatalogService(cats, prods), cats, prods
}

func TestCatalogService_CreateProduct_Defaults(t *testing.T) {
	svc, _, prods := newCatalog()

	price := 19.99
	id, err := svc.CreateProduct(context.Background(), dto.CreateProductRequest{
		Title: "Widget", Price: &price, Category: "accessories",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	p := prods.products[0]
	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, 0, p.RatingCount)
	assert.True(t, p.InStock)
	assert.NotNil(t, p.Images)
	assert.NotNil(t, p.Features)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	svc, _, _ := newCatalog()

	_, err := svc.GetProduct(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_Seed(t *testing.T) {
	svc, cats, prods := newCatalog()

	result, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 24, result.Inserted)
	assert.Len(t, cats.categories, 3)
	assert.Len(t, prods.products, 24)
}

func TestCatalogService_Seed_Idempotent(t *testing.T) {
	svc, cats, prods := newCatalog()

	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	result, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Already seeded", result.Message)
	assert.Len(t, cats.categories, 3)
	assert.Len(t, prods.products, 24)
}

func TestCatalogService_ListProducts_Pagination(t *testing.T) {
	svc, _, _ := newCatalog()
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	first, err := svc.ListProducts(context.Background(), dto.ListProductsRequest{
		Category: "cards", Page: 1, Limit: 12,
	})
	require.NoError(t, err)
	assert.Len(t, first.Items, 12)
	assert.Equal(t, int64(24), first.Total)
	assert.Equal(t, int64(2), first.Pages)

	// Every page together covers the full filtered set exactly once.
	seen := 0
	for page := 1; page <= int(first.Pages); page++ {
		resp, err := svc.ListProducts(context.Background(), dto.ListProductsRequest{
			Category: "cards", Page: page, Limit: 12,
		})
		require.NoError(t, err)
		seen += len(resp.Items)
	}
	assert.Equal(t, int(first.Total), seen)
}

func TestCatalogService_ListProducts_PriceRange(t *testing.T) {
	svc, _, _ := newCatalog()
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	min, max := 50.0, 60.0
	resp, err := svc.ListProducts(context.Background(), dto.ListProductsRequest{
		MinPrice: &min, MaxPrice: &max, Page: 1, Limit: 60,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Items)
	for _, p := range resp.Items {
		assert.GreaterOrEqual(t, p.Price, min)
		assert.LessOrEqual(t, p.Price, max)
	}
	// Seeded prices are 50..73, so exactly 11 fall in [50,60].
	assert.Equal(t, int64(11), resp.Total)
}

func TestCatalogService_ListProducts_PartialLastPage(t *testing.T) {
	svc, _, _ := newCatalog()
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	resp, err := svc.ListProducts(context.Background(), dto.ListProductsRequest{
		Page: 3, Limit: 10,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 4)
	assert.Equal(t, int64(3), resp.Pages)
}
