package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/glasscard/storefront-api/internal/dto"
	"github.com/glasscard/storefront-api/internal/model"
	"github.com/glasscard/storefront-api/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

const defaultRating = 4.5

// CatalogService owns categories, products, and demo seeding.
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{categoryRepo: categoryRepo, productRepo: productRepo}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	items := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		items = append(items, dto.CategoryResponse{
			ID:          c.ID.Hex(),
			Name:        c.Name,
			Slug:        c.Slug,
			Icon:        c.Icon,
			Description: c.Description,
		})
	}
	return items, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (string, error) {
	cat := &model.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Icon:        req.Icon,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, cat); err != nil {
		return "", fmt.Errorf("create category: %w", err)
	}
	return cat.ID.Hex(), nil
}

func (s *CatalogService) ListProducts(ctx context.Context, req dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	products, total, err := s.productRepo.List(ctx, repository.ProductFilter{
		Query:    req.Query,
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Sort:     req.Sort,
		Page:     req.Page,
		Limit:    req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, toProductResponse(&products[i]))
	}
	limit := int64(req.Limit)
	return &dto.ProductListResponse{
		Items: items,
		Total: total,
		Page:  req.Page,
		Pages: (total + limit - 1) / limit,
	}, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (string, error) {
	product := &model.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Images:      req.Images,
		Rating:      defaultRating,
		InStock:     true,
		Features:    req.Features,
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.RatingCount != nil {
		product.RatingCount = *req.RatingCount
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if product.Features == nil {
		product.Features = []string{}
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	return product.ID.Hex(), nil
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Images:      p.Images,
		Rating:      p.Rating,
		RatingCount: p.RatingCount,
		InStock:     p.InStock,
		Features:    p.Features,
		CreatedAt:   p.CreatedAt,
	}
}
