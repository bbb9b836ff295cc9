package service

import (
	"context"
	"fmt"
	"time"

	"github.com/glasscard/storefront-api/internal/model"
)

// SeedResult reports what /seed did.
type SeedResult struct {
	OK       bool   `json:"ok"`
	Message  string `json:"message,omitempty"`
	Inserted int    `json:"inserted,omitempty"`
}

// Seed populates demo data. It is idempotent through the existence check
// only: no transaction guards the two bulk inserts.
func (s *CatalogService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return &SeedResult{OK: true, Message: "Already seeded"}, nil
	}

	categories := []model.Category{
		{Name: "Cards", Slug: "cards", Icon: "CreditCard", Description: "Payment cards and fintech"},
		{Name: "Accessories", Slug: "accessories", Icon: "Star", Description: "Premium accessories"},
		{Name: "Software", Slug: "software", Icon: "Settings", Description: "Apps and tools"},
	}
	if err := s.categoryRepo.CreateMany(ctx, categories); err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}

	now := time.Now().UTC()
	products := make([]model.Product, 0, 24)
	for i := 1; i <= 24; i++ {
		products = append(products, model.Product{
			Title:       fmt.Sprintf("Premium Card %d", i),
			Description: "Elegant glassmorphic fintech card with premium perks.",
			Price:       49.0 + float64(i),
			Category:    "cards",
			Images: []string{
				"https://images.unsplash.com/photo-1633265486064-086b219478d0?q=80&w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1563013544-824ae1b704d3?q=80&w=1200&auto=format&fit=crop",
			},
			Rating:      defaultRating,
			RatingCount: 120 + i,
			InStock:     true,
			Features:    []string{"Metal body", "Cashback", "Priority support"},
			// Staggered so the default newest-first sort is stable.
			CreatedAt: now.Add(time.Duration(i-24) * time.Minute),
		})
	}
	if err := s.productRepo.CreateMany(ctx, products); err != nil {
		return nil, fmt.Errorf("seed products: %w", err)
	}
	return &SeedResult{OK: true, Inserted: len(products)}, nil
}
