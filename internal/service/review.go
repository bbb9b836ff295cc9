package service

import (
	"context"
	"fmt"
	"time"

	"github.com/glasscard/storefront-api/internal/dto"
	"github.com/glasscard/storefront-api/internal/model"
	"github.com/glasscard/storefront-api/internal/repository"
)

type ReviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	items := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, dto.ReviewResponse{
			ID:        r.ID.Hex(),
			ProductID: r.ProductID,
			UserName:  r.UserName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}
	return items, nil
}

// Add stamps the creation time and pins product_id to the path parameter,
// ignoring whatever the body carried.
func (s *ReviewService) Add(ctx context.Context, productID string, req dto.AddReviewRequest) (string, error) {
	review := &model.Review{
		ProductID: productID,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return "", fmt.Errorf("add review: %w", err)
	}
	return review.ID.Hex(), nil
}
