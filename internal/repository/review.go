package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/glasscard/storefront-api/internal/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByProduct(ctx context.Context, productID string) ([]model.Review, error)
}

type mongoReviewRepo struct{ store *Store }

func NewReviewRepository(store *Store) ReviewRepository {
	return &mongoReviewRepo{store: store}
}

func (r *mongoReviewRepo) Create(ctx context.Context, review *model.Review) error {
	col := r.store.collection("review")
	if col == nil {
		return ErrUnavailable
	}
	res, err := col.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListByProduct matches on the stored product_id string; whether that product
// exists is not this layer's concern.
func (r *mongoReviewRepo) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	col := r.store.collection("review")
	if col == nil {
		return nil, ErrUnavailable
	}
	cur, err := col.Find(ctx, bson.M{"product_id": productID})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	var reviews []model.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}
