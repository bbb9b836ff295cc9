package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/glasscard/storefront-api/internal/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, cat *model.Category) error
	CreateMany(ctx context.Context, cats []model.Category) error
	List(ctx context.Context) ([]model.Category, error)
}

type mongoCategoryRepo struct{ store *Store }

func NewCategoryRepository(store *Store) CategoryRepository {
	return &mongoCategoryRepo{store: store}
}

func (r *mongoCategoryRepo) Create(ctx context.Context, cat *model.Category) error {
	col := r.store.collection("category")
	if col == nil {
		return ErrUnavailable
	}
	res, err := col.InsertOne(ctx, cat)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	cat.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoCategoryRepo) CreateMany(ctx context.Context, cats []model.Category) error {
	col := r.store.collection("category")
	if col == nil {
		return ErrUnavailable
	}
	docs := make([]interface{}, len(cats))
	for i := range cats {
		docs[i] = cats[i]
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("create categories: %w", err)
	}
	return nil
}

func (r *mongoCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	col := r.store.collection("category")
	if col == nil {
		return nil, ErrUnavailable
	}
	cur, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)

	var cats []model.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return cats, nil
}
