package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glasscard/storefront-api/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	List(ctx context.Context, clientID string) ([]model.Order, error)
}

type mongoOrderRepo struct{ store *Store }

func NewOrderRepository(store *Store) OrderRepository {
	return &mongoOrderRepo{store: store}
}

func (r *mongoOrderRepo) Create(ctx context.Context, order *model.Order) error {
	col := r.store.collection("order")
	if col == nil {
		return ErrUnavailable
	}
	res, err := col.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns orders newest first, optionally scoped to one client.
func (r *mongoOrderRepo) List(ctx context.Context, clientID string) ([]model.Order, error) {
	col := r.store.collection("order")
	if col == nil {
		return nil, ErrUnavailable
	}
	filter := bson.M{}
	if clientID != "" {
		filter["client_id"] = clientID
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []model.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}
