package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/glasscard/storefront-api/internal/model"
)

type CartRepository interface {
	Add(ctx context.Context, item *model.CartItem) error
	ListByClient(ctx context.Context, clientID string) ([]model.CartItem, error)
	UpdateQty(ctx context.Context, itemID string, qty int) error
	Remove(ctx context.Context, itemID string) error
}

type mongoCartRepo struct{ store *Store }

func NewCartRepository(store *Store) CartRepository {
	return &mongoCartRepo{store: store}
}

func (r *mongoCartRepo) Add(ctx context.Context, item *model.CartItem) error {
	col := r.store.collection("cartitem")
	if col == nil {
		return ErrUnavailable
	}
	res, err := col.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoCartRepo) ListByClient(ctx context.Context, clientID string) ([]model.CartItem, error) {
	col := r.store.collection("cartitem")
	if col == nil {
		return nil, ErrUnavailable
	}
	cur, err := col.Find(ctx, bson.M{"client_id": clientID})
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer cur.Close(ctx)

	var items []model.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return items, nil
}

// UpdateQty returns mongo.ErrNoDocuments when the item id does not match any
// row, so the service can distinguish a missing item from a store failure.
func (r *mongoCartRepo) UpdateQty(ctx context.Context, itemID string, qty int) error {
	col := r.store.collection("cartitem")
	if col == nil {
		return ErrUnavailable
	}
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"qty": qty, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Remove deletes unconditionally; removing an unknown id is a no-op.
func (r *mongoCartRepo) Remove(ctx context.Context, itemID string) error {
	col := r.store.collection("cartitem")
	if col == nil {
		return ErrUnavailable
	}
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil
	}
	if _, err := col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}
