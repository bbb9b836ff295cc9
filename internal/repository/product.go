package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glasscard/storefront-api/internal/model"
)

// ProductFilter describes one /products listing query. Zero values mean
// "no constraint" except Page and Limit, which the caller must set.
type ProductFilter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Page     int
	Limit    int
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	CreateMany(ctx context.Context, products []model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, f ProductFilter) ([]model.Product, int64, error)
	Count(ctx context.Context) (int64, error)
}

type mongoProductRepo struct{ store *Store }

func NewProductRepository(store *Store) ProductRepository {
	return &mongoProductRepo{store: store}
}

func (r *mongoProductRepo) Create(ctx context.Context, product *model.Product) error {
	col := r.store.collection("product")
	if col == nil {
		return ErrUnavailable
	}
	product.CreatedAt = time.Now().UTC()
	res, err := col.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoProductRepo) CreateMany(ctx context.Context, products []model.Product) error {
	col := r.store.collection("product")
	if col == nil {
		return ErrUnavailable
	}
	docs := make([]interface{}, len(products))
	for i := range products {
		docs[i] = products[i]
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("create products: %w", err)
	}
	return nil
}

// GetByID resolves the hex identifier. An unparsable id is a plain miss, not
// an error: callers cannot tell a malformed id from an unknown one.
func (r *mongoProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	col := r.store.collection("product")
	if col == nil {
		return nil, ErrUnavailable
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var p model.Product
	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *mongoProductRepo) List(ctx context.Context, f ProductFilter) ([]model.Product, int64, error) {
	col := r.store.collection("product")
	if col == nil {
		return nil, 0, ErrUnavailable
	}

	filter := buildProductFilter(f)
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	opts := options.Find().
		SetSort(parseSort(f.Sort)).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []model.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}
	return products, total, nil
}

func (r *mongoProductRepo) Count(ctx context.Context) (int64, error) {
	col := r.store.collection("product")
	if col == nil {
		return 0, ErrUnavailable
	}
	return col.CountDocuments(ctx, bson.M{})
}

func buildProductFilter(f ProductFilter) bson.M {
	filter := bson.M{}
	if f.Query != "" {
		re := primitive.Regex{Pattern: f.Query, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
		}
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["price"] = price
	}
	return filter
}

var sortableFields = map[string]bool{
	"title":        true,
	"price":        true,
	"rating":       true,
	"rating_count": true,
	"created_at":   true,
}

// parseSort turns a "-field" style sort key into a Mongo sort document.
// Unknown fields fall back to newest-first.
func parseSort(sort string) bson.D {
	direction := 1
	key := sort
	if strings.HasPrefix(sort, "-") {
		direction = -1
		key = sort[1:]
	}
	if !sortableFields[key] {
		return bson.D{{Key: "created_at", Value: -1}}
	}
	return bson.D{{Key: key, Value: direction}}
}
