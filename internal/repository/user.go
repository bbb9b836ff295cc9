package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/glasscard/storefront-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type mongoUserRepo struct{ store *Store }

func NewUserRepository(store *Store) UserRepository {
	return &mongoUserRepo{store: store}
}

func (r *mongoUserRepo) Create(ctx context.Context, user *model.User) error {
	col := r.store.collection("user")
	if col == nil {
		return ErrUnavailable
	}
	user.CreatedAt = time.Now().UTC()
	res, err := col.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	col := r.store.collection("user")
	if col == nil {
		return nil, ErrUnavailable
	}
	var user model.User
	err := col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}
