package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUnavailable is returned by every repository when the process was started
// without a configured document store.
var ErrUnavailable = errors.New("document store unavailable")

// Store wraps the shared Mongo connection. A Store with a nil database is
// valid: it reports every operation as unavailable instead of panicking, which
// mirrors the boot-time "fail open" lifecycle of the service.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the document store. An empty URI yields a disconnected Store
// rather than an error.
func Connect(ctx context.Context, uri, name string) (*Store, error) {
	if uri == "" {
		return &Store{}, nil
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	return &Store{client: client, db: client.Database(name)}, nil
}

func (s *Store) Available() bool { return s.db != nil }

func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrUnavailable
	}
	return s.client.Ping(ctx, nil)
}

// CollectionNames lists up to limit collection names, for the /test report.
func (s *Store) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Store) collection(name string) *mongo.Collection {
	if s.db == nil {
		return nil
	}
	return s.db.Collection(name)
}
