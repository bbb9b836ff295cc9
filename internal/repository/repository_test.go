package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
)

// testStore is nil unless TEST_MONGO_URL points at a reachable Mongo; tests
// that need it skip themselves via requireStore.
var testStore *Store

func TestMain(m *testing.M) {
	uri := os.Getenv("TEST_MONGO_URL")
	if uri != "" {
		name := os.Getenv("TEST_MONGO_DB")
		if name == "" {
			name = "storefront_test"
		}

		var err error
		testStore, err = Connect(context.Background(), uri, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to connect to test database: %v\n", err)
			os.Exit(1)
		}
		if err := testStore.Ping(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "test database not reachable: %v\n", err)
			os.Exit(1)
		}
	}

	code := m.Run()
	if testStore != nil {
		_ = testStore.Close(context.Background())
	}
	os.Exit(code)
}

func requireStore(t *testing.T) {
	t.Helper()
	if testStore == nil {
		t.Skip("TEST_MONGO_URL not set, skipping integration test")
	}
}

func cleanupCollections(t *testing.T, names ...string) {
	t.Helper()
	requireStore(t)
	for _, name := range names {
		if err := testStore.collection(name).Drop(context.Background()); err != nil {
			t.Fatalf("failed to drop collection %s: %v", name, err)
		}
	}
}
