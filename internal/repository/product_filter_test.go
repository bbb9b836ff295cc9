package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProductFilter_Empty(t *testing.T) {
	filter := buildProductFilter(ProductFilter{})
	assert.Empty(t, filter)
}

func TestBuildProductFilter_Query(t *testing.T) {
	filter := buildProductFilter(ProductFilter{Query: "card"})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	title := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, "card", title.Pattern)
	assert.Equal(t, "i", title.Options)

	desc := or[1].(bson.M)["description"].(primitive.Regex)
	assert.Equal(t, "card", desc.Pattern)
}

func TestBuildProductFilter_Category(t *testing.T) {
	filter := buildProductFilter(ProductFilter{Category: "cards"})
	assert.Equal(t, "cards", filter["category"])
	_, hasPrice := filter["price"]
	assert.False(t, hasPrice)
}

func TestBuildProductFilter_PriceRange(t *testing.T) {
	min, max := 50.0, 60.0

	both := buildProductFilter(ProductFilter{MinPrice: &min, MaxPrice: &max})
	assert.Equal(t, bson.M{"$gte": 50.0, "$lte": 60.0}, both["price"])

	lower := buildProductFilter(ProductFilter{MinPrice: &min})
	assert.Equal(t, bson.M{"$gte": 50.0}, lower["price"])

	upper := buildProductFilter(ProductFilter{MaxPrice: &max})
	assert.Equal(t, bson.M{"$lte": 60.0}, upper["price"])
}

func TestBuildProductFilter_Combined(t *testing.T) {
	min := 10.0
	filter := buildProductFilter(ProductFilter{Query: "premium", Category: "cards", MinPrice: &min})

	assert.Len(t, filter, 3)
	assert.Equal(t, "cards", filter["category"])
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in  string
		key string
		dir int
	}{
		{"price", "price", 1},
		{"-price", "price", -1},
		{"-created_at", "created_at", -1},
		{"title", "title", 1},
		{"", "created_at", -1},
		{"bogus", "created_at", -1},
		{"-bogus", "created_at", -1},
	}
	for _, tt := range tests {
		sort := parseSort(tt.in)
		require.Len(t, sort, 1, "sort %q", tt.in)
		assert.Equal(t, tt.key, sort[0].Key, "sort %q", tt.in)
		assert.Equal(t, tt.dir, sort[0].Value, "sort %q", tt.in)
	}
}
