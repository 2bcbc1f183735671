package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildMealFilterEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, buildMealFilter(MealQuery{}))
}

func TestBuildMealFilterSearch(t *testing.T) {
	filter := buildMealFilter(MealQuery{Search: "chicken"})

	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 3)

	regex := primitive.Regex{Pattern: "chicken", Options: "i"}
	assert.Contains(t, or, bson.M{"title": regex})
	assert.Contains(t, or, bson.M{"category": regex})
	assert.Contains(t, or, bson.M{"admin_name": regex})
}

func TestBuildMealFilterCategoryAndPrice(t *testing.T) {
	price := 10.0
	filter := buildMealFilter(MealQuery{Category: "Dinner", MaxPrice: &price})

	assert.Equal(t, "Dinner", filter["category"])
	assert.Equal(t, bson.M{"$lte": 10.0}, filter["price"])
	_, hasOr := filter["$or"]
	assert.False(t, hasOr)
}

func TestBuildMealSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "likes", Value: -1}}, buildMealSort("likes"))
	assert.Equal(t, bson.D{{Key: "reviews_count", Value: -1}}, buildMealSort("reviews_count"))
	assert.Nil(t, buildMealSort(""))
	assert.Nil(t, buildMealSort("price"))
}

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()
	parsed, err := parseID(oid.Hex())
	assert.NoError(t, err)
	assert.Equal(t, oid, parsed)

	_, err = parseID("not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)
}
