package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hosteleats/backend/internal/models"
)

// Meals is the MongoDB-backed MealStore.
type Meals struct {
	col *mongo.Collection
}

func NewMeals(db *mongo.Database) *Meals {
	return &Meals{col: db.Collection(MealsCollection)}
}

func (s *Meals) Insert(ctx context.Context, meal models.Meal) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, meal)
}

// Search runs the dynamic meal query: substring search across
// title/category/admin_name, exact category, price ceiling, and an
// optional descending sort on likes or reviews_count.
func (s *Meals) Search(ctx context.Context, q MealQuery) ([]models.Meal, error) {
	opts := options.Find()
	if sort := buildMealSort(q.Sort); sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := s.col.Find(ctx, buildMealFilter(q), opts)
	if err != nil {
		return nil, err
	}
	meals := []models.Meal{}
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (s *Meals) ListByAdmin(ctx context.Context, adminEmail string) ([]models.Meal, error) {
	cursor, err := s.col.Find(ctx, bson.M{"admin_email": adminEmail})
	if err != nil {
		return nil, err
	}
	meals := []models.Meal{}
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (s *Meals) Get(ctx context.Context, id string) (*models.Meal, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var meal models.Meal
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&meal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// Patch applies a single atomic $set carrying only the provided fields.
// Callers decide which fields are present; omitted fields keep their
// stored values.
func (s *Meals) Patch(ctx context.Context, id string, fields map[string]interface{}) (*mongo.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
}

func (s *Meals) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.M{"_id": oid})
}

// buildMealFilter translates a MealQuery into a MongoDB filter document.
func buildMealFilter(q MealQuery) bson.M {
	filter := bson.M{}
	if q.Search != "" {
		regex := primitive.Regex{Pattern: q.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"category": regex},
			bson.M{"admin_name": regex},
		}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.MaxPrice != nil {
		filter["price"] = bson.M{"$lte": *q.MaxPrice}
	}
	return filter
}

// buildMealSort returns the sort document for a sort key, or nil for
// store-default ordering.
func buildMealSort(sort string) bson.D {
	switch sort {
	case "likes":
		return bson.D{{Key: "likes", Value: -1}}
	case "reviews_count":
		return bson.D{{Key: "reviews_count", Value: -1}}
	default:
		return nil
	}
}
