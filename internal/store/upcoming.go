package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hosteleats/backend/internal/models"
)

// UpcomingMeals is the MongoDB-backed UpcomingMealStore.
type UpcomingMeals struct {
	col *mongo.Collection
}

func NewUpcomingMeals(db *mongo.Database) *UpcomingMeals {
	return &UpcomingMeals{col: db.Collection(UpcomingMealsCollection)}
}

func (s *UpcomingMeals) Insert(ctx context.Context, meal models.UpcomingMeal) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, meal)
}

func (s *UpcomingMeals) ListAll(ctx context.Context) ([]models.UpcomingMeal, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	meals := []models.UpcomingMeal{}
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// Patch applies a single atomic $set of the provided fields. The
// handler always includes likedBy (wholesale replacement), so a stale
// client can erase concurrent likes; that matches the product behavior.
func (s *UpcomingMeals) Patch(ctx context.Context, id string, fields map[string]interface{}) (*mongo.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
}

func (s *UpcomingMeals) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.M{"_id": oid})
}
