package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hosteleats/backend/internal/models"
)

// Requests is the MongoDB-backed RequestStore.
type Requests struct {
	col *mongo.Collection
}

func NewRequests(db *mongo.Database) *Requests {
	return &Requests{col: db.Collection(RequestsCollection)}
}

func (s *Requests) Insert(ctx context.Context, req models.MealRequest) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, req)
}

func (s *Requests) ListByEmail(ctx context.Context, email string) ([]models.MealRequest, error) {
	return s.list(ctx, bson.M{"email": email})
}

// Search matches name or email case-insensitively; an empty search
// returns everything.
func (s *Requests) Search(ctx context.Context, search string) ([]models.MealRequest, error) {
	filter := bson.M{}
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"email": regex},
		}
	}
	return s.list(ctx, filter)
}

func (s *Requests) list(ctx context.Context, filter bson.M) ([]models.MealRequest, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	requests := []models.MealRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *Requests) SetStatus(ctx context.Context, id, status string) (*mongo.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
}

func (s *Requests) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.M{"_id": oid})
}
