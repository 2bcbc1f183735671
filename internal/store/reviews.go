package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hosteleats/backend/internal/models"
)

// Reviews is the MongoDB-backed ReviewStore.
type Reviews struct {
	col *mongo.Collection
}

func NewReviews(db *mongo.Database) *Reviews {
	return &Reviews{col: db.Collection(ReviewsCollection)}
}

func (s *Reviews) Insert(ctx context.Context, review models.Review) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, review)
}

func (s *Reviews) ListByEmail(ctx context.Context, email string) ([]models.Review, error) {
	cursor, err := s.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Reviews) SetText(ctx context.Context, id, review string) (*mongo.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"review": review}})
}

func (s *Reviews) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.M{"_id": oid})
}
