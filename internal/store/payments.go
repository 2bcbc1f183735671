package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hosteleats/backend/internal/models"
)

// Payments is the MongoDB-backed PaymentStore. Payment records are
// insert-only; there is no update or delete path.
type Payments struct {
	col *mongo.Collection
}

func NewPayments(db *mongo.Database) *Payments {
	return &Payments{col: db.Collection(PaymentsCollection)}
}

func (s *Payments) Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, payment)
}

func (s *Payments) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return s.list(ctx, bson.M{"email": email})
}

func (s *Payments) ListAll(ctx context.Context) ([]models.Payment, error) {
	return s.list(ctx, bson.M{})
}

func (s *Payments) list(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
