package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hosteleats/backend/internal/models"
)

// Users is the MongoDB-backed UserStore.
type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection(UsersCollection)}
}

// GetByEmail returns the user with the given email, or (nil, nil) if no
// such user exists. Missing users are a normal outcome here: the admin
// gate treats them as non-admin and registration treats them as new.
func (s *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) ListByEmail(ctx context.Context, email string) ([]models.User, error) {
	return s.list(ctx, bson.M{"email": email})
}

func (s *Users) ListAll(ctx context.Context) ([]models.User, error) {
	return s.list(ctx, bson.M{})
}

func (s *Users) list(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Users) Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, user)
}

func (s *Users) PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": models.RoleAdmin}})
}

// SetBadge overwrites the badge of the user identified by email.
// Last write wins; there is no downgrade protection.
func (s *Users) SetBadge(ctx context.Context, email string, badge models.Badge) (*mongo.UpdateResult, error) {
	return s.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"badge": badge}})
}

func (s *Users) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.M{"_id": oid})
}
