package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hosteleats/backend/internal/models"
)

// Collection names in the hostel database.
const (
	UsersCollection         = "users"
	MealsCollection         = "meals"
	UpcomingMealsCollection = "upcomingMeals"
	RequestsCollection      = "requests"
	ReviewsCollection       = "reviews"
	PaymentsCollection      = "payments"
)

// ErrInvalidID is returned when a path parameter is not a valid
// ObjectID hex string.
var ErrInvalidID = errors.New("invalid id")

// UserStore provides access to the users collection.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListByEmail(ctx context.Context, email string) ([]models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error)
	SetBadge(ctx context.Context, email string, badge models.Badge) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// MealQuery carries the dynamic filter/sort parameters of a meal search.
type MealQuery struct {
	Search   string
	Category string
	MaxPrice *float64
	Sort     string
}

// MealStore provides access to the meals collection.
type MealStore interface {
	Insert(ctx context.Context, meal models.Meal) (*mongo.InsertOneResult, error)
	Search(ctx context.Context, q MealQuery) ([]models.Meal, error)
	ListByAdmin(ctx context.Context, adminEmail string) ([]models.Meal, error)
	Get(ctx context.Context, id string) (*models.Meal, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// UpcomingMealStore provides access to the upcomingMeals collection.
type UpcomingMealStore interface {
	Insert(ctx context.Context, meal models.UpcomingMeal) (*mongo.InsertOneResult, error)
	ListAll(ctx context.Context) ([]models.UpcomingMeal, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// RequestStore provides access to the requests collection.
type RequestStore interface {
	Insert(ctx context.Context, req models.MealRequest) (*mongo.InsertOneResult, error)
	ListByEmail(ctx context.Context, email string) ([]models.MealRequest, error)
	Search(ctx context.Context, search string) ([]models.MealRequest, error)
	SetStatus(ctx context.Context, id, status string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// ReviewStore provides access to the reviews collection.
type ReviewStore interface {
	Insert(ctx context.Context, review models.Review) (*mongo.InsertOneResult, error)
	ListByEmail(ctx context.Context, email string) ([]models.Review, error)
	SetText(ctx context.Context, id, review string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// PaymentStore provides access to the payments collection.
type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
	ListAll(ctx context.Context) ([]models.Payment, error)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
