package api

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hosteleats/backend/internal/models"
	"github.com/hosteleats/backend/internal/store"
)

// MockUserStore is a mock implementation of store.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) ListByEmail(ctx context.Context, email string) ([]models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) ListAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockUserStore) PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockUserStore) SetBadge(ctx context.Context, email string, badge models.Badge) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, email, badge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

// MockMealStore is a mock implementation of store.MealStore
type MockMealStore struct {
	mock.Mock
}

func (m *MockMealStore) Insert(ctx context.Context, meal models.Meal) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, meal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockMealStore) Search(ctx context.Context, q store.MealQuery) ([]models.Meal, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealStore) ListByAdmin(ctx context.Context, adminEmail string) ([]models.Meal, error) {
	args := m.Called(ctx, adminEmail)
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealStore) Get(ctx context.Context, id string) (*models.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealStore) Patch(ctx context.Context, id string, fields map[string]interface{}) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockMealStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

// MockUpcomingMealStore is a mock implementation of store.UpcomingMealStore
type MockUpcomingMealStore struct {
	mock.Mock
}

func (m *MockUpcomingMealStore) Insert(ctx context.Context, meal models.UpcomingMeal) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, meal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockUpcomingMealStore) ListAll(ctx context.Context) ([]models.UpcomingMeal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.UpcomingMeal), args.Error(1)
}

func (m *MockUpcomingMealStore) Patch(ctx context.Context, id string, fields map[string]interface{}) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockUpcomingMealStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

// MockRequestStore is a mock implementation of store.RequestStore
type MockRequestStore struct {
	mock.Mock
}

func (m *MockRequestStore) Insert(ctx context.Context, req models.MealRequest) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockRequestStore) ListByEmail(ctx context.Context, email string) ([]models.MealRequest, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.MealRequest), args.Error(1)
}

func (m *MockRequestStore) Search(ctx context.Context, search string) ([]models.MealRequest, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]models.MealRequest), args.Error(1)
}

func (m *MockRequestStore) SetStatus(ctx context.Context, id, status string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockRequestStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

// MockPaymentStore is a mock implementation of store.PaymentStore
type MockPaymentStore struct {
	mock.Mock
}

func (m *MockPaymentStore) Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockPaymentStore) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentStore) ListAll(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Payment), args.Error(1)
}

// MockIntentCreator is a mock implementation of service.IntentCreator
type MockIntentCreator struct {
	mock.Mock
}

func (m *MockIntentCreator) CreateIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	args := m.Called(ctx, amountMinorUnits)
	return args.String(0), args.Error(1)
}
