package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hosteleats/backend/internal/models"
)

func requestTestRouter(requests *MockRequestStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRequestHandler(requests)
	r.POST("/request", h.Create)
	r.GET("/request", h.ListByEmail)
	r.PATCH("/request/:id", h.SetStatus)
	r.GET("/requests", h.Search)
	return r
}

func TestCreateRequestDefaultsToPending(t *testing.T) {
	requests := new(MockRequestStore)
	requests.On("Insert", mock.Anything, mock.MatchedBy(func(r models.MealRequest) bool {
		return r.Email == "resident@example.com" && r.Status == models.RequestPending
	})).Return(&mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil)

	r := requestTestRouter(requests)
	req := httptest.NewRequest("POST", "/request", bytes.NewBufferString(`{
		"mealId": "65b1f0c2a5d4e3f2b1a09876",
		"title": "Chicken Curry",
		"email": "resident@example.com"
	}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	requests.AssertExpectations(t)
}

func TestListRequestsRequiresEmail(t *testing.T) {
	r := requestTestRouter(new(MockRequestStore))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/request", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"email is needed"}`, w.Body.String())
}

func TestSearchRequestsPassesSearchTerm(t *testing.T) {
	requests := new(MockRequestStore)
	requests.On("Search", mock.Anything, "rifat").Return([]models.MealRequest{}, nil)

	r := requestTestRouter(requests)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/requests?search=rifat", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	requests.AssertExpectations(t)
}

func TestSetStatusRequiresBody(t *testing.T) {
	r := requestTestRouter(new(MockRequestStore))

	req := httptest.NewRequest("PATCH", "/request/65b1f0c2a5d4e3f2b1a09876", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetStatusApproves(t *testing.T) {
	requests := new(MockRequestStore)
	requests.On("SetStatus", mock.Anything, "65b1f0c2a5d4e3f2b1a09876", models.RequestApproved).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	r := requestTestRouter(requests)
	req := httptest.NewRequest("PATCH", "/request/65b1f0c2a5d4e3f2b1a09876", bytes.NewBufferString(`{"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	requests.AssertExpectations(t)
}
