package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hosteleats/backend/internal/models"
	"github.com/hosteleats/backend/internal/store"
)

type MealHandler struct {
	meals store.MealStore
}

func NewMealHandler(meals store.MealStore) *MealHandler {
	return &MealHandler{meals: meals}
}

func (h *MealHandler) RegisterRoutes(r *gin.Engine, authed, admin gin.HandlerFunc) {
	r.POST("/meal", authed, admin, h.Create)
	r.GET("/meal", h.Search)
	r.GET("/meals", h.ListByAdmin)
	r.GET("/meal/:id", h.Get)
	r.PATCH("/meal/:id", authed, h.Patch)
	r.DELETE("/meal/:id", authed, admin, h.Delete)
}

// MealPatchRequest carries the patchable meal fields. Pointers
// distinguish "absent" from zero values: omitted fields keep their
// stored values (merge-patch).
type MealPatchRequest struct {
	Likes        *int     `json:"likes"`
	ReviewsCount *int     `json:"reviews_count"`
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
}

func (h *MealHandler) Create(c *gin.Context) {
	var meal models.Meal
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	res, err := h.meals.Insert(c.Request.Context(), meal)
	if err != nil {
		writeStoreError(c, err, "failed to create meal")
		return
	}
	c.JSON(http.StatusOK, insertResponse(res))
}

// Search handles GET /meal with the dynamic filter: substring search
// across title/category/admin_name, exact category, price ceiling, and
// descending sort on likes or reviews_count.
func (h *MealHandler) Search(c *gin.Context) {
	q := store.MealQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}
	if price := c.Query("price"); price != "" {
		maxPrice, err := strconv.ParseFloat(price, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "price must be a number"})
			return
		}
		q.MaxPrice = &maxPrice
	}

	meals, err := h.meals.Search(c.Request.Context(), q)
	if err != nil {
		writeStoreError(c, err, "failed to fetch meals")
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealHandler) ListByAdmin(c *gin.Context) {
	adminEmail := c.Query("admin_email")
	if adminEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "admin_email is needed"})
		return
	}

	meals, err := h.meals.ListByAdmin(c.Request.Context(), adminEmail)
	if err != nil {
		writeStoreError(c, err, "failed to fetch meals")
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealHandler) Get(c *gin.Context) {
	meal, err := h.meals.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "failed to fetch meal")
		return
	}
	if meal == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "meal not found"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// Patch updates only the fields present in the body with one atomic
// $set, so an omitted field can never clobber a concurrent write to it.
func (h *MealHandler) Patch(c *gin.Context) {
	var req MealPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	fields := map[string]interface{}{}
	if req.Likes != nil {
		fields["likes"] = *req.Likes
	}
	if req.ReviewsCount != nil {
		fields["reviews_count"] = *req.ReviewsCount
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if len(fields) == 0 {
		c.JSON(http.StatusOK, gin.H{"matchedCount": 0, "modifiedCount": 0})
		return
	}

	res, err := h.meals.Patch(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		writeStoreError(c, err, "failed to update meal")
		return
	}
	c.JSON(http.StatusOK, updateResponse(res))
}

func (h *MealHandler) Delete(c *gin.Context) {
	res, err := h.meals.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "failed to delete meal")
		return
	}
	c.JSON(http.StatusOK, deleteResponse(res))
}
