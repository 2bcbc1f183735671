package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteleats/backend/internal/models"
	"github.com/hosteleats/backend/internal/store"
)

type UpcomingMealHandler struct {
	upcoming store.UpcomingMealStore
}

func NewUpcomingMealHandler(upcoming store.UpcomingMealStore) *UpcomingMealHandler {
	return &UpcomingMealHandler{upcoming: upcoming}
}

func (h *UpcomingMealHandler) RegisterRoutes(r *gin.Engine, authed, admin gin.HandlerFunc) {
	r.POST("/upcomingMeals", authed, admin, h.Create)
	r.GET("/upcomingMeals", h.ListAll)
	r.PATCH("/upcomingMeals/:id", authed, h.Patch)
	r.DELETE("/upcomingMeals/:id", authed, h.Delete)
}

func (h *UpcomingMealHandler) Create(c *gin.Context) {
	var meal models.UpcomingMeal
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if meal.LikedBy == nil {
		meal.LikedBy = []string{}
	}

	res, err := h.upcoming.Insert(c.Request.Context(), meal)
	if err != nil {
		writeStoreError(c, err, "failed to create upcoming meal")
		return
	}
	c.JSON(http.StatusOK, insertResponse(res))
}

func (h *UpcomingMealHandler) ListAll(c *gin.Context) {
	meals, err := h.upcoming.ListAll(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "failed to fetch upcoming meals")
		return
	}
	c.JSON(http.StatusOK, meals)
}

// Patch merge-patches likes but replaces likedBy wholesale: the client
// sends the full list every time, and anything that is not an array
// becomes an empty list.
func (h *UpcomingMealHandler) Patch(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	fields := map[string]interface{}{}
	if likes, ok := body["likes"]; ok {
		fields["likes"] = likes
	}
	likedBy := []string{}
	if raw, ok := body["likedBy"].([]interface{}); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok {
				likedBy = append(likedBy, s)
			}
		}
	}
	fields["likedBy"] = likedBy

	res, err := h.upcoming.Patch(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		writeStoreError(c, err, "failed to update upcoming meal")
		return
	}
	c.JSON(http.StatusOK, updateResponse(res))
}

func (h *UpcomingMealHandler) Delete(c *gin.Context) {
	res, err := h.upcoming.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "failed to delete upcoming meal")
		return
	}
	c.JSON(http.StatusOK, deleteResponse(res))
}
