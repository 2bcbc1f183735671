package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteleats/backend/internal/models"
	"github.com/hosteleats/backend/internal/store"
)

type ReviewHandler struct {
	reviews store.ReviewStore
}

func NewReviewHandler(reviews store.ReviewStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.Engine, authed gin.HandlerFunc) {
	r.POST("/review", h.Create)
	r.GET("/review", h.ListByEmail)
	r.PATCH("/review/:id", authed, h.Update)
	r.DELETE("/review/:id", authed, h.Delete)
}

// ReviewUpdateRequest carries the replacement review text.
type ReviewUpdateRequest struct {
	Review string `json:"review" binding:"required"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	res, err := h.reviews.Insert(c.Request.Context(), review)
	if err != nil {
		writeStoreError(c, err, "failed to create review")
		return
	}
	c.JSON(http.StatusOK, insertResponse(res))
}

func (h *ReviewHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is needed"})
		return
	}

	reviews, err := h.reviews.ListByEmail(c.Request.Context(), email)
	if err != nil {
		writeStoreError(c, err, "failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "review is needed"})
		return
	}

	res, err := h.reviews.SetText(c.Request.Context(), c.Param("id"), req.Review)
	if err != nil {
		writeStoreError(c, err, "failed to update review")
		return
	}
	c.JSON(http.StatusOK, updateResponse(res))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	res, err := h.reviews.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "failed to delete review")
		return
	}
	c.JSON(http.StatusOK, deleteResponse(res))
}
