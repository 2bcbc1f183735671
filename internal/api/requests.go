package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteleats/backend/internal/models"
	"github.com/hosteleats/backend/internal/store"
)

type RequestHandler struct {
	requests store.RequestStore
}

func NewRequestHandler(requests store.RequestStore) *RequestHandler {
	return &RequestHandler{requests: requests}
}

func (h *RequestHandler) RegisterRoutes(r *gin.Engine, authed, admin gin.HandlerFunc) {
	r.POST("/request", authed, h.Create)
	r.GET("/request", h.ListByEmail)
	r.DELETE("/request/:id", authed, h.Delete)
	r.PATCH("/request/:id", authed, admin, h.SetStatus)
	r.GET("/requests", authed, admin, h.Search)
}

// StatusRequest carries the new status for an admin status update.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req models.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if req.Status == "" {
		req.Status = models.RequestPending
	}

	res, err := h.requests.Insert(c.Request.Context(), req)
	if err != nil {
		writeStoreError(c, err, "failed to create request")
		return
	}
	c.JSON(http.StatusOK, insertResponse(res))
}

func (h *RequestHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is needed"})
		return
	}

	requests, err := h.requests.ListByEmail(c.Request.Context(), email)
	if err != nil {
		writeStoreError(c, err, "failed to fetch requests")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Search lists all requests, optionally narrowed by a case-insensitive
// name/email substring match.
func (h *RequestHandler) Search(c *gin.Context) {
	requests, err := h.requests.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeStoreError(c, err, "failed to fetch requests")
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *RequestHandler) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is needed"})
		return
	}

	res, err := h.requests.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeStoreError(c, err, "failed to update request")
		return
	}
	c.JSON(http.StatusOK, updateResponse(res))
}

func (h *RequestHandler) Delete(c *gin.Context) {
	res, err := h.requests.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "failed to delete request")
		return
	}
	c.JSON(http.StatusOK, deleteResponse(res))
}
