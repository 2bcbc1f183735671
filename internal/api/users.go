package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteleats/backend/internal/models"
	"github.com/hosteleats/backend/internal/store"
)

type UserHandler struct {
	users store.UserStore
}

func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine, authed, admin gin.HandlerFunc) {
	r.POST("/users", h.Register)
	r.GET("/users", h.ListByEmail)
	r.GET("/allUsers", authed, admin, h.ListAll)
	r.PATCH("/users/admin/:id", authed, admin, h.PromoteToAdmin)
	r.DELETE("/users/:id", authed, admin, h.Delete)
	r.GET("/users/admin/:email", authed, h.CheckAdmin)
}

// Register creates the user record on first registration. Registering
// an email that already exists is a no-op with a null insert marker.
func (h *UserHandler) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	existing, err := h.users.GetByEmail(c.Request.Context(), user.Email)
	if err != nil {
		writeStoreError(c, err, "failed to look up user")
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}

	if user.Badge == "" {
		user.Badge = models.BadgeBronze
	}

	res, err := h.users.Insert(c.Request.Context(), user)
	if err != nil {
		writeStoreError(c, err, "failed to create user")
		return
	}
	c.JSON(http.StatusOK, insertResponse(res))
}

func (h *UserHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is needed"})
		return
	}

	users, err := h.users.ListByEmail(c.Request.Context(), email)
	if err != nil {
		writeStoreError(c, err, "failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) PromoteToAdmin(c *gin.Context) {
	res, err := h.users.PromoteToAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "failed to promote user")
		return
	}
	c.JSON(http.StatusOK, updateResponse(res))
}

func (h *UserHandler) Delete(c *gin.Context) {
	res, err := h.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "failed to delete user")
		return
	}
	c.JSON(http.StatusOK, deleteResponse(res))
}

// CheckAdmin reports whether the given email belongs to an admin. A
// missing record is simply not an admin.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeStoreError(c, err, "failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}
