package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteleats/backend/internal/api"
	"github.com/hosteleats/backend/internal/middleware"
	"github.com/hosteleats/backend/internal/service"
	"github.com/hosteleats/backend/internal/store"
)

// Handlers bundles the resource handlers the router wires up.
type Handlers struct {
	Auth     *api.AuthHandler
	Users    *api.UserHandler
	Meals    *api.MealHandler
	Upcoming *api.UpcomingMealHandler
	Requests *api.RequestHandler
	Reviews  *api.ReviewHandler
	Payments *api.PaymentHandler
}

// Setup configures the application routes. The two guards are
// independent predicates; every route declares exactly the chain it
// needs, and admin always follows authed.
func Setup(authService *service.AuthService, users store.UserStore, h Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	authed := middleware.AuthRequired(authService)
	admin := middleware.AdminRequired(users)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hostel Management Server Running")
	})

	h.Auth.RegisterRoutes(router)
	h.Users.RegisterRoutes(router, authed, admin)
	h.Meals.RegisterRoutes(router, authed, admin)
	h.Upcoming.RegisterRoutes(router, authed, admin)
	h.Requests.RegisterRoutes(router, authed, admin)
	h.Reviews.RegisterRoutes(router, authed)
	h.Payments.RegisterRoutes(router, authed, admin)

	return router
}
