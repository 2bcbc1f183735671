package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hosteleats/backend/internal/models"
	"github.com/hosteleats/backend/internal/service"
	"github.com/hosteleats/backend/internal/store"
)

type PaymentHandler struct {
	payments store.PaymentStore
	users    store.UserStore
	intents  service.IntentCreator
}

func NewPaymentHandler(payments store.PaymentStore, users store.UserStore, intents service.IntentCreator) *PaymentHandler {
	return &PaymentHandler{payments: payments, users: users, intents: intents}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine, authed, admin gin.HandlerFunc) {
	r.POST("/create-payment-intent", authed, h.CreateIntent)
	r.POST("/payment", h.Record)
	r.GET("/payment", authed, h.ListByEmail)
	r.GET("/payments", authed, admin, h.ListAll)
}

// IntentRequest carries the decimal purchase amount in major units.
type IntentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// CreateIntent converts the amount to integer minor units (truncating)
// and returns the gateway's client secret verbatim.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "amount is needed"})
		return
	}

	secret, err := h.intents.CreateIntent(c.Request.Context(), int64(req.Amount*100))
	if err != nil {
		writeStoreError(c, err, "failed to create payment intent")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// Record inserts the payment and derives the paying user's badge from
// the package name. The badge overwrite is unconditional: the most
// recent payment wins, whatever tier it grants.
func (h *PaymentHandler) Record(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	paymentRes, err := h.payments.Insert(c.Request.Context(), payment)
	if err != nil {
		writeStoreError(c, err, "failed to record payment")
		return
	}

	badge := models.BadgeForPackage(payment.PackageName)
	userRes, err := h.users.SetBadge(c.Request.Context(), payment.Email, badge)
	if err != nil {
		writeStoreError(c, err, "failed to update badge")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paymentResult": insertResponse(paymentRes),
		"userResult":    updateResponse(userRes),
	})
}

func (h *PaymentHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is needed"})
		return
	}

	payments, err := h.payments.ListByEmail(c.Request.Context(), email)
	if err != nil {
		writeStoreError(c, err, "failed to fetch payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ListAll(c *gin.Context) {
	payments, err := h.payments.ListAll(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "failed to fetch payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}
