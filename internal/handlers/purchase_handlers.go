package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mechmarket/mech-api/internal/logger"
	"github.com/mechmarket/mech-api/internal/services"
	"github.com/mechmarket/mech-api/internal/types/business"
	"go.uber.org/zap"
)

// SubscriptionPurchaser is the slice of the subscription service the
// purchase surface needs.
type SubscriptionPurchaser interface {
	PurchaseSubscription(ctx context.Context, planDID string) (*business.PurchaseResult, error)
}

// CreditReader reads the sender's current credit balance.
type CreditReader interface {
	CreditBalance(ctx context.Context) (*business.CreditBalance, error)
}

// PurchaseHandler exposes the subscription purchase flow over HTTP.
type PurchaseHandler struct {
	subscriptions SubscriptionPurchaser
	credits       CreditReader
	logger        *zap.Logger
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(subscriptions SubscriptionPurchaser, credits CreditReader) *PurchaseHandler {
	return &PurchaseHandler{
		subscriptions: subscriptions,
		credits:       credits,
		logger:        logger.Log,
	}
}

// CreatePurchaseRequest is the request body for creating a purchase.
type CreatePurchaseRequest struct {
	PlanDID string `json:"plan_did" binding:"required"`
}

// ErrorResponse is the standardized error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// CreatePurchase runs one subscription purchase for the configured sender.
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.subscriptions.PurchaseSubscription(c.Request.Context(), req.PlanDID)
	if err != nil {
		h.logger.Error("Subscription purchase failed",
			zap.String("plan_did", req.PlanDID),
			zap.Error(err),
		)
		status := purchaseErrorStatus(err)
		sendError(c, status, "Subscription purchase failed", err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetCredits returns the sender's current subscription credit balance.
func (h *PurchaseHandler) GetCredits(c *gin.Context) {
	balance, err := h.credits.CreditBalance(c.Request.Context())
	if err != nil {
		h.logger.Error("Credit balance read failed", zap.Error(err))
		sendError(c, http.StatusBadGateway, "Failed to read credit balance", err)
		return
	}

	c.JSON(http.StatusOK, balance)
}

// purchaseErrorStatus maps the purchase error taxonomy to HTTP statuses:
// operator misconfiguration and bad plans are client-side, funding is 402,
// on-chain failures are upstream errors.
func purchaseErrorStatus(err error) int {
	var configErr *services.ConfigurationError
	if errors.As(err, &configErr) {
		return http.StatusPreconditionFailed
	}
	var balanceErr *services.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		return http.StatusPaymentRequired
	}
	var txErr *services.TransactionFailedError
	if errors.As(err, &txErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// sendError writes the standardized error payload.
func sendError(c *gin.Context, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(status, resp)
}
