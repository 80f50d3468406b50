package api

import (
	"errors"
	"net/http"

	reqdto "controlpay/internal/handler/dto/request"
	resdto "controlpay/internal/handler/dto/response"
	"controlpay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	reconcile commands.ReconciliationCommands
}

func NewWebhookHandler(reconcile commands.ReconciliationCommands) *WebhookHandler {
	return &WebhookHandler{
		reconcile: reconcile,
	}
}

// @Summary Submit payment event
// @Description Reconcile one provider notification. Duplicates and out-of-order
// @Description deliveries are absorbed by the ledger; an unknown order is a 404.
// @Tags webhooks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.PaymentEventRequest true "Provider event"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /webhooks/payment-events [post]
func (h *WebhookHandler) SubmitEvent(c *gin.Context) {
	var req reqdto.PaymentEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	event := commands.ExternalEvent{
		Provider:    req.Provider,
		OrderID:     req.OrderID,
		Status:      req.Status,
		Message:     req.Message,
		ExternalRef: req.ExternalRef,
	}

	pay, err := h.reconcile.SubmitExternalEvent(c.Request.Context(), event)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request",
			})
		case errors.Is(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPayment(pay))
}
