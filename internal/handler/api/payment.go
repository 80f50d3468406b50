package api

import (
	"errors"
	"net/http"

	reqdto "controlpay/internal/handler/dto/request"
	resdto "controlpay/internal/handler/dto/response"
	"controlpay/internal/usecase/commands"
	"controlpay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	commands  commands.PaymentCommands
	reconcile commands.ReconciliationCommands
	queries   queries.PaymentQueries
}

func NewPaymentHandler(
	cmds commands.PaymentCommands,
	reconcile commands.ReconciliationCommands,
	qrs queries.PaymentQueries,
) *PaymentHandler {
	return &PaymentHandler{
		commands:  cmds,
		reconcile: reconcile,
		queries:   qrs,
	}
}

// @Summary Initiate payment
// @Description Create a payment and start it with the upstream provider. If the
// @Description provider does not answer, the payment stays pending with the outcome unknown.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitiatePaymentRequest true "Payment request"
// @Success 202 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req reqdto.InitiatePaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	order := commands.InitiateOrder{
		OrderID:     req.OrderID,
		LegacyRef:   req.GetLegacyRef(),
		AmountMinor: req.AmountMinor,
		ControlCode: req.GetControlCode(),
		Payer: commands.PayerInfo{
			Name:  req.PayerName,
			Phone: req.PayerPhone,
		},
		Services: req.Services,
	}

	pay, err := h.commands.InitiatePayment(c.Request.Context(), order)
	if err != nil {
		h.respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromPayment(pay))
}

// @Summary Get payment
// @Description Fetch a payment by order ID or legacy reference, with full history
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID or legacy reference"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} map[string]string
// @Router /payments/{orderId} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	view, err := h.queries.GetByOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, queries.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Poll provider for payment status
// @Description Query the provider directly and fold the answer into the ledger
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID or legacy reference"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/{orderId}/poll [post]
func (h *PaymentHandler) Poll(c *gin.Context) {
	pay, err := h.reconcile.PollStatus(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPayment(pay))
}

func (h *PaymentHandler) respondPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrValidation), errors.Is(err, commands.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request",
		})
	case errors.Is(err, commands.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Payment not found",
		})
	case errors.Is(err, commands.ErrDuplicateOrder):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order already exists",
		})
	case errors.Is(err, commands.ErrProviderTimeout), errors.Is(err, commands.ErrProviderNetwork):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Provider unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
