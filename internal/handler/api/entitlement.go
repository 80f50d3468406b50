package api

import (
	"errors"
	"net/http"

	resdto "controlpay/internal/handler/dto/response"
	"controlpay/internal/usecase/commands"
	"controlpay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EntitlementHandler struct {
	dispatch commands.DispatchCommands
	queries  queries.EntitlementQueries
}

func NewEntitlementHandler(dispatch commands.DispatchCommands, qrs queries.EntitlementQueries) *EntitlementHandler {
	return &EntitlementHandler{
		dispatch: dispatch,
		queries:  qrs,
	}
}

// @Summary Check service access
// @Description Evaluate access freshly; expiry takes effect on the next check
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service (entitlement) ID"
// @Success 200 {object} resdto.ServiceAccessResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id}/access [get]
func (h *EntitlementHandler) CheckAccess(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID",
		})
		return
	}

	ent, allowed, err := h.dispatch.CheckServiceAccess(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, commands.ErrEntitlementNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceAccess(ent, allowed))
}

// @Summary Get service
// @Description Fetch one service entitlement with its delivery state
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service (entitlement) ID"
// @Success 200 {object} resdto.EntitlementResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *EntitlementHandler) Get(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, queries.ErrEntitlementNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEntitlementView(view))
}

// @Summary List services for a payment
// @Description List every service entitlement attached to one payment
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param paymentId query string true "Payment ID"
// @Success 200 {array} resdto.EntitlementResponse
// @Failure 400 {object} map[string]string
// @Router /services [get]
func (h *EntitlementHandler) ListByPayment(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Query("paymentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID",
		})
		return
	}

	views, err := h.queries.ListByPayment(c.Request.Context(), paymentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result := make([]resdto.EntitlementResponse, 0, len(views))
	for _, view := range views {
		result = append(result, resdto.FromEntitlementView(&view))
	}
	c.JSON(http.StatusOK, result)
}
