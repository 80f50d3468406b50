package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"controlpay/internal/domain/controlnumber"
	reqdto "controlpay/internal/handler/dto/request"
	resdto "controlpay/internal/handler/dto/response"
	"controlpay/internal/handler/middleware"
	"controlpay/internal/usecase/commands"
	"controlpay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ControlNumberHandler struct {
	commands commands.ControlNumberCommands
	queries  queries.ControlNumberQueries
}

func NewControlNumberHandler(cmds commands.ControlNumberCommands, qrs queries.ControlNumberQueries) *ControlNumberHandler {
	return &ControlNumberHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Generate control number
// @Description Issue a new time-boxed control number for the authenticated merchant
// @Tags control-numbers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateControlNumberRequest true "Generation request"
// @Success 201 {object} resdto.ControlNumberResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /control-numbers [post]
func (h *ControlNumberHandler) Generate(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.GenerateControlNumberRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cn, err := h.commands.Generate(c.Request.Context(), toGenerateSpec(req, principal.ID))
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromControlNumber(cn))
}

// @Summary Batch generate control numbers
// @Description Issue up to 1000 control numbers sharing one batch ID
// @Tags control-numbers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BatchGenerateRequest true "Batch generation request"
// @Success 201 {array} resdto.ControlNumberResponse
// @Failure 400 {object} map[string]string
// @Router /control-numbers/batch [post]
func (h *ControlNumberHandler) BatchGenerate(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BatchGenerateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cns, err := h.commands.BatchGenerate(c.Request.Context(), toGenerateSpec(req.GenerateControlNumberRequest, principal.ID), req.Count)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromControlNumbers(cns))
}

// @Summary Validate control number
// @Description Read-only usability check; never mutates the record
// @Tags control-numbers
// @Produce json
// @Security BearerAuth
// @Param code path string true "Control number code"
// @Param amountMinor query int false "Expected amount in minor units"
// @Success 200 {object} resdto.ValidationResponse
// @Router /control-numbers/{code}/validate [get]
func (h *ControlNumberHandler) Validate(c *gin.Context) {
	var expectedAmount *int64
	if raw, exists := c.GetQuery("amountMinor"); exists {
		parsed, err := parseAmount(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid amount",
			})
			return
		}
		expectedAmount = &parsed
	}

	view, err := h.queries.Validate(c.Request.Context(), c.Param("code"), expectedAmount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidationView(view))
}

// @Summary Redeem control number
// @Description Atomically consume one use of the code against a payment reference
// @Tags control-numbers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Control number code"
// @Param request body reqdto.RedeemControlNumberRequest true "Redemption request"
// @Success 200 {object} resdto.ControlNumberResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /control-numbers/{code}/redeem [post]
func (h *ControlNumberHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemControlNumberRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	redeemer := controlnumber.RedeemerInfo{
		Name:    req.RedeemerName,
		Phone:   req.RedeemerPhone,
		Channel: req.RedeemerChannel,
	}

	cn, err := h.commands.Redeem(c.Request.Context(), c.Param("code"), req.PaymentRef, redeemer)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromControlNumber(cn))
}

// @Summary Extend control number validity
// @Tags control-numbers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Control number code"
// @Param request body reqdto.ExtendValidityRequest true "Extension request"
// @Success 200 {object} resdto.ControlNumberResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /control-numbers/{code}/extend [post]
func (h *ControlNumberHandler) Extend(c *gin.Context) {
	var req reqdto.ExtendValidityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cn, err := h.commands.ExtendValidity(c.Request.Context(), c.Param("code"), time.Duration(req.ExtraHours)*time.Hour)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromControlNumber(cn))
}

// @Summary Cancel control number
// @Tags control-numbers
// @Produce json
// @Security BearerAuth
// @Param code path string true "Control number code"
// @Success 200 {object} resdto.ControlNumberResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /control-numbers/{code} [delete]
func (h *ControlNumberHandler) Cancel(c *gin.Context) {
	cn, err := h.commands.Cancel(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromControlNumber(cn))
}

// @Summary List control numbers
// @Description List the authenticated merchant's control numbers, newest first
// @Tags control-numbers
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.ControlNumberListResponse
// @Router /control-numbers [get]
func (h *ControlNumberHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var status *string
	if raw, exists := c.GetQuery("status"); exists && raw != "" {
		status = &raw
	}

	items, err := h.queries.ListByMerchant(c.Request.Context(), principal.ID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result := make([]resdto.ControlNumberListResponse, 0, len(items))
	for _, item := range items {
		result = append(result, resdto.FromControlNumberListItem(item))
	}
	c.JSON(http.StatusOK, result)
}

func (h *ControlNumberHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrValidation), errors.Is(err, commands.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request",
		})
	case errors.Is(err, commands.ErrBatchTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Batch size out of range",
		})
	case errors.Is(err, commands.ErrControlNumberNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Control number not found",
		})
	case errors.Is(err, commands.ErrControlNumberExpired):
		c.JSON(http.StatusGone, gin.H{
			"error": "Control number expired",
		})
	case errors.Is(err, commands.ErrAlreadyRedeemed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Control number already redeemed",
		})
	case errors.Is(err, commands.ErrNotActive):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Control number is not active",
		})
	case errors.Is(err, commands.ErrGenerationFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Could not allocate a unique control number",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func toGenerateSpec(req reqdto.GenerateControlNumberRequest, merchantID uuid.UUID) commands.GenerateSpec {
	spec := commands.GenerateSpec{
		AmountMinor:   req.AmountMinor,
		Method:        controlnumber.PaymentMethod(req.Method()),
		MerchantID:    merchantID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		IsReusable:    req.IsReusable,
	}
	if req.ExpiryHours != nil {
		spec.ExpiresIn = time.Duration(*req.ExpiryHours) * time.Hour
	}
	if req.ValidityHours != nil {
		spec.ValidFor = time.Duration(*req.ValidityHours) * time.Hour
	}
	if req.MaxUses != nil {
		spec.MaxUses = *req.MaxUses
	}
	return spec
}

func parseAmount(raw string) (int64, error) {
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || amount <= 0 {
		return 0, errors.New("invalid amount")
	}
	return amount, nil
}
