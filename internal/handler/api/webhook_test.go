//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"controlpay/internal/domain/payment"
	"controlpay/internal/handler/api"
	resdto "controlpay/internal/handler/dto/response"
	"controlpay/internal/usecase"
	"controlpay/internal/usecase/commands"
	"controlpay/tests/common/builder"
	"controlpay/tests/common/httptest"
	"controlpay/tests/common/testutil"
	commandsmock "controlpay/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testApiKey = "test-api-key"

type WebhookHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockReconcile *commandsmock.MockReconciliationCommands
	handler       *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReconcile = commandsmock.NewMockReconciliationCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockReconcile)

	// Mock API key middleware for testing
	apiKeyMiddleware := func(c *gin.Context) {
		if c.GetHeader("X-Api-Key") != testApiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Valid API key required"})
			return
		}
		c.Set("principal", usecase.Principal{
			Kind: usecase.PrincipalApiKey,
			ID:   uuid.Nil,
			Role: usecase.RoleService,
		})
		c.Next()
	}

	s.router.POST("/webhooks/payment-events", apiKeyMiddleware, s.handler.SubmitEvent)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

// ================================================================================
// TestSubmitEvent
// ================================================================================

func (s *WebhookHandlerTestSuite) TestSubmitEvent() {
	url := "/webhooks/payment-events"

	reqBody := builder.NewPaymentBuilder().BuildEventRequestDTO("airtel", "TS")

	s.Run("success: returns 200 OK with the reconciled payment", func() {
		returnPayment := builder.NewPaymentBuilder().WithStatus(payment.StatusCompleted).BuildReconstructed()
		s.mockReconcile.EXPECT().SubmitExternalEvent(gomock.Any(), commands.ExternalEvent{
			Provider:    reqBody.Provider,
			OrderID:     reqBody.OrderID,
			Status:      reqBody.Status,
			Message:     reqBody.Message,
			ExternalRef: reqBody.ExternalRef,
		}).Return(returnPayment, nil).Times(1)

		rec := httptest.PerformRequestWithApiKey(s.T(), s.router, http.MethodPost, url, reqBody, testApiKey)

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
	})

	s.Run("success: duplicate delivery is absorbed and returns the unchanged payment", func() {
		returnPayment := builder.NewPaymentBuilder().WithStatus(payment.StatusCompleted).BuildReconstructed()
		s.mockReconcile.EXPECT().SubmitExternalEvent(gomock.Any(), gomock.Any()).
			Return(returnPayment, nil).Times(1)

		rec := httptest.PerformRequestWithApiKey(s.T(), s.router, http.MethodPost, url, reqBody, testApiKey)

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: provider (required)", mutate: testutil.Field("provider", nil)},
			{name: "missing field: orderId (required)", mutate: testutil.Field("orderId", nil)},
			{name: "missing field: status (required)", mutate: testutil.Field("status", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithApiKey(s.T(), s.router, http.MethodPost, url, requestMap, testApiKey)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized without the API key", func() {
		rec := httptest.PerformRequestWithApiKey(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Valid API key required")
	})

	s.Run("error: 401 Unauthorized with a wrong API key", func() {
		rec := httptest.PerformRequestWithApiKey(s.T(), s.router, http.MethodPost, url, reqBody, "wrong-key")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Valid API key required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			reconcileError error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown order",
				reconcileError: commands.ErrPaymentNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Payment not found",
			},
			{
				name:           "empty order id",
				reconcileError: commands.ErrValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request",
			},
			{
				name:           "internal server error",
				reconcileError: errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReconcile.EXPECT().SubmitExternalEvent(gomock.Any(), gomock.Any()).
					Return(nil, tc.reconcileError).Times(1)

				rec := httptest.PerformRequestWithApiKey(s.T(), s.router, http.MethodPost, url, reqBody, testApiKey)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
