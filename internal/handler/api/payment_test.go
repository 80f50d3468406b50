//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"controlpay/internal/domain/payment"
	"controlpay/internal/handler/api"
	resdto "controlpay/internal/handler/dto/response"
	"controlpay/internal/pkg/errs"
	"controlpay/internal/usecase"
	"controlpay/internal/usecase/commands"
	"controlpay/internal/usecase/queries"
	"controlpay/tests/common/builder"
	"controlpay/tests/common/httptest"
	"controlpay/tests/common/testutil"
	commandsmock "controlpay/tests/mock/commands"
	queriesmock "controlpay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockPaymentCommands
	mockReconcile *commandsmock.MockReconciliationCommands
	mockQueries   *queriesmock.MockPaymentQueries
	handler       *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockReconcile = commandsmock.NewMockReconciliationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockReconcile, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("principal", usecase.Principal{
			Kind: usecase.PrincipalUser,
			ID:   uuid.New(),
			Role: usecase.RoleMerchant,
		})
		c.Next()
	}

	s.router.POST("/payments", authMiddleware, s.handler.Initiate)
	s.router.GET("/payments/:orderId", authMiddleware, s.handler.Get)
	s.router.POST("/payments/:orderId/poll", authMiddleware, s.handler.Poll)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// ================================================================================
// TestInitiate
// ================================================================================

func (s *PaymentHandlerTestSuite) TestInitiate() {
	url := "/payments"

	reqBody := builder.NewPaymentBuilder().BuildInitiateRequestDTO()
	returnPayment := builder.NewPaymentBuilder().BuildReconstructed()

	s.Run("success: returns 202 Accepted with the pending payment", func() {
		s.mockCommands.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order commands.InitiateOrder) (*payment.Payment, error) {
				s.Equal(reqBody.OrderID, order.OrderID)
				s.Equal(reqBody.AmountMinor, order.AmountMinor)
				s.Equal(reqBody.Services, order.Services)
				return returnPayment, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &response)
		s.Equal(returnPayment.OrderID(), response.OrderID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: orderId (required)", mutate: testutil.Field("orderId", nil)},
			{name: "missing field: amountMinor (required)", mutate: testutil.Field("amountMinor", nil)},
			{name: "empty orderId", mutate: testutil.Field("orderId", "")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate order",
				commandsError:  commands.ErrDuplicateOrder,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Order already exists",
			},
			{
				name:           "invalid amount",
				commandsError:  commands.ErrInvalidAmount,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *PaymentHandlerTestSuite) TestGet() {
	orderID := "ORD-2026-0001"
	url := "/payments/" + orderID

	returnView := builder.NewPaymentBuilder().WithOrderID(orderID).BuildView()

	s.Run("success: returns 200 OK with PaymentResponse including history", func() {
		returnView.History = []queries.HistoryEntryView{
			{Status: "pending", Message: "payment created", Source: "created"},
			{Status: "completed", Message: "provider airtel reported TS", Source: "provider"},
		}
		s.mockQueries.EXPECT().GetByOrder(gomock.Any(), orderID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.OrderID)
		s.Len(response.History, 2)
		s.Equal("provider", response.History[1].Source)
	})

	s.Run("error: 404 Not Found for an unknown order", func() {
		s.mockQueries.EXPECT().GetByOrder(gomock.Any(), orderID).
			Return(nil, queries.ErrPaymentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetByOrder(gomock.Any(), orderID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestPoll
// ================================================================================

func (s *PaymentHandlerTestSuite) TestPoll() {
	orderID := "ORD-2026-0001"
	url := "/payments/" + orderID + "/poll"

	s.Run("success: returns 200 OK with the reconciled payment", func() {
		returnPayment := builder.NewPaymentBuilder().WithOrderID(orderID).WithStatus(payment.StatusCompleted).BuildReconstructed()
		s.mockReconcile.EXPECT().PollStatus(gomock.Any(), orderID).
			Return(returnPayment, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.OrderID)
		s.Equal("completed", response.Status)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
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
				name:           "provider timeout",
				reconcileError: commands.ErrProviderTimeout,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Provider unavailable",
			},
			{
				name:           "provider network failure",
				reconcileError: commands.ErrProviderNetwork,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Provider unavailable",
			},
			{
				name:           "marked provider timeout keeps its mapping",
				reconcileError: errs.Mark(errs.New("provider call timed out"), commands.ErrProviderTimeout),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Provider unavailable",
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
				s.mockReconcile.EXPECT().PollStatus(gomock.Any(), orderID).
					Return(nil, tc.reconcileError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
