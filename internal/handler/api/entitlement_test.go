//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"controlpay/internal/handler/api"
	resdto "controlpay/internal/handler/dto/response"
	"controlpay/internal/usecase"
	"controlpay/internal/usecase/commands"
	"controlpay/internal/usecase/queries"
	"controlpay/tests/common/builder"
	"controlpay/tests/common/httptest"
	commandsmock "controlpay/tests/mock/commands"
	queriesmock "controlpay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EntitlementHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockDispatch *commandsmock.MockDispatchCommands
	mockQueries  *queriesmock.MockEntitlementQueries
	handler      *api.EntitlementHandler
}

func (s *EntitlementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDispatch = commandsmock.NewMockDispatchCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEntitlementQueries(s.mockCtrl)
	s.handler = api.NewEntitlementHandler(s.mockDispatch, s.mockQueries)

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

	s.router.GET("/services", authMiddleware, s.handler.ListByPayment)
	s.router.GET("/services/:id", authMiddleware, s.handler.Get)
	s.router.GET("/services/:id/access", authMiddleware, s.handler.CheckAccess)
}

func (s *EntitlementHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEntitlementHandlerSuite(t *testing.T) {
	suite.Run(t, new(EntitlementHandlerTestSuite))
}

// ================================================================================
// TestCheckAccess
// ================================================================================

func (s *EntitlementHandlerTestSuite) TestCheckAccess() {
	serviceID := uuid.New()
	url := "/services/" + serviceID.String() + "/access"

	s.Run("success: allowed access returns the service details", func() {
		grantedAt := time.Now().Add(-time.Hour)
		ent := builder.NewEntitlementBuilder().AsActive(grantedAt, nil).BuildReconstructed()
		s.mockDispatch.EXPECT().CheckServiceAccess(gomock.Any(), serviceID).
			Return(ent, true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ServiceAccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Allowed)
		s.Equal(ent.Name(), response.ServiceName)
		s.Equal("active", response.Status)
	})

	s.Run("success: denied access still returns 200 with allowed=false", func() {
		ent := builder.NewEntitlementBuilder().BuildReconstructed()
		s.mockDispatch.EXPECT().CheckServiceAccess(gomock.Any(), serviceID).
			Return(ent, false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ServiceAccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Allowed)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/services/invalid-uuid/access"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 404 Not Found for an unknown service", func() {
		s.mockDispatch.EXPECT().CheckServiceAccess(gomock.Any(), serviceID).
			Return(nil, false, commands.ErrEntitlementNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})

	s.Run("error: 500 Internal Server Error on repository failure", func() {
		s.mockDispatch.EXPECT().CheckServiceAccess(gomock.Any(), serviceID).
			Return(nil, false, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *EntitlementHandlerTestSuite) TestGet() {
	serviceID := uuid.New()
	url := "/services/" + serviceID.String()

	s.Run("success: returns 200 OK with EntitlementResponse", func() {
		view := builder.NewEntitlementBuilder().BuildView()
		view.ID = serviceID
		s.mockQueries.EXPECT().GetByID(gomock.Any(), serviceID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.EntitlementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(serviceID, response.ID)
		s.Equal(view.Name, response.Name)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID")
	})

	s.Run("error: 404 Not Found for an unknown service", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), serviceID).
			Return(nil, queries.ErrEntitlementNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

// ================================================================================
// TestListByPayment
// ================================================================================

func (s *EntitlementHandlerTestSuite) TestListByPayment() {
	paymentID := uuid.New()
	url := "/services?paymentId=" + paymentID.String()

	s.Run("success: returns every service for the payment", func() {
		views := []queries.EntitlementView{
			*builder.NewEntitlementBuilder().WithPaymentID(paymentID).WithName("premium-report").BuildView(),
			*builder.NewEntitlementBuilder().WithPaymentID(paymentID).WithName("data-export").BuildView(),
		}
		s.mockQueries.EXPECT().ListByPayment(gomock.Any(), paymentID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.EntitlementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("premium-report", response[0].Name)
	})

	s.Run("success: empty result is an empty array, not null", func() {
		s.mockQueries.EXPECT().ListByPayment(gomock.Any(), paymentID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("[]", rec.Body.String())
	})

	s.Run("error: 400 Bad Request when paymentId is missing or invalid", func() {
		for _, u := range []string{"/services", "/services?paymentId=abc"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, u, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payment ID")
		}
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByPayment(gomock.Any(), paymentID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
