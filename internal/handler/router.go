package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"controlpay/internal/handler/api"
	"controlpay/internal/handler/middleware"
	"controlpay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	controlNumberHandler *api.ControlNumberHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	entitlementHandler *api.EntitlementHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, controlNumberHandler, paymentHandler, webhookHandler, entitlementHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	controlNumberHandler *api.ControlNumberHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	entitlementHandler *api.EntitlementHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		controlNumbers := apiGroup.Group("/control-numbers")
		controlNumbers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(controlNumbers, []route{
				{Method: http.MethodPost, Path: "", Handler: controlNumberHandler.Generate},
				{Method: http.MethodGet, Path: "", Handler: controlNumberHandler.List},
				{Method: http.MethodPost, Path: "/batch", Handler: controlNumberHandler.BatchGenerate},
				{Method: http.MethodGet, Path: "/:code/validate", Handler: controlNumberHandler.Validate},
				{Method: http.MethodPost, Path: "/:code/redeem", Handler: controlNumberHandler.Redeem},
				{Method: http.MethodPost, Path: "/:code/extend", Handler: controlNumberHandler.Extend},
				{Method: http.MethodDelete, Path: "/:code", Handler: controlNumberHandler.Cancel},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: paymentHandler.Initiate},
				{Method: http.MethodGet, Path: "/:orderId", Handler: paymentHandler.Get},
				{Method: http.MethodPost, Path: "/:orderId/poll", Handler: paymentHandler.Poll},
			})
		}

		webhooks := apiGroup.Group("/webhooks")
		webhooks.Use(authMiddleware.RequireApiKey())
		{
			addRoutes(webhooks, []route{
				{Method: http.MethodPost, Path: "/payment-events", Handler: webhookHandler.SubmitEvent},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth())
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: entitlementHandler.ListByPayment},
				{Method: http.MethodGet, Path: "/:id", Handler: entitlementHandler.Get},
				{Method: http.MethodGet, Path: "/:id/access", Handler: entitlementHandler.CheckAccess},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
