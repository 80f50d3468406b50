package components

import (
	"controlpay/internal/handler"
	"controlpay/internal/handler/api"
	"controlpay/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewControlNumberHandler,
		api.NewPaymentHandler,
		api.NewWebhookHandler,
		api.NewEntitlementHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
