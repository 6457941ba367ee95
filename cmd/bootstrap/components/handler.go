package components

import (
	"tablebook/internal/handler"
	"tablebook/internal/handler/api"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewTrackHandler,
		api.NewStaffHandler,
		middleware.NewAuthMiddleware,
		func(s *jwt.Service) middleware.TokenValidator { return s },
	),
	fx.Invoke(handler.NewRouter),
)
