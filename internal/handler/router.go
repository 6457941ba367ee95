package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tablebook/internal/domain/staff"
	"tablebook/internal/handler/api"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	trackHandler *api.TrackHandler,
	staffHandler *api.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, trackHandler, staffHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	trackHandler *api.TrackHandler,
	staffHandler *api.StaffHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Customer surface; no auth, sessions are anonymous.
		booking := apiGroup.Group("/booking")
		{
			addRoutes(booking, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: bookingHandler.FreeTables},
				{Method: http.MethodGet, Path: "/menu", Handler: bookingHandler.Menu},
				{Method: http.MethodPost, Path: "/sessions", Handler: bookingHandler.StartSession},
				{Method: http.MethodGet, Path: "/sessions/:session", Handler: bookingHandler.GetDraft},
				{Method: http.MethodPost, Path: "/sessions/:session/actions", Handler: bookingHandler.DispatchAction},
				{Method: http.MethodPost, Path: "/sessions/:session/proof", Handler: bookingHandler.AttachProof},
				{Method: http.MethodPost, Path: "/sessions/:session/promotion", Handler: bookingHandler.ApplyPromotion},
				{Method: http.MethodPost, Path: "/sessions/:session/submit", Handler: bookingHandler.Submit},
			})
		}

		track := apiGroup.Group("/track")
		{
			addRoutes(track, []route{
				{Method: http.MethodGet, Path: "/:token", Handler: trackHandler.Track},
				{Method: http.MethodGet, Path: "/:token/proof", Handler: trackHandler.ExportProof},
			})
		}

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		staffGroup := apiGroup.Group("/staff")
		staffGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(staffGroup, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: staffHandler.ListReservations},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: staffHandler.GetReservation},
				{
					Method:  http.MethodPatch,
					Path:    "/reservations/:id/status",
					Handler: staffHandler.Transition,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleServer)},
				},
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
