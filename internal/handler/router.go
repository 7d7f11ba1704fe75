package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"carconnect/internal/handler/api"
	"carconnect/internal/handler/middleware"
	"carconnect/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Customer    *api.CustomerHandler
	Admin       *api.AdminHandler
	Vehicle     *api.VehicleHandler
	Reservation *api.ReservationHandler
}

func NewHandlers(
	authHandler *api.AuthHandler,
	customerHandler *api.CustomerHandler,
	adminHandler *api.AdminHandler,
	vehicleHandler *api.VehicleHandler,
	reservationHandler *api.ReservationHandler,
) Handlers {
	return Handlers{
		Auth:        authHandler,
		Customer:    customerHandler,
		Admin:       adminHandler,
		Vehicle:     vehicleHandler,
		Reservation: reservationHandler,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	adminOnly := []gin.HandlerFunc{requireAuth, authMiddleware.RequireAdmin()}
	authOnly := []gin.HandlerFunc{requireAuth}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/customers/login", Handler: h.Auth.LoginCustomer},
			{Method: http.MethodPost, Path: "/admins/login", Handler: h.Auth.LoginAdmin},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		})

		customers := apiGroup.Group("/customers")
		addRoutes(customers, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Customer.Register},
			{Method: http.MethodGet, Path: "", Handler: h.Customer.List, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get, Mw: authOnly},
			{Method: http.MethodGet, Path: "/by-username/:username", Handler: h.Customer.GetByUsername, Mw: authOnly},
			{Method: http.MethodPut, Path: "/:username", Handler: h.Customer.Update, Mw: authOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Reservation.ListByCustomer, Mw: authOnly},
		})

		admins := apiGroup.Group("/admins")
		admins.Use(adminOnly...)
		addRoutes(admins, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Admin.List},
			{Method: http.MethodPost, Path: "", Handler: h.Admin.Register},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Admin.Get},
			{Method: http.MethodGet, Path: "/by-username/:username", Handler: h.Admin.GetByUsername},
			{Method: http.MethodPut, Path: "/:username", Handler: h.Admin.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Admin.Delete},
		})

		vehicles := apiGroup.Group("/vehicles")
		addRoutes(vehicles, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Vehicle.List},
			{Method: http.MethodGet, Path: "/available", Handler: h.Vehicle.ListAvailable},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Vehicle.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Vehicle.Add, Mw: adminOnly},
			{Method: http.MethodPut, Path: "/:registrationNumber", Handler: h.Vehicle.Update, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Vehicle.Remove, Mw: adminOnly},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "/cost", Handler: h.Reservation.CalculateCost},
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.UpdateStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
		})
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
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
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
