package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tabletop-reserve/internal/handler/api"
	"tabletop-reserve/internal/handler/middleware"
	"tabletop-reserve/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	registry *prometheus.Registry,
	reservationHandler *api.ReservationHandler,
	participationHandler *api.ParticipationHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, registry, reservationHandler, participationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, registry *prometheus.Registry, reservationHandler *api.ReservationHandler, participationHandler *api.ParticipationHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/shops/:shopId"), []route{
			{Method: http.MethodPost, Path: "/reservations", Handler: reservationHandler.Create},
			{Method: http.MethodGet, Path: "/events", Handler: reservationHandler.ListShopEvents},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Delete},
			{Method: http.MethodGet, Path: "/:id/participants", Handler: participationHandler.GetWithParticipants},
		})

		addRoutes(apiGroup.Group("/tables/:tableId"), []route{
			{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.ListByTableAndDate},
		})

		addRoutes(apiGroup.Group("/users/:userId"), []route{
			{Method: http.MethodGet, Path: "/players", Handler: reservationHandler.ListLastPlayers},
			{Method: http.MethodGet, Path: "/reservations", Handler: participationHandler.ListForUser},
			{Method: http.MethodPost, Path: "/reservations/:id", Handler: participationHandler.Join},
			{Method: http.MethodGet, Path: "/reservations/:id", Handler: participationHandler.Get},
			{Method: http.MethodPatch, Path: "/reservations/:id/confirm", Handler: participationHandler.Confirm},
			{Method: http.MethodDelete, Path: "/reservations/:id", Handler: participationHandler.Leave},
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
