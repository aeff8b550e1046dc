package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/cities-in-motion/internal/config"
	"github.com/cities-in-motion/internal/delivery/http/handler"
	"github.com/cities-in-motion/internal/delivery/http/middleware"
	"github.com/cities-in-motion/internal/pkg/errors"
	"github.com/cities-in-motion/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	countsHandler     *handler.CountsHandler
	regionHandler     *handler.RegionHandler
	comparisonHandler *handler.ComparisonHandler
	dashboardHandler  *handler.DashboardHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	countsHandler *handler.CountsHandler,
	regionHandler *handler.RegionHandler,
	comparisonHandler *handler.ComparisonHandler,
	dashboardHandler *handler.DashboardHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Cities in Motion",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		UnescapePath: true,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		countsHandler:     countsHandler,
		regionHandler:     regionHandler,
		comparisonHandler: comparisonHandler,
		dashboardHandler:  dashboardHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App возвращает fiber приложение (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSAllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.dashboardHandler.Health)

	// Prometheus
	api.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Time series
	api.Get("/counts", s.countsHandler.GetByDate)
	api.Get("/counts/window", s.countsHandler.GetWindow)

	// Geometry
	api.Get("/regions", s.regionHandler.List)
	api.Get("/regions/:name", s.regionHandler.GetByName)

	// Choropleth comparison
	api.Get("/comparison", s.comparisonHandler.Compare)

	api.Get("/dashboard/defaults", s.dashboardHandler.GetDefaults)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, паники и т.п.),
// в том же формате, что и utils.SendError
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !stderrors.As(err, &fe) {
			logger.Error("HTTP Error",
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return utils.SendError(c, err)
		}

		appErr := errors.New(httpErrorCode(fe.Code), fe.Message, fe.Code)
		return c.Status(fe.Code).JSON(utils.ErrorResponse{Error: appErr})
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "INVALID_REQUEST"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL_SERVER_ERROR"
	}
	return "HTTP_ERROR"
}
