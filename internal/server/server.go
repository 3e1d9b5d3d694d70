package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rohanb712/ecotrack/internal/config"
	"github.com/rohanb712/ecotrack/internal/handler"
	"github.com/rohanb712/ecotrack/internal/middleware"
	"github.com/rohanb712/ecotrack/internal/repository"
	"github.com/rohanb712/ecotrack/internal/service"
	"github.com/rohanb712/ecotrack/pkg/logger"
	"github.com/rohanb712/ecotrack/pkg/validator"
)

type Server struct {
	engine *gin.Engine
	cfg    *config.Config
}

// NewServer wires repository, validator, service and handler together and
// registers the routes. The repository is injected so tests can substitute
// the in-memory implementation.
func NewServer(cfg *config.Config, repo repository.ActionRepository) *Server {
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	actionService := service.NewActionService(repo, validator.New())
	actionHandler := handler.NewActionHandler(actionService)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.AccessLog())
	engine.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	setupCORS(engine, cfg)

	registerRoutes(engine, actionHandler)

	return &Server{engine: engine, cfg: cfg}
}

func registerRoutes(engine *gin.Engine, h *handler.ActionHandler) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	actions := engine.Group("/actions")
	{
		actions.GET("/", h.ListActions)
		actions.POST("/", h.CreateAction)
		actions.GET("/:id/", h.GetAction)
		actions.PUT("/:id/", h.ReplaceAction)
		actions.PATCH("/:id/", h.PatchAction)
		actions.DELETE("/:id/", h.DeleteAction)
	}
}

// Engine exposes the underlying router, mainly for httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Sugar().Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	logger.Sugar().Info("server shutdown complete")
	return nil
}

func setupCORS(engine *gin.Engine, cfg *config.Config) {
	var origins []string
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
