package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"completion-planner/internal/middleware"
	"completion-planner/internal/progress"
	"completion-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Progress domain
	progressUC progress.UseCase
	rateLimit  middleware.RateLimitConfig
	ready      func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Progress domain
	ProgressUseCase progress.UseCase
	RateLimit       middleware.RateLimitConfig

	// Ready reports whether backing stores are reachable. Optional.
	Ready func() error
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		progressUC:      cfg.ProgressUseCase,
		rateLimit:       cfg.RateLimit,
		ready:           cfg.Ready,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.progressUC == nil {
		return errors.New("progress usecase is required")
	}
	return nil
}
