package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/lumenbrowser/lumen/backend/internal/api/http"
	"github.com/lumenbrowser/lumen/backend/internal/api/middleware"
	"github.com/lumenbrowser/lumen/backend/internal/content"
	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/config"
	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/logging"
	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/monitoring"
	"github.com/lumenbrowser/lumen/backend/internal/pages/containercredits"
	"github.com/lumenbrowser/lumen/backend/internal/pages/credits"
	"github.com/lumenbrowser/lumen/backend/internal/pages/oscredits"
	"github.com/lumenbrowser/lumen/backend/internal/pages/proxyconfig"
	"github.com/lumenbrowser/lumen/backend/internal/pages/terms"
	"github.com/lumenbrowser/lumen/backend/internal/pages/urls"
	"github.com/lumenbrowser/lumen/backend/internal/platform"
	"github.com/lumenbrowser/lumen/backend/internal/resources"
	"github.com/lumenbrowser/lumen/backend/internal/worker"
)

// Server wraps the HTTP router and its dependencies.
type Server struct {
	router   *gin.Engine
	registry *content.Registry
	pool     *worker.Pool
	logger   *logging.Logger
}

// New builds a fully wired server from configuration.
func New(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	metrics := monitoring.NewMetrics()
	bundle := resources.MustLoad()
	pool := worker.New(cfg.Workers.Count, cfg.Workers.Queue, metrics)

	stats := platform.NewFileStatistics(cfg.Content.StatisticsPath)
	components := platform.NewDirComponentManager(cfg.Content.ComponentsDir)

	registry := content.NewRegistry()
	if err := registerSources(registry, cfg, bundle, stats, components, pool, logger, metrics); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("registered page sources",
		zap.Strings("hosts", registry.Hosts()),
		zap.String("locale", cfg.Content.Locale))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(registry, bundle, cfg.Content.DemoResourcesDir, logger, metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Internal pages
	router.GET("/pages/:host", handlers.Page)
	router.GET("/pages/:host/*path", handlers.Page)

	// Diagnostics
	router.GET("/debug/hosts", handlers.Hosts)
	router.GET("/debug/terms-locales", handlers.TermsLocales)
	router.GET("/debug/resources/:name", handlers.Resource)

	return &Server{
		router:   router,
		registry: registry,
		pool:     pool,
		logger:   logger,
	}, nil
}

// Run starts the HTTP server on the configured address.
func (s *Server) Run(host, port string) error {
	addr := fmt.Sprintf("%s:%s", host, port)
	s.logger.Info("starting pages server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close releases server resources.
func (s *Server) Close() error {
	s.pool.Close()
	_ = s.logger.Sync()
	return nil
}

func registerSources(
	registry *content.Registry,
	cfg *config.Config,
	bundle *resources.Bundle,
	stats platform.Statistics,
	components platform.ComponentManager,
	pool *worker.Pool,
	logger *logging.Logger,
	metrics *monitoring.Metrics,
) error {
	manifest, err := urls.LoadManifest()
	if err != nil {
		return fmt.Errorf("failed to load host manifest: %w", err)
	}
	locale := cfg.Content.Locale

	sources := []content.Source{
		urls.New(manifest, bundle, locale),
		credits.New(bundle),
		proxyconfig.New(bundle, locale),
		terms.New(terms.Config{
			Locale:           locale,
			OEMEulaDir:       cfg.Content.OEMEulaDir,
			DemoResourcesDir: cfg.Content.DemoResourcesDir,
		}, bundle, stats, pool, logger, metrics),
		oscredits.New(cfg.Content.OSCreditsPath, bundle, pool, logger, metrics),
		containercredits.New(cfg.Content.ContainerComponent, components, bundle, locale, pool, logger, metrics),
	}

	for _, src := range sources {
		if err := registry.Register(src); err != nil {
			return fmt.Errorf("failed to register source %q: %w", src.Name(), err)
		}
	}
	return nil
}
