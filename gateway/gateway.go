// Package gateway exposes the translation service over HTTP.
package gateway

import (
	"fmt"
	"strings"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/babelgateco/babelgate/pkg/cache"
	"github.com/babelgateco/babelgate/pkg/provider"
	"github.com/babelgateco/babelgate/pkg/translate"
)

// Gateway fronts the translation provider with a small synchronous HTTP
// surface. It is stateless per request; the provider client, the cache,
// and the logger are the only process-scoped pieces, all read-only or
// internally synchronized.
type Gateway struct {
	config     Config
	translator *translate.Translator
	store      cache.Store
	logger     *zap.Logger
	server     *fiber.App
}

// New creates a new Gateway around the given provider client.
func New(config Config, client provider.Client, logger *zap.Logger) (*Gateway, error) {
	var store cache.Store
	if config.CacheEnabled {
		if config.CachePath != "" {
			var err error
			store, err = cache.NewSQLiteStore(config.CachePath)
			if err != nil {
				return nil, fmt.Errorf("failed to create SQLite cache: %w", err)
			}
			logger.Info("using SQLite cache", zap.String("path", config.CachePath))
		} else {
			store = cache.NewMemoryStore()
			logger.Info("using in-memory cache")
		}
	}

	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
	})

	g := &Gateway{
		config: config,
		translator: translate.NewTranslator(
			client,
			config.Model,
			config.SourceLang,
			config.TargetLang,
			config.RequestTimeout.Duration,
		),
		store:  store,
		logger: logger,
		server: app,
	}

	app.Use(requestID())
	app.Use(requestLogger(logger))
	app.Use(apiKeyGuard(config.APIKey))

	g.registerRoutes(app)

	return g, nil
}

func (g *Gateway) registerRoutes(app *fiber.App) {
	app.Get("/", g.handleRoot)
	app.Get("/items/:item_id", g.handleItem)
	app.Post("/translate/", g.handleTranslate)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	// Cache inspection
	app.Get("/cache/stats", g.handleCacheStats)

	// Prometheus exposition
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

// Run starts the gateway server on the configured listening address.
func (g *Gateway) Run() error {
	source, target := g.translator.Languages()
	g.logger.Info("starting gateway server",
		zap.String("listen", g.config.ListenAddr),
		zap.String("model", g.translator.Model()),
		zap.String("source_lang", source),
		zap.String("target_lang", target),
		zap.Bool("cache", g.store != nil),
	)

	return g.server.Listen(g.config.ListenAddr)
}

// Close shuts down the gateway and releases resources.
func (g *Gateway) Close() error {
	if g.store != nil {
		return g.store.Close()
	}
	return nil
}

func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
