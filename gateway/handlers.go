package gateway

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/babelgateco/babelgate/pkg/cache"
	"github.com/babelgateco/babelgate/pkg/metrics"
	"github.com/babelgateco/babelgate/pkg/translate"
)

// handleRoot is the tutorial hello endpoint. It depends on no request
// state and always returns the same body.
func (g *Gateway) handleRoot(c *fiber.Ctx) error {
	return c.JSON(map[string]string{"Hello": "World"})
}

// handleItem echoes the integer path parameter and the optional query
// string back to the caller. q is null when absent.
func (g *Gateway) handleItem(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("item_id"))
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(translate.ErrorResponse{Detail: "item_id must be an integer"})
	}

	var q *string
	if c.Context().QueryArgs().Has("q") {
		value := c.Query("q")
		q = &value
	}

	return c.JSON(fiber.Map{
		"item_id": itemID,
		"q":       q,
	})
}

// handleTranslate validates the request shape, consults the cache, and
// invokes the translator. Every upstream failure collapses to one generic
// status with the failure's text as the only diagnostic detail.
func (g *Gateway) handleTranslate(c *fiber.Ctx) error {
	var req translate.Request
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		g.logger.Debug("failed to parse request", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(translate.ErrorResponse{Detail: "invalid request body"})
	}

	if req.InputStr == nil || *req.InputStr == "" {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(translate.ErrorResponse{Detail: "input_str is required"})
	}
	input := *req.InputStr

	metrics.InputChars.Observe(float64(len(input)))

	source, target := g.translator.Languages()
	key := cache.Key(g.translator.Model(), source, target, input)

	if g.store != nil {
		entry, err := g.store.Get(c.Context(), key)
		if err == nil {
			metrics.CacheHits.Inc()
			g.logger.Debug("cache hit", zap.String("key", truncate(key, 16)))
			return c.JSON(translate.Response{TranslatedText: entry.Translated})
		}
		metrics.CacheMisses.Inc()
	}

	start := time.Now()
	translated, err := g.translator.Translate(c.Context(), input)
	metrics.TranslationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		kind := translate.KindUnknown
		var upErr *translate.UpstreamError
		if errors.As(err, &upErr) {
			kind = upErr.Kind
		}
		metrics.UpstreamFailures.WithLabelValues(string(kind)).Inc()
		g.logger.Error("translation failed",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).
			JSON(translate.ErrorResponse{Detail: err.Error()})
	}

	g.logger.Debug("translation complete",
		zap.String("input_preview", truncate(input, 50)),
		zap.String("output_preview", truncate(translated, 50)),
		zap.Duration("duration", time.Since(start)),
	)

	if g.store != nil {
		entry := cache.NewEntry(g.translator.Model(), source, target, input, translated)
		if err := g.store.Put(c.Context(), entry); err != nil {
			// Continue - don't fail the request just because caching failed
			g.logger.Warn("failed to cache translation", zap.Error(err))
		}
	}

	return c.JSON(translate.Response{TranslatedText: translated})
}

// handleCacheStats reports cache size for inspection.
func (g *Gateway) handleCacheStats(c *fiber.Ctx) error {
	if g.store == nil {
		return c.JSON(fiber.Map{"enabled": false})
	}

	count, err := g.store.Len(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(translate.ErrorResponse{Detail: "failed to count cache entries"})
	}

	return c.JSON(fiber.Map{
		"enabled": true,
		"entries": count,
	})
}
