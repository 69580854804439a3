package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lumenbrowser/lumen/backend/internal/content"
	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/logging"
	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/monitoring"
	"github.com/lumenbrowser/lumen/backend/internal/pages/terms"
	"github.com/lumenbrowser/lumen/backend/internal/resources"
)

// defaultCSP is attached to every page unless its source opts out.
const defaultCSP = "default-src 'self'; script-src 'self'; object-src 'none';"

// Handlers serves the internal pages API.
type Handlers struct {
	registry         *content.Registry
	bundle           *resources.Bundle
	demoResourcesDir string
	logger           *logging.Logger
	metrics          *monitoring.Metrics
}

// NewHandlers creates the API handlers.
func NewHandlers(registry *content.Registry, bundle *resources.Bundle, demoResourcesDir string, logger *logging.Logger, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry:         registry,
		bundle:           bundle,
		demoResourcesDir: demoResourcesDir,
		logger:           logger,
		metrics:          metrics,
	}
}

// Page serves GET /pages/:host/*path. The reply callback is bridged to
// the handler goroutine through a single-use channel; the response is not
// finalized until the source delivers its one reply.
func (h *Handlers) Page(c *gin.Context) {
	host := c.Param("host")
	path := strings.TrimPrefix(c.Param("path"), "/")
	start := time.Now()

	if _, known := h.registry.Get(host); !known {
		h.logger.Warn("request for unknown host", zap.String("host", host))
	}

	replyCh := make(chan []byte, 1)
	h.registry.StartRequest(host, path, func(body []byte) {
		replyCh <- body
	})
	body := <-replyCh

	outcome := "ok"
	if len(body) == 0 {
		outcome = "empty"
	}
	if h.metrics != nil {
		h.metrics.RecordPageRequest(host, outcome, time.Since(start), len(body))
	}

	h.applySecurityHeaders(c, host)
	c.Data(http.StatusOK, content.MimeType(path), body)
}

// applySecurityHeaders layers per-source policy overrides on the host
// defaults.
func (h *Handlers) applySecurityHeaders(c *gin.Context, host string) {
	src, ok := h.registry.Get(host)
	if !ok {
		c.Header("Content-Security-Policy", defaultCSP)
		return
	}

	csp := defaultCSP
	addCSP := true
	if overrider, ok := src.(content.PolicyOverrider); ok {
		addCSP = overrider.AddContentSecurityPolicy()
		if policy, ok := overrider.ContentSecurityPolicy(content.CSPTrustedTypes); ok {
			csp = csp + " " + policy
		}
	}
	if addCSP {
		c.Header("Content-Security-Policy", csp)
	}

	if allower, ok := src.(content.OriginAllower); ok {
		origin := c.GetHeader("Origin")
		if allow, ok := allower.AllowOriginFor(origin); ok {
			c.Header("Access-Control-Allow-Origin", allow)
		}
	}
}

// Root serves a short service banner.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "lumen-pages",
		"hosts":   h.registry.Hosts(),
	})
}

// Health serves the liveness probe.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Hosts lists the registered internal hostnames.
func (h *Handlers) Hosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hosts": h.registry.Hosts()})
}

// TermsLocales lists locales with installed store terms documents.
func (h *Handlers) TermsLocales(c *gin.Context) {
	locales := terms.InstalledLocales(h.demoResourcesDir)
	c.JSON(http.StatusOK, gin.H{
		"locales": locales,
		"count":   len(locales),
	})
}

// resourceIDs maps the debug endpoint's names to bundle IDs.
var resourceIDs = map[string]resources.DataID{
	"credits.html":      resources.DataCreditsHTML,
	"credits.js":        resources.DataCreditsJS,
	"keyboard_utils.js": resources.DataKeyboardUtilsJS,
	"os_credits.html":   resources.DataOSCreditsHTML,
}

// Resource serves a raw bundle resource with its sniffed content type.
// Debug aid for inspecting what the bundle actually carries.
func (h *Handlers) Resource(c *gin.Context) {
	name := c.Param("name")
	id, ok := resourceIDs[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown resource"})
		return
	}
	c.Data(http.StatusOK, h.bundle.DetectMime(id), h.bundle.Data(id))
}
