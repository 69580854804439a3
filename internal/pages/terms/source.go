package terms

import (
	"github.com/lumenbrowser/lumen/backend/internal/content"
	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/logging"
	"github.com/lumenbrowser/lumen/backend/internal/platform"
	"github.com/lumenbrowser/lumen/backend/internal/resources"
	"github.com/lumenbrowser/lumen/backend/internal/worker"
)

// Host is the hostname this source answers for.
const Host = "terms"

// Sub-paths with dedicated loaders.
const (
	// OEMEulaPath serves the device vendor's EULA from disk.
	OEMEulaPath = "oem"
	// StoreTermsPath serves the app store terms for the device locale.
	StoreTermsPath = "store/terms"
	// StorePrivacyPath serves the app store privacy policy, base64-encoded
	// for embedding by the setup flow.
	StorePrivacyPath = "store/privacy"
)

// WelcomeOrigin is the first-run page origin allowed to fetch terms
// cross-origin during setup.
const WelcomeOrigin = "lumen://welcome"

// Config holds the paths and locale the terms source works from.
type Config struct {
	// Locale is the application UI locale.
	Locale string
	// OEMEulaDir holds per-locale OEM EULA documents (<locale>.html).
	OEMEulaDir string
	// DemoResourcesDir is the preinstalled demo resources root.
	DemoResourcesDir string
}

// Source serves the terms-of-service pages. The bare page comes straight
// from the bundle; the sub-paths each spawn a per-request handler that
// performs its disk search on the worker pool.
type Source struct {
	cfg       Config
	bundle    *resources.Bundle
	stats     platform.Statistics
	pool      *worker.Pool
	log       *logging.Logger
	fallbacks content.FallbackRecorder
}

// New creates the terms source.
func New(cfg Config, bundle *resources.Bundle, stats platform.Statistics, pool *worker.Pool, log *logging.Logger, fallbacks content.FallbackRecorder) *Source {
	if fallbacks == nil {
		fallbacks = content.NopFallbackRecorder{}
	}
	return &Source{
		cfg:       cfg,
		bundle:    bundle,
		stats:     stats,
		pool:      pool,
		log:       log,
		fallbacks: fallbacks,
	}
}

// Name implements content.Source.
func (s *Source) Name() string { return Host }

// StartRequest implements content.Source.
func (s *Source) StartRequest(path string, reply content.Callback) {
	switch path {
	case "":
		reply([]byte(s.localizedTerms()))
	case OEMEulaPath, StoreTermsPath, StorePrivacyPath:
		startHandler(s, path, reply)
	default:
		reply(nil)
	}
}

func (s *Source) localizedTerms() string {
	return s.bundle.LocalizedString(resources.StringTermsHTML, s.cfg.Locale)
}

// AllowOriginFor implements content.OriginAllower: the first-run flow
// fetches terms via XHR.
func (s *Source) AllowOriginFor(origin string) (string, bool) {
	if origin == WelcomeOrigin {
		return origin, true
	}
	return "", false
}
