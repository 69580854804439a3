package terms

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/lumenbrowser/lumen/backend/internal/content"
	"github.com/lumenbrowser/lumen/backend/internal/region"
	"github.com/lumenbrowser/lumen/backend/internal/resources"
)

// Per-locale asset locations under the demo resources root.
const (
	storeTermsPathFormat   = "store_tos/%s/terms.html"
	storePrivacyPathFormat = "store_privacy/%s/privacy.html"
)

// handler owns a single terms request: the sub-path, the disk search
// result, and nothing else. The worker pool runs the load step; respond
// runs afterwards on the handler's own goroutine, so no field needs
// locking.
type handler struct {
	src      *Source
	path     string
	contents []byte
}

// startHandler spawns the control goroutine for one request. The reply
// callback fires exactly once, after the worker-side step completes.
func startHandler(src *Source, path string, reply content.Callback) {
	h := &handler{src: src, path: path}
	go h.run(reply)
}

func (h *handler) run(reply content.Callback) {
	var load func()
	switch h.path {
	case OEMEulaPath:
		load = h.loadOEMEula
	case StoreTermsPath:
		load = h.loadStoreTerms
	case StorePrivacyPath:
		load = h.loadStorePrivacy
	}
	h.src.pool.PostAndReply(load, func() { h.respond(reply) })
}

// loadOEMEula reads the vendor EULA for the UI locale, trying the exact
// locale then the bundle fallback locale. Runs on the worker pool.
func (h *handler) loadOEMEula() {
	for _, locale := range []string{h.src.cfg.Locale, resources.FallbackLocale} {
		path := filepath.Join(h.src.cfg.OEMEulaDir, locale+".html")
		data, err := os.ReadFile(path)
		if err == nil {
			h.contents = data
			return
		}
	}
	h.src.log.Warn("OEM EULA not found on disk", zap.String("dir", h.src.cfg.OEMEulaDir))
}

// loadStoreTerms walks the locale lookup order and keeps the first store
// terms document that exists. Runs on the worker pool.
func (h *handler) loadStoreTerms() {
	for _, locale := range h.lookupOrder() {
		data, err := h.readDemoResource(storeTermsPathFormat, locale)
		if err != nil {
			h.src.log.Warn("Could not find offline store terms", zap.String("locale", locale))
			continue
		}
		h.src.log.Debug("Read offline store terms", zap.String("locale", locale))
		h.contents = data
		return
	}
	h.src.log.Error("Failed to load offline store terms for every candidate locale")
}

// loadStorePrivacy is loadStoreTerms for the privacy policy; the result
// is base64-encoded for the setup flow. Runs on the worker pool.
func (h *handler) loadStorePrivacy() {
	for _, locale := range h.lookupOrder() {
		data, err := h.readDemoResource(storePrivacyPathFormat, locale)
		if err != nil {
			h.src.log.Warn("Could not find offline store privacy policy", zap.String("locale", locale))
			continue
		}
		h.src.log.Debug("Read offline store privacy policy", zap.String("locale", locale))
		h.contents = []byte(base64.StdEncoding.EncodeToString(data))
		return
	}
	h.src.log.Error("Failed to load offline store privacy policy for every candidate locale")
}

func (h *handler) readDemoResource(format, locale string) ([]byte, error) {
	if h.src.cfg.DemoResourcesDir == "" {
		return nil, fmt.Errorf("demo resources unavailable")
	}
	return os.ReadFile(filepath.Join(h.src.cfg.DemoResourcesDir, fmt.Sprintf(format, locale)))
}

func (h *handler) lookupOrder() []string {
	deviceRegion := region.DeviceRegion(h.src.stats, h.src.log)
	return region.LookupOrder(h.src.cfg.Locale, deviceRegion)
}

// respond substitutes the bundled terms document when every candidate
// failed, then delivers the response. Runs on the handler goroutine.
func (h *handler) respond(reply content.Callback) {
	if len(h.contents) == 0 {
		h.src.fallbacks.RecordFallback(Host, h.path)
		h.contents = []byte(h.src.localizedTerms())
	}
	reply(h.contents)
}
