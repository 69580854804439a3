package oscredits

import (
	"os"

	"go.uber.org/zap"

	"github.com/lumenbrowser/lumen/backend/internal/content"
	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/logging"
	"github.com/lumenbrowser/lumen/backend/internal/resources"
	"github.com/lumenbrowser/lumen/backend/internal/worker"
)

// Host is the hostname this source answers for.
const Host = "os-credits"

// Source serves the operating system credits document. The full document
// lives on disk in the OS image; builds without it fall back to the
// bundled copy.
type Source struct {
	creditsPath string
	bundle      *resources.Bundle
	pool        *worker.Pool
	log         *logging.Logger
	fallbacks   content.FallbackRecorder
}

// New creates the OS credits source.
func New(creditsPath string, bundle *resources.Bundle, pool *worker.Pool, log *logging.Logger, fallbacks content.FallbackRecorder) *Source {
	if fallbacks == nil {
		fallbacks = content.NopFallbackRecorder{}
	}
	return &Source{
		creditsPath: creditsPath,
		bundle:      bundle,
		pool:        pool,
		log:         log,
		fallbacks:   fallbacks,
	}
}

// Name implements content.Source.
func (s *Source) Name() string { return Host }

// StartRequest implements content.Source. The keyboard helper script is
// answered from the bundle inline; everything else reads the on-disk
// credits through the worker pool.
func (s *Source) StartRequest(path string, reply content.Callback) {
	if path == content.KeyboardUtilsJSPath {
		reply(s.bundle.Data(resources.DataKeyboardUtilsJS))
		return
	}
	h := &handler{src: s}
	go h.run(reply)
}

// handler owns one disk-backed credits request.
type handler struct {
	src      *Source
	contents []byte
}

func (h *handler) run(reply content.Callback) {
	h.src.pool.PostAndReply(h.load, func() { h.respond(reply) })
}

// load runs on the worker pool.
func (h *handler) load() {
	data, err := os.ReadFile(h.src.creditsPath)
	if err != nil {
		// respond substitutes the bundled copy when contents stay empty.
		h.src.log.Warn("OS credits not found on disk",
			zap.String("path", h.src.creditsPath), zap.Error(err))
		return
	}
	h.contents = data
}

// respond runs on the handler goroutine after the worker step.
func (h *handler) respond(reply content.Callback) {
	if len(h.contents) == 0 {
		h.src.fallbacks.RecordFallback(Host, "disk-read")
		h.contents = h.src.bundle.Data(resources.DataOSCreditsHTML)
	}
	reply(h.contents)
}

// AddContentSecurityPolicy implements content.PolicyOverrider: the
// on-disk document predates the CSP rollout and inlines its styles.
func (s *Source) AddContentSecurityPolicy() bool { return false }

// ContentSecurityPolicy implements content.PolicyOverrider.
func (s *Source) ContentSecurityPolicy(directive content.CSPDirective) (string, bool) {
	return "", false
}
