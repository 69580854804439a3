package containercredits

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/lumenbrowser/lumen/backend/internal/content"
	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/logging"
	"github.com/lumenbrowser/lumen/backend/internal/platform"
	"github.com/lumenbrowser/lumen/backend/internal/resources"
	"github.com/lumenbrowser/lumen/backend/internal/worker"
)

// Host is the hostname this source answers for.
const Host = "container-credits"

// creditsFile is the credits document inside the mounted component.
const creditsFile = "about_os_credits.html"

// Source serves credits for the Linux container runtime. The component
// holding the document is downloaded on demand, so the component manager
// is asked to mount it before any disk read happens.
type Source struct {
	component  string
	components platform.ComponentManager
	bundle     *resources.Bundle
	locale     string
	pool       *worker.Pool
	log        *logging.Logger
	fallbacks  content.FallbackRecorder
}

// New creates the container credits source.
func New(component string, components platform.ComponentManager, bundle *resources.Bundle, locale string, pool *worker.Pool, log *logging.Logger, fallbacks content.FallbackRecorder) *Source {
	if fallbacks == nil {
		fallbacks = content.NopFallbackRecorder{}
	}
	return &Source{
		component:  component,
		components: components,
		bundle:     bundle,
		locale:     locale,
		pool:       pool,
		log:        log,
		fallbacks:  fallbacks,
	}
}

// Name implements content.Source.
func (s *Source) Name() string { return Host }

// StartRequest implements content.Source.
func (s *Source) StartRequest(path string, reply content.Callback) {
	if path == content.KeyboardUtilsJSPath {
		reply(s.bundle.Data(resources.DataKeyboardUtilsJS))
		return
	}
	if s.components == nil {
		s.respondWithPlaceholder("no-component-manager", reply)
		return
	}
	s.components.Load(s.component, func(mountPath string, err error) {
		if err != nil {
			s.log.Warn("Container runtime component not available",
				zap.String("component", s.component), zap.Error(err))
			s.respondWithPlaceholder("mount", reply)
			return
		}
		h := &handler{src: s, creditsPath: filepath.Join(mountPath, creditsFile)}
		h.run(reply)
	})
}

func (s *Source) respondWithPlaceholder(reason string, reply content.Callback) {
	s.fallbacks.RecordFallback(Host, reason)
	reply([]byte(s.bundle.LocalizedString(resources.StringContainerCreditsPlaceholder, s.locale)))
}

// handler owns one mounted-credits request. It runs on the component
// manager's reply goroutine, which is this request's control goroutine.
type handler struct {
	src         *Source
	creditsPath string
	contents    []byte
}

func (h *handler) run(reply content.Callback) {
	h.src.pool.PostAndReply(h.load, func() { h.respond(reply) })
}

// load runs on the worker pool.
func (h *handler) load() {
	data, err := os.ReadFile(h.creditsPath)
	if err != nil {
		h.src.log.Warn("Container credits not found in component",
			zap.String("path", h.creditsPath), zap.Error(err))
		return
	}
	h.contents = data
}

// respond runs on the control goroutine after the worker step.
func (h *handler) respond(reply content.Callback) {
	if len(h.contents) == 0 {
		h.src.respondWithPlaceholder("disk-read", reply)
		return
	}
	reply(h.contents)
}

// AddContentSecurityPolicy implements content.PolicyOverrider: the
// component document inlines its styles, as with the OS credits.
func (s *Source) AddContentSecurityPolicy() bool { return false }

// ContentSecurityPolicy implements content.PolicyOverrider.
func (s *Source) ContentSecurityPolicy(directive content.CSPDirective) (string, bool) {
	return "", false
}
