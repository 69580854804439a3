package credits

import (
	"github.com/lumenbrowser/lumen/backend/internal/content"
	"github.com/lumenbrowser/lumen/backend/internal/resources"
)

// Host is the hostname this source answers for.
const Host = "credits"

// Source serves the bundled browser credits page and its script.
type Source struct {
	bundle *resources.Bundle
}

// New creates the credits source.
func New(bundle *resources.Bundle) *Source {
	return &Source{bundle: bundle}
}

// Name implements content.Source.
func (s *Source) Name() string { return Host }

// StartRequest implements content.Source. Everything is answered from the
// bundle synchronously.
func (s *Source) StartRequest(path string, reply content.Callback) {
	switch path {
	case content.CreditsJSPath:
		reply(s.bundle.Data(resources.DataCreditsJS))
	case content.KeyboardUtilsJSPath:
		reply(s.bundle.Data(resources.DataKeyboardUtilsJS))
	default:
		reply(s.bundle.Data(resources.DataCreditsHTML))
	}
}

// ContentSecurityPolicy implements content.PolicyOverrider. The credits
// page builds its DOM through a fixed trusted-types policy.
func (s *Source) ContentSecurityPolicy(directive content.CSPDirective) (string, bool) {
	if directive == content.CSPTrustedTypes {
		return "trusted-types credits-static;", true
	}
	return "", false
}

// AddContentSecurityPolicy implements content.PolicyOverrider.
func (s *Source) AddContentSecurityPolicy() bool { return true }
