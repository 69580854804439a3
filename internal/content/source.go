package content

// Callback delivers a finished response body. Every request invokes its
// callback exactly once, from either the dispatching goroutine (sync
// sources) or the request's own control goroutine (async sources).
type Callback func(body []byte)

// Source produces the content behind one internal hostname.
type Source interface {
	// Name is the hostname the source answers for.
	Name() string
	// StartRequest begins producing the document for a sub-path. Sources
	// that can answer from memory invoke reply before returning; sources
	// needing disk or component access return immediately and reply later.
	StartRequest(path string, reply Callback)
}

// CSPDirective names a Content-Security-Policy directive a source may
// override.
type CSPDirective string

const (
	CSPDefaultSrc   CSPDirective = "default-src"
	CSPScriptSrc    CSPDirective = "script-src"
	CSPTrustedTypes CSPDirective = "trusted-types"
)

// PolicyOverrider is implemented by sources that adjust the host's
// default security policy.
type PolicyOverrider interface {
	// AddContentSecurityPolicy reports whether the default CSP should be
	// attached at all.
	AddContentSecurityPolicy() bool
	// ContentSecurityPolicy returns an override for a directive. ok is
	// false when the host default applies.
	ContentSecurityPolicy(directive CSPDirective) (policy string, ok bool)
}

// OriginAllower is implemented by sources that permit cross-origin reads
// from specific internal origins.
type OriginAllower interface {
	// AllowOriginFor returns the Access-Control-Allow-Origin value for a
	// requesting origin. ok is false when the host default applies.
	AllowOriginFor(origin string) (allow string, ok bool)
}
