package content

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps internal hostnames to their content sources. The table
// makes the supported host set explicit: dispatch is a single lookup, and
// unknown hosts degrade to an empty response instead of an error.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register adds a source under its hostname.
func (r *Registry) Register(src Source) error {
	name := src.Name()
	if name == "" {
		return fmt.Errorf("source hostname cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sources[name]; exists {
		return fmt.Errorf("source already registered: %s", name)
	}
	r.sources[name] = src
	return nil
}

// Get retrieves a source by hostname.
func (r *Registry) Get(host string) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.sources[host]
	return src, ok
}

// Hosts returns all registered hostnames, sorted.
func (r *Registry) Hosts() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hosts := make([]string, 0, len(r.sources))
	for name := range r.sources {
		hosts = append(hosts, name)
	}
	sort.Strings(hosts)
	return hosts
}

// StartRequest dispatches a request to the source registered for host.
// Unknown hosts answer immediately with an empty body. The reply callback
// fires exactly once either way.
func (r *Registry) StartRequest(host, path string, reply Callback) {
	src, ok := r.Get(host)
	if !ok {
		reply(nil)
		return
	}
	src.StartRequest(path, reply)
}
