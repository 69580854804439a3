package urls

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
)

//go:embed manifest.yaml
var manifestYAML []byte

// Manifest lists the internal pages rendered on the directory page.
type Manifest struct {
	// Hosts are linkable lumen:// hostnames.
	Hosts []string `yaml:"hosts"`
	// Internals are sub-pages of lumen://internals.
	Internals []string `yaml:"internals"`
	// Debug are URLs listed without links; loading them crashes or hangs
	// the renderer.
	Debug []string `yaml:"debug"`
}

// LoadManifest parses the embedded host manifest.
func LoadManifest() (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(manifestYAML, &m); err != nil {
		return nil, fmt.Errorf("parse host manifest: %w", err)
	}
	if len(m.Hosts) == 0 {
		return nil, fmt.Errorf("host manifest lists no hosts")
	}
	return &m, nil
}

// SortedHosts returns the hosts in display order.
func (m *Manifest) SortedHosts() []string {
	hosts := append([]string(nil), m.Hosts...)
	sort.Strings(hosts)
	return hosts
}

// SortedInternals returns the internals paths in display order.
func (m *Manifest) SortedInternals() []string {
	paths := append([]string(nil), m.Internals...)
	sort.Strings(paths)
	return paths
}
