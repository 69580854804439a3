package urls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenbrowser/lumen/backend/internal/resources"
)

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest()
	require.NoError(t, err)

	assert.Contains(t, m.Hosts, "credits")
	assert.Contains(t, m.Hosts, "terms")
	assert.NotEmpty(t, m.Internals)
	assert.NotEmpty(t, m.Debug)
}

func TestManifestSorting(t *testing.T) {
	m := &Manifest{
		Hosts:     []string{"terms", "credits", "urls"},
		Internals: []string{"network", "gpu"},
	}

	assert.Equal(t, []string{"credits", "terms", "urls"}, m.SortedHosts())
	assert.Equal(t, []string{"gpu", "network"}, m.SortedInternals())
	// Originals untouched
	assert.Equal(t, []string{"terms", "credits", "urls"}, m.Hosts)
}

func TestSourceRendersDirectory(t *testing.T) {
	m, err := LoadManifest()
	require.NoError(t, err)
	src := New(m, resources.MustLoad(), "en-US")

	var body []byte
	calls := 0
	src.StartRequest("", func(b []byte) {
		body = b
		calls++
	})

	require.Equal(t, 1, calls)
	page := string(body)
	assert.Contains(t, page, "<title>Lumen URLs</title>")
	assert.Contains(t, page, "lumen://credits")
	assert.Contains(t, page, "lumen://internals/gpu")
	assert.Contains(t, page, "lumen://crash")
	assert.NotContains(t, page, "href='lumen://crash'")
}

func TestSourceIgnoresSubPath(t *testing.T) {
	m, err := LoadManifest()
	require.NoError(t, err)
	src := New(m, resources.MustLoad(), "en-US")

	var a, b []byte
	src.StartRequest("", func(body []byte) { a = body })
	src.StartRequest("anything/else", func(body []byte) { b = body })

	assert.Equal(t, a, b)
}
