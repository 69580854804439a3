package proxyconfig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenbrowser/lumen/backend/internal/resources"
)

func TestProxyConfigPage(t *testing.T) {
	src := New(resources.MustLoad(), "en-US")
	src.executable = func() (string, error) { return "/usr/bin/lumen-browser", nil }

	var body []byte
	calls := 0
	src.StartRequest("", func(b []byte) {
		body = b
		calls++
	})

	require.Equal(t, 1, calls)
	page := string(body)
	assert.Contains(t, page, "<title>Proxy configuration on Linux</title>")
	assert.Contains(t, page, "max-width: 70ex")
	assert.Contains(t, page, "lumen-browser")
	assert.Contains(t, page, "Lumen")
}

func TestProxyConfigExecutableUnavailable(t *testing.T) {
	src := New(resources.MustLoad(), "en-US")
	src.executable = func() (string, error) { return "", errors.New("nope") }

	var body []byte
	src.StartRequest("", func(b []byte) { body = b })

	// Falls back to the product name in place of the binary name.
	assert.Contains(t, string(body), "<code>Lumen</code>")
}

func TestProxyConfigLocalizedTitle(t *testing.T) {
	src := New(resources.MustLoad(), "de")
	src.executable = func() (string, error) { return "/usr/bin/lumen", nil }

	var body []byte
	src.StartRequest("", func(b []byte) { body = b })

	assert.Contains(t, string(body), "Proxy-Konfiguration unter Linux")
}
