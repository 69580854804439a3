package resources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMaterializesAllResources(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	for id := range dataFiles {
		assert.True(t, b.Has(id), "resource %d missing", id)
		assert.NotEmpty(t, b.Data(id), "resource %d empty", id)
	}
}

func TestCreditsHTMLDecompressed(t *testing.T) {
	b := MustLoad()

	html := string(b.Data(DataCreditsHTML))
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"), "credits should be stored decompressed")
	assert.Contains(t, html, "Credits")
}

func TestDataUnknownID(t *testing.T) {
	b := MustLoad()

	assert.Nil(t, b.Data(DataID(9999)))
	assert.False(t, b.Has(DataID(9999)))
	assert.Equal(t, "application/octet-stream", b.DetectMime(DataID(9999)))
}

func TestDetectMime(t *testing.T) {
	b := MustLoad()

	assert.Contains(t, b.DetectMime(DataCreditsHTML), "text/html")
}

func TestLocalizedStringFallback(t *testing.T) {
	b := MustLoad()

	t.Run("exact locale", func(t *testing.T) {
		s := b.LocalizedString(StringProxyConfigTitle, "de")
		assert.Equal(t, "Proxy-Konfiguration unter Linux", s)
	})

	t.Run("base language from regional locale", func(t *testing.T) {
		s := b.LocalizedString(StringProxyConfigTitle, "de-AT")
		assert.Equal(t, "Proxy-Konfiguration unter Linux", s)
	})

	t.Run("partial table falls back to en-US", func(t *testing.T) {
		s := b.LocalizedString(StringTermsHTML, "de")
		assert.Contains(t, s, "Terms of Service")
	})

	t.Run("unknown locale falls back to en-US", func(t *testing.T) {
		s := b.LocalizedString(StringURLsTitle, "xx-YY")
		assert.Equal(t, "Lumen URLs", s)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.Empty(t, b.LocalizedString(StringID(9999), "en-US"))
	})
}
