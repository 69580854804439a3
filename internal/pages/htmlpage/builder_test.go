package htmlpage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderSkeleton(t *testing.T) {
	page := New().Header("Lumen URLs", 0).Body().Raw("<h2>hello</h2>").Footer().String()

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE HTML>"))
	assert.Contains(t, page, "<title>Lumen URLs</title>")
	assert.Contains(t, page, "<meta charset='utf-8'>")
	assert.Contains(t, page, "<h2>hello</h2>")
	assert.True(t, strings.HasSuffix(page, "</body>\n</html>\n"))
	assert.NotContains(t, page, "refresh")
}

func TestBuilderRefreshMeta(t *testing.T) {
	page := New().Header("t", 5).Body().Footer().String()

	assert.Contains(t, page, "<meta http-equiv='refresh' content='5'/>")
}

func TestBuilderEmptyTitleOmitted(t *testing.T) {
	page := New().Header("", 0).Body().Footer().String()

	assert.NotContains(t, page, "<title>")
}

func TestBuilderTitleSanitized(t *testing.T) {
	page := New().Header("<script>alert(1)</script>Legit & Co", 0).Body().Footer().String()

	assert.NotContains(t, page, "<script>")
	assert.Contains(t, page, "Legit &amp; Co")
}

func TestBuilderTextEscaped(t *testing.T) {
	page := New().Header("t", 0).Body().Text("<b>binary</b>").Footer().String()

	assert.NotContains(t, page, "<b>binary</b>")
	assert.Contains(t, page, "&lt;b&gt;binary&lt;/b&gt;")
}
