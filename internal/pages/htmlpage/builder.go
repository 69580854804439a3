package htmlpage

import (
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// titlePolicy strips any markup from strings interpolated into page
// chrome. Localized strings come from the bundle, but they pass through
// translation pipelines the build does not control.
var titlePolicy = bluemonday.StrictPolicy()

// Builder assembles the skeleton shared by the static internal pages.
type Builder struct {
	sb strings.Builder
}

// New creates an empty page builder.
func New() *Builder {
	return &Builder{}
}

// Header writes the document head. A positive refresh adds a meta refresh
// tag with that many seconds. The title is sanitized and escaped.
func (b *Builder) Header(title string, refresh int) *Builder {
	b.sb.WriteString("<!DOCTYPE HTML>\n<html>\n<head>\n")
	if title != "" {
		// Sanitize already entity-escapes what survives.
		b.sb.WriteString("<title>")
		b.sb.WriteString(titlePolicy.Sanitize(title))
		b.sb.WriteString("</title>\n")
	}
	b.sb.WriteString("<meta charset='utf-8'>\n")
	if refresh > 0 {
		b.sb.WriteString("<meta http-equiv='refresh' content='")
		b.sb.WriteString(strconv.Itoa(refresh))
		b.sb.WriteString("'/>\n")
	}
	return b
}

// Style writes a raw style block into the head.
func (b *Builder) Style(css string) *Builder {
	b.sb.WriteString("<style>")
	b.sb.WriteString(css)
	b.sb.WriteString("</style>\n")
	return b
}

// Body closes the head and opens the body.
func (b *Builder) Body() *Builder {
	b.sb.WriteString("</head>\n<body>\n")
	return b
}

// Raw appends pre-built HTML verbatim.
func (b *Builder) Raw(html string) *Builder {
	b.sb.WriteString(html)
	return b
}

// Text appends escaped text content.
func (b *Builder) Text(s string) *Builder {
	b.sb.WriteString(html.EscapeString(s))
	return b
}

// Footer closes body and document.
func (b *Builder) Footer() *Builder {
	b.sb.WriteString("</body>\n</html>\n")
	return b
}

// Bytes returns the assembled document.
func (b *Builder) Bytes() []byte {
	return []byte(b.sb.String())
}

// String returns the assembled document.
func (b *Builder) String() string {
	return b.sb.String()
}
