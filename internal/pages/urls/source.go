package urls

import (
	"html"

	"github.com/lumenbrowser/lumen/backend/internal/content"
	"github.com/lumenbrowser/lumen/backend/internal/pages/htmlpage"
	"github.com/lumenbrowser/lumen/backend/internal/resources"
)

// Host is the hostname this source answers for.
const Host = "urls"

// Source renders the directory of internal pages.
type Source struct {
	manifest *Manifest
	bundle   *resources.Bundle
	locale   string
}

// New creates the directory page source.
func New(manifest *Manifest, bundle *resources.Bundle, locale string) *Source {
	return &Source{manifest: manifest, bundle: bundle, locale: locale}
}

// Name implements content.Source.
func (s *Source) Name() string { return Host }

// StartRequest implements content.Source. The page is assembled from the
// embedded manifest; every sub-path serves the same document.
func (s *Source) StartRequest(path string, reply content.Callback) {
	reply(s.render())
}

func (s *Source) render() []byte {
	b := htmlpage.New().
		Header(s.bundle.LocalizedString(resources.StringURLsTitle, s.locale), 0).
		Body()

	b.Raw("<h2>List of Lumen URLs</h2>\n<ul>\n")
	for _, host := range s.manifest.SortedHosts() {
		h := html.EscapeString(host)
		b.Raw("<li><a href='/pages/" + h + "/'>lumen://" + h + "</a></li>\n")
	}

	b.Raw("</ul><a id=\"internals\"><h2>List of lumen://internals pages</h2></a>\n<ul>\n")
	for _, path := range s.manifest.SortedInternals() {
		p := html.EscapeString(path)
		b.Raw("<li><a href='/pages/internals/" + p + "'>lumen://internals/" + p + "</a></li>\n")
	}

	b.Raw("</ul>\n<h2>For Debug</h2>\n" +
		"<p>The following pages are for debugging purposes only. Because they " +
		"crash or hang the renderer, they're not linked directly; you can type " +
		"them into the address bar if you need them.</p>\n<ul>")
	for _, u := range s.manifest.Debug {
		b.Raw("<li>")
		b.Text(u)
		b.Raw("</li>\n")
	}
	b.Raw("</ul>\n")

	return b.Footer().Bytes()
}
