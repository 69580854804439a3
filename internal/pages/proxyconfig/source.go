package proxyconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumenbrowser/lumen/backend/internal/content"
	"github.com/lumenbrowser/lumen/backend/internal/pages/htmlpage"
	"github.com/lumenbrowser/lumen/backend/internal/resources"
)

// Host is the hostname this source answers for.
const Host = "linux-proxy-config"

// Source renders the Linux proxy configuration help page.
type Source struct {
	bundle *resources.Bundle
	locale string

	// executable overrides os.Executable in tests.
	executable func() (string, error)
}

// New creates the proxy configuration help source.
func New(bundle *resources.Bundle, locale string) *Source {
	return &Source{bundle: bundle, locale: locale, executable: os.Executable}
}

// Name implements content.Source.
func (s *Source) Name() string { return Host }

// StartRequest implements content.Source.
func (s *Source) StartRequest(path string, reply content.Callback) {
	reply(s.render())
}

func (s *Source) render() []byte {
	product := s.bundle.LocalizedString(resources.StringProductName, s.locale)

	binary := product
	if exe, err := s.executable(); err == nil {
		binary = filepath.Base(exe)
	}

	body := fmt.Sprintf(
		s.bundle.LocalizedString(resources.StringProxyConfigBody, s.locale),
		product, product, binary,
	)

	return htmlpage.New().
		Header(s.bundle.LocalizedString(resources.StringProxyConfigTitle, s.locale), 0).
		Style("body { max-width: 70ex; padding: 2ex 5ex; }").
		Body().
		Raw(body).
		Footer().
		Bytes()
}
