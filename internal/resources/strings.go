package resources

import "strings"

// FallbackLocale is used when a string has no translation for the
// requested locale or its base language.
const FallbackLocale = "en-US"

// stringTables maps locale -> string ID -> value. Tables other than the
// fallback locale may be partial; lookup falls through per string.
var stringTables = map[string]map[StringID]string{
	"en-US": {
		StringTermsHTML: `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Terms of Service</title>
</head>
<body>
<h1>Lumen Browser Terms of Service</h1>
<p>By using the Lumen browser you agree to these terms. The software is
provided "as is", without warranty of any kind. Your use of bundled
services is additionally governed by the service-specific terms presented
during setup.</p>
<h2>Privacy</h2>
<p>The browser does not transmit browsing data to the vendor except where
you explicitly enable sync or crash reporting.</p>
</body>
</html>
`,
		StringContainerCreditsPlaceholder: "<!DOCTYPE html><html><body><h1>Linux container credits</h1>" +
			"<p>Credits are available after the Linux container has been installed.</p></body></html>",
		StringProxyConfigTitle: "Proxy configuration on Linux",
		StringProxyConfigBody: `<p>When running %s on Linux, the system proxy settings come from your
desktop environment. %s reads the GNOME or KDE proxy configuration when one
of those sessions is active, and falls back to the standard environment
variables otherwise.</p>
<p>To use a custom configuration for this binary only, set the
<code>--proxy-server</code> flag when launching <code>%s</code>, or export
<code>http_proxy</code> / <code>https_proxy</code> in the launching shell.</p>`,
		StringProductName: "Lumen",
		StringURLsTitle:   "Lumen URLs",
	},
	"de": {
		StringProxyConfigTitle: "Proxy-Konfiguration unter Linux",
		StringProductName:      "Lumen",
		StringURLsTitle:        "Lumen-URLs",
	},
	"ja": {
		StringProxyConfigTitle: "Linux でのプロキシ設定",
		StringProductName:      "Lumen",
	},
}

// LocalizedString returns the string for the given locale, falling back to
// the locale's base language and then to en-US. Unknown IDs yield "".
func (b *Bundle) LocalizedString(id StringID, locale string) string {
	for _, candidate := range localeCandidates(locale) {
		if table, ok := stringTables[candidate]; ok {
			if s, ok := table[id]; ok {
				return s
			}
		}
	}
	return ""
}

func localeCandidates(locale string) []string {
	candidates := []string{locale}
	if base, _, found := strings.Cut(locale, "-"); found {
		candidates = append(candidates, base)
	}
	if locale != FallbackLocale {
		candidates = append(candidates, FallbackLocale)
	}
	return candidates
}
