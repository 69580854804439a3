package content

// Well-known script sub-paths served by internal pages.
const (
	CreditsJSPath       = "credits.js"
	StatsJSPath         = "stats.js"
	StringsJSPath       = "strings.js"
	KeyboardUtilsJSPath = "keyboard_utils.js"
)

var scriptPaths = map[string]struct{}{
	CreditsJSPath:       {},
	StatsJSPath:         {},
	StringsJSPath:       {},
	KeyboardUtilsJSPath: {},
}

// MimeType classifies a sub-path: known script paths are JavaScript,
// everything else is HTML.
func MimeType(path string) string {
	if _, ok := scriptPaths[path]; ok {
		return "application/javascript"
	}
	return "text/html"
}
