package terms

import (
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// InstalledLocales lists the locales with a complete store terms document
// under the demo resources root. Used by the diagnostics endpoint to show
// which locale candidates can actually be satisfied.
func InstalledLocales(demoResourcesDir string) []string {
	if demoResourcesDir == "" {
		return nil
	}

	matches, err := doublestar.Glob(os.DirFS(demoResourcesDir), "store_tos/*/terms.html")
	if err != nil {
		return nil
	}

	locales := make([]string, 0, len(matches))
	for _, m := range matches {
		parts := strings.Split(m, "/")
		if len(parts) == 3 {
			locales = append(locales, parts[1])
		}
	}
	sort.Strings(locales)
	return locales
}
