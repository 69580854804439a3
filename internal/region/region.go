package region

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/logging"
	"github.com/lumenbrowser/lumen/backend/internal/platform"
)

// Broad region labels used as second-tier locale candidates.
const (
	Apac = "apac"
	Emea = "emea"
	Eu   = "eu"
)

// DefaultRegion is assumed when the device region cannot be read.
const DefaultRegion = "us"

// fallbackLocale is the last candidate in every lookup order. The casing
// is deliberate: bundled store assets are keyed on the lowercase form.
const fallbackLocale = "en-us"

var apacCountries = []string{
	"au", "bd", "cn", "hk", "id", "in", "jp", "kh", "la", "lk",
	"mm", "mn", "my", "nz", "np", "ph", "sg", "th", "tw", "vn",
}

var emeaCountries = []string{
	"na", "za", "am", "az", "ch", "eg", "ge", "il", "is", "ke",
	"kg", "li", "mk", "no", "rs", "ru", "tr", "tz", "ua", "ug",
}

var euCountries = []string{
	"at", "be", "bg", "cz", "dk", "es", "fi", "fr", "gb", "gr", "hr", "hu",
	"ie", "it", "lt", "lu", "lv", "nl", "pl", "pt", "ro", "se", "si", "sk",
}

// countryRegions maps two-letter country codes to their broad region.
// The AMERICAS region defaults to en-us and is deliberately absent.
var countryRegions = buildCountryRegions()

func buildCountryRegions() map[string]string {
	m := make(map[string]string, len(apacCountries)+len(emeaCountries)+len(euCountries))
	for _, c := range apacCountries {
		m[c] = Apac
	}
	for _, c := range emeaCountries {
		m[c] = Emea
	}
	for _, c := range euCountries {
		m[c] = Eu
	}
	return m
}

// CountryRegion returns the broad region label for a two-letter country
// code, case-insensitively. Codes outside the three tables report false.
func CountryRegion(country string) (string, bool) {
	label, ok := countryRegions[strings.ToLower(country)]
	return label, ok
}

// DeviceRegion reads the device region from the statistics store,
// defaulting to "us" when the key is absent. Complex region codes such as
// "ca.ansi" keep only their first dot-delimited segment.
func DeviceRegion(stats platform.Statistics, log *logging.Logger) string {
	region, found := stats.MachineStatistic(platform.RegionKey)
	if !found {
		log.Warn("Device region not found in statistics store, defaulting to US")
		return DefaultRegion
	}
	if head, _, cut := strings.Cut(region, "."); cut {
		region = head
	}
	region = strings.ToLower(strings.TrimSpace(region))
	if region == "" {
		log.Warn("Device region statistic is empty, defaulting to US")
		return DefaultRegion
	}
	return region
}

// LookupOrder builds the ordered locale candidates for locating a bundled
// store document:
//   - base language of the UI locale combined with the device region
//   - the region's broad label (apac/emea/eu), when the region is known
//   - en-us, always
func LookupOrder(locale, deviceRegion string) []string {
	order := make([]string, 0, 3)
	order = append(order, baseLanguage(locale)+"-"+strings.ToLower(deviceRegion))

	if label, ok := CountryRegion(deviceRegion); ok {
		order = append(order, label)
	}

	return append(order, fallbackLocale)
}

// baseLanguage extracts the lowercase base language of a BCP 47 locale.
// Unparseable locales fall back to the first hyphen-delimited segment.
func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err == nil {
		base, conf := tag.Base()
		if conf != language.No {
			return strings.ToLower(base.String())
		}
	}
	head, _, _ := strings.Cut(locale, "-")
	return strings.ToLower(head)
}
