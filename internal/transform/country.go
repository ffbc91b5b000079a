package transform

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CountryFromISO resolves an ISO 3166-1 alpha-2 code to its English
// country name. The code is trimmed and uppercased first. Lookup order:
// the locale display data, then a small static table, then the code
// itself unchanged, so any non-empty input produces a value.
func CountryFromISO(args []any) (any, bool) {
	if len(args) == 0 || args[0] == nil {
		return nil, false
	}

	code := strings.ToUpper(strings.TrimSpace(stringify(args[0])))
	if code == "" {
		return nil, false
	}

	// ParseRegion accepts placeholder codes like "ZZ" (unknown) and the
	// user-assigned range, and the display data names them "Unknown
	// Region". Only real countries may consult the display tables;
	// everything else falls through to the static table or passes
	// through unchanged.
	if region, err := language.ParseRegion(code); err == nil && region.IsCountry() {
		if name := display.English.Regions().Name(region); name != "" {
			return name, true
		}
	}

	if name, ok := countryNames[code]; ok {
		return name, true
	}

	return code, true
}

// countryNames backs up the locale data for codes the display tables
// miss. Keyed by uppercase alpha-2 code.
var countryNames = map[string]string{
	"AU": "Australia",
	"BE": "Belgium",
	"CA": "Canada",
	"CH": "Switzerland",
	"DE": "Germany",
	"DK": "Denmark",
	"ES": "Spain",
	"FR": "France",
	"GB": "United Kingdom",
	"IE": "Ireland",
	"IT": "Italy",
	"NL": "Netherlands",
	"NO": "Norway",
	"NZ": "New Zealand",
	"PL": "Poland",
	"PT": "Portugal",
	"SE": "Sweden",
	"US": "United States",
}
