package builder

import (
	"golang.org/x/text/language"
)

var englishMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Index order matches monthLocales; English first so it is the matcher default.
var monthTables = [][12]string{
	englishMonths,
	{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
}

var monthLocales = []language.Tag{
	language.English,
	language.French,
	language.German,
	language.Spanish,
}

var monthMatcher = language.NewMatcher(monthLocales)

// MonthNames returns the twelve month names for the supported locale closest
// to locale. Unparseable or unsupported locales yield English.
func MonthNames(locale string) []string {
	names := englishMonths
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err == nil && len(tags) > 0 {
		if _, index, confidence := monthMatcher.Match(tags...); confidence != language.No {
			names = monthTables[index]
		}
	}
	return names[:]
}
