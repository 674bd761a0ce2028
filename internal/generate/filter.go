package generate

import "strings"

// languageCodeSuffixes are the localized-variant markers the catalog encodes
// as a trailing dotted segment (ISO 639-1 codes of the scripts the symbol
// set ships variants for).
var languageCodeSuffixes = map[string]struct{}{
	"ar": {},
	"bn": {},
	"el": {},
	"gu": {},
	"he": {},
	"hi": {},
	"ja": {},
	"km": {},
	"kn": {},
	"ko": {},
	"ml": {},
	"mr": {},
	"my": {},
	"or": {},
	"pa": {},
	"si": {},
	"ta": {},
	"te": {},
	"th": {},
	"zh": {},
}

// rtlSuffix marks right-to-left symbol variants.
const rtlSuffix = ".rtl"

// include reports whether name survives localization filtering under opts.
func include(name string, opts Options) bool {
	if !opts.IncludeRTL && strings.HasSuffix(name, rtlSuffix) {
		return false
	}
	if !opts.IncludeLocalized {
		if _, ok := languageCodeSuffixes[lastSegment(name)]; ok {
			return false
		}
	}
	return true
}

func lastSegment(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
