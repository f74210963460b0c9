package locale

import (
	"strings"

	"github.com/goodsign/monday"
	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// DefaultLocale is used when neither the caller nor the OS names a locale.
const DefaultLocale = "en-US"

// Resolution is a caller locale matched against the formatter's locales.
type Resolution struct {
	// Tag is the BCP47 tag of the matched locale.
	Tag language.Tag
	// Locale is the matched locale in CLDR notation.
	Locale monday.Locale
	// TwelveHour reports whether the matched region writes times with AM/PM.
	TwelveHour bool
}

var (
	supportedLocales []monday.Locale
	supportedTags    []language.Tag
	matcher          language.Matcher
)

// twelveHourRegions lists regions whose customary short time uses a 12-hour
// clock.
var twelveHourRegions = map[string]struct{}{
	"US": {}, "CA": {}, "AU": {}, "NZ": {}, "IN": {}, "PH": {}, "PK": {},
	"BD": {}, "EG": {}, "SA": {}, "KR": {}, "TW": {}, "HK": {}, "MY": {},
}

func init() {
	supportedLocales = []monday.Locale{monday.LocaleEnUS}
	supportedTags = []language.Tag{language.AmericanEnglish}
	for _, l := range monday.ListLocales() {
		if l == monday.LocaleEnUS {
			continue
		}
		tag, err := language.Parse(CLDRToBCP47(string(l)))
		if err != nil {
			continue
		}
		supportedLocales = append(supportedLocales, l)
		supportedTags = append(supportedTags, tag)
	}
	matcher = language.NewMatcher(supportedTags)
}

// Supported returns the locales the formatter can render, in CLDR notation.
// The default locale comes first.
func Supported() []monday.Locale {
	out := make([]monday.Locale, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// Resolve matches value, in either notation, to the closest supported
// locale. Empty, malformed and unmatched values resolve to en_US. The clock
// convention follows the requested region, which may differ from the
// matched locale's region (en-AU renders with en_GB names on a 12-hour
// clock).
func Resolve(value string) Resolution {
	idx := 0
	requested, ok := parseTag(value)
	if ok {
		if _, matched, confidence := matcher.Match(requested); confidence != language.No {
			idx = matched
		}
	}
	tag := supportedTags[idx]
	region, confidence := tag.Region()
	if ok {
		if r, c := requested.Region(); c != language.No {
			region, confidence = r, c
		}
	}
	_, twelveHour := twelveHourRegions[region.String()]
	if confidence == language.No {
		twelveHour = false
	}
	return Resolution{
		Tag:        tag,
		Locale:     supportedLocales[idx],
		TwelveHour: twelveHour,
	}
}

// parseTag accepts both notations. Every separator is normalized here,
// unlike the single-replacement conversions.
func parseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	value = strings.ReplaceAll(value, "_", "-")
	if value == "root" || strings.HasPrefix(value, "root-") {
		value = "und" + strings.TrimPrefix(value, "root")
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// System returns the preferred OS locale, or DefaultLocale when it cannot be
// detected.
func System() string {
	locales, err := golocale.GetLocales()
	if err != nil || len(locales) == 0 {
		return DefaultLocale
	}
	if first := strings.TrimSpace(locales[0]); first != "" {
		return first
	}
	return DefaultLocale
}
