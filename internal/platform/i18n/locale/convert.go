// Package locale converts between CLDR and BCP47 locale notations and
// resolves caller-supplied locales to the set the date formatter supports.
package locale

import "strings"

// CLDRToBCP47 converts a CLDR-style locale (en_US, root) to BCP47 notation
// (en-US, und).
//
// Only the first underscore and the first "root" are replaced, and the input
// is not validated: "zh_Hans_CN" becomes "zh-Hans_CN".
func CLDRToBCP47(locale string) string {
	return strings.Replace(strings.Replace(locale, "_", "-", 1), "root", "und", 1)
}

// BCP47ToCLDR converts a BCP47 locale (en-US, und) to CLDR notation
// (en_US, root).
//
// Only the first hyphen and the first "und" are replaced. This is not a full
// inverse of CLDRToBCP47 for multi-subtag locales or for tokens that merely
// contain "und" or "root".
func BCP47ToCLDR(locale string) string {
	return strings.Replace(strings.Replace(locale, "-", "_", 1), "und", "root", 1)
}
