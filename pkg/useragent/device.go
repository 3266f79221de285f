package useragent

import (
	"regexp"
	"strings"
)

// (?i) uses Unicode simple case folding, so the Kelvin sign matches "k" and
// the long s matches "s".
var (
	tabletPattern = regexp.MustCompile(`(?i)tablet|ipad|playbook|silk`)
	mobilePattern = regexp.MustCompile(`Mobile|iP(hone|od|ad)|Android|BlackBerry|IEMobile|Kindle|Silk-Accelerated|(hpw|web)OS|Opera M(obi|ini)`)
)

// ClassifyDevice returns the device type reported by a user agent string.
// Tablets are checked first, then phones; anything else is a desktop.
// The result is never empty.
func ClassifyDevice(ua string) string {
	if tabletPattern.MatchString(ua) || isAndroidTablet(ua) {
		return DeviceTypeTablet
	}

	if mobilePattern.MatchString(ua) {
		return DeviceTypeMobile
	}

	return DeviceTypeDesktop
}

// isAndroidTablet reports whether some "android" token is not followed by
// "mobi" on the same line. Android phones advertise "Mobile" after the
// platform token, tablets don't.
func isAndroidTablet(ua string) bool {
	const token = "android"

	lowerUA := strings.ToLower(ua)
	offset := 0
	for {
		idx := strings.Index(lowerUA[offset:], token)
		if idx < 0 {
			return false
		}

		rest := lowerUA[offset+idx+len(token):]
		if end := strings.IndexAny(rest, "\n\r\u2028\u2029"); end >= 0 {
			rest = rest[:end]
		}
		if !strings.Contains(rest, "mobi") {
			return true
		}

		offset += idx + 1
	}
}
