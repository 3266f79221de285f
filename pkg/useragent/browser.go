package useragent

import (
	"strings"
)

// Browser represents browser information
type Browser struct {
	Name    string `json:"browserName"`
	Version string `json:"browserVersion"`
}

// BrowserEntry is a row of the browser table.
// SearchKey is matched as a case-sensitive substring, Name is reported on a match.
type BrowserEntry struct {
	SearchKey string `yaml:"searchKey" json:"searchKey"`
	Name      string `yaml:"value" json:"value"`
}

// DefaultBrowsers returns the built-in browser table.
// Chromium-based browsers also carry "Safari/" and "Chrome/", so the more
// specific keys come last and override the generic ones.
func DefaultBrowsers() []BrowserEntry {
	return []BrowserEntry{
		{SearchKey: "Firefox/", Name: BrowserFirefox},
		{SearchKey: "Safari/", Name: BrowserSafari},
		{SearchKey: "Chrome/", Name: BrowserChrome},
		{SearchKey: "Edg/", Name: BrowserEdge},
		{SearchKey: "EdgA/", Name: BrowserEdge},
		{SearchKey: "OPR/", Name: BrowserOpera},
	}
}

// DetectBrowser scans the whole table; every matching entry overwrites the
// result, so the last match wins.
//
// An entry matches when its SearchKey occurs in ua, or when ua contains
// "Opera" at all. In the second case the entry's own name is still used,
// which means legacy Opera user agents are attributed to the last table row.
// The version is the four characters following the SearchKey and is only
// updated by entries whose key was actually found. Characters are runes, so
// a character outside the BMP counts once, not as two UTF-16 units.
func DetectBrowser(ua string, table []BrowserEntry) Browser {
	result := Browser{Name: BrowserUnknown, Version: VersionUnknown}
	hasOpera := strings.Contains(ua, operaMarker)

	for _, entry := range table {
		idx := strings.Index(ua, entry.SearchKey)
		if idx < 0 && !hasOpera {
			continue
		}

		result.Name = entry.Name
		if idx >= 0 {
			result.Version = takeRunes(ua[idx+len(entry.SearchKey):], versionLength)
		}
	}

	return result
}

// takeRunes returns at most n leading characters of s.
func takeRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
