package useragent

import (
	"regexp"
	"sync"
)

// PlatformEntry is a row of the operating system table.
// Match is a regular expression tested case-insensitively against the
// user agent. Version names the token that precedes the OS version.
type PlatformEntry struct {
	Name    string `yaml:"name" json:"name"`
	Match   string `yaml:"value" json:"value"`
	Version string `yaml:"version" json:"version"`
}

// DefaultPlatforms returns the built-in platform table.
// Order is significant: DetectOS lets later rows override earlier ones,
// so Android beats Linux and iPhone beats Macintosh.
func DefaultPlatforms() []PlatformEntry {
	return []PlatformEntry{
		{Name: OSWindowsPhone, Match: "Windows Phone", Version: "OS"},
		{Name: OSWindows, Match: "Win", Version: "NT"},
		{Name: OSLinux, Match: "Linux", Version: "rv"},
		{Name: OSMacintosh, Match: "Mac", Version: "OS X"},
		{Name: OSKindle, Match: "Silk", Version: "Silk"},
		{Name: OSAndroid, Match: "Android", Version: "Android"},
		{Name: OSiPhone, Match: "iPhone", Version: "OS"},
		{Name: OSPlayBook, Match: "PlayBook", Version: "OS"},
		{Name: OSBlackBerry, Match: "BlackBerry", Version: "/"},
		{Name: OSPalm, Match: "Palm", Version: "PalmOS"},
	}
}

// DetectOS scans the whole table and returns the name of the last entry
// whose pattern matches ua. It returns OSUnknown when nothing matches.
func DetectOS(ua string, table []PlatformEntry) string {
	os := OSUnknown
	for _, entry := range table {
		if platformPattern(entry.Match).MatchString(ua) {
			os = entry.Name
		}
	}
	return os
}

// compiled platform patterns, keyed by the raw table value
var platformPatterns sync.Map

// platformPattern compiles a table value once. Values that are not valid
// regular expressions are matched literally. Matching is case-insensitive
// with Unicode simple folding, so "ſ" matches "s" and the Kelvin sign "k".
func platformPattern(value string) *regexp.Regexp {
	if cached, ok := platformPatterns.Load(value); ok {
		return cached.(*regexp.Regexp)
	}

	re, err := regexp.Compile("(?i)" + value)
	if err != nil {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(value))
	}

	actual, _ := platformPatterns.LoadOrStore(value, re)
	return actual.(*regexp.Regexp)
}
