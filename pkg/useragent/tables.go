package useragent

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Tables bundles the platform and browser tables used by Parse.
type Tables struct {
	Platforms []PlatformEntry `yaml:"platforms"`
	Browsers  []BrowserEntry  `yaml:"browsers"`
}

// DefaultTables returns the built-in platform and browser tables.
func DefaultTables() Tables {
	return Tables{
		Platforms: DefaultPlatforms(),
		Browsers:  DefaultBrowsers(),
	}
}

// LoadTables decodes a YAML table document:
//
//	platforms:
//	  - {name: Windows, value: Win, version: NT}
//	browsers:
//	  - {searchKey: "Chrome/", value: Google Chrome}
//
// A section that is missing or empty keeps the built-in table.
func LoadTables(r io.Reader) (Tables, error) {
	var doc Tables
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return DefaultTables(), errors.Join(ErrInvalidTables, err)
	}

	if err := doc.validate(); err != nil {
		return DefaultTables(), errors.Join(ErrInvalidTables, err)
	}

	defaults := DefaultTables()
	if len(doc.Platforms) == 0 {
		doc.Platforms = defaults.Platforms
	}
	if len(doc.Browsers) == 0 {
		doc.Browsers = defaults.Browsers
	}

	return doc, nil
}

// LoadTablesFile reads tables from a YAML file. An empty path returns the
// built-in tables.
func LoadTablesFile(path string) (Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return DefaultTables(), errors.Join(ErrReadingTables, err)
	}
	defer f.Close()

	return LoadTables(f)
}

func (t Tables) validate() error {
	var errs []error
	for i, p := range t.Platforms {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("platform %d: %w", i, ErrEmptyTableName))
		}
		if p.Match == "" {
			errs = append(errs, fmt.Errorf("platform %d: %w", i, ErrEmptyTableKey))
		} else if _, err := regexp.Compile("(?i)" + p.Match); err != nil {
			errs = append(errs, fmt.Errorf("platform %d: %w", i, err))
		}
	}
	for i, b := range t.Browsers {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("browser %d: %w", i, ErrEmptyTableName))
		}
		if b.SearchKey == "" {
			errs = append(errs, fmt.Errorf("browser %d: %w", i, ErrEmptyTableKey))
		}
	}
	return errors.Join(errs...)
}

// Parse runs device, OS and browser detection against these tables.
func (t Tables) Parse(ua string) UserAgent {
	browser := DetectBrowser(ua, t.Browsers)
	details := inspect(ua)

	return UserAgent{
		userAgent:   ua,
		deviceType:  ClassifyDevice(ua),
		deviceModel: details.model,
		os:          DetectOS(ua, t.Platforms),
		browserName: browser.Name,
		browserVer:  browser.Version,
		bot:         details.bot,
		botName:     details.botName,
	}
}
