// Package useragent classifies HTTP User-Agent strings by device type,
// operating system and browser using small, ordered lookup tables.
//
// It identifies:
//   - Device type – mobile, tablet or desktop
//   - Operating system – Windows, Linux, Macintosh, Android, iPhone, …
//   - Browser name and version – Google Chrome, Safari, Mozilla Firefox, …
//   - Crawlers and device models (via github.com/mssola/useragent)
//
// # Architecture
//
// Each concern lives in its own file: device.go (ClassifyDevice), os.go
// (DetectOS and the platform table), browser.go (DetectBrowser and the browser
// table). Parse combines them into a UserAgent value. tables.go lets a
// deployment replace the tables with a YAML document at start-up.
//
// Table scans never short-circuit. Every row is tested and each match
// overwrites the previous result, so the last matching row wins. The built-in
// tables depend on that order: "Android" comes after "Linux" and "Chrome/"
// after "Safari/".
//
// DetectBrowser treats any user agent containing "Opera" as matching every
// row. Legacy Presto-based Opera strings therefore resolve to the last row
// of the table, which is Opera in the default table.
//
// # Usage
//
//	ua := useragent.Parse(r.UserAgent())
//	log.Printf("client=%s", ua.ShortIdentifier())
//
//	if ua.DeviceType() == useragent.DeviceTypeMobile {
//	    // serve mobile-optimised assets
//	}
//
// Custom tables:
//
//	tables, err := useragent.LoadTablesFile("tables.yaml")
//	if err != nil {
//	    // errors.Is(err, useragent.ErrInvalidTables)
//	}
//	ua := tables.Parse(r.UserAgent())
//
// # Error Handling
//
// Detection never fails. Unknown parts degrade to OSUnknown, BrowserUnknown,
// VersionUnknown and DeviceTypeDesktop. Only table loading returns errors:
// ErrInvalidTables and ErrReadingTables.
package useragent
