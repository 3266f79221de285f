package useragent

// Device types represent the category of device that made the request
const (
	// DeviceTypeMobile identifies smartphones and other handhelds
	DeviceTypeMobile = "mobile"

	// DeviceTypeTablet identifies tablets (iPad, Android tablets, PlayBook, Kindle)
	DeviceTypeTablet = "tablet"

	// DeviceTypeDesktop identifies everything that is neither mobile nor tablet
	DeviceTypeDesktop = "desktop"
)

// Operating system names as reported by DefaultPlatforms
const (
	OSWindowsPhone = "Windows Phone"
	OSWindows      = "Windows"
	OSLinux        = "Linux"
	OSMacintosh    = "Macintosh"
	OSKindle       = "Kindle"
	OSAndroid      = "Android"
	OSiPhone       = "iPhone"
	OSPlayBook     = "PlayBook"
	OSBlackBerry   = "BlackBerry"
	OSPalm         = "Palm"

	// OSUnknown is used when no platform entry matches
	OSUnknown = "unknown"
)

// Browser names as reported by DefaultBrowsers
const (
	BrowserFirefox = "Mozilla Firefox"
	BrowserSafari  = "Safari"
	BrowserChrome  = "Google Chrome"
	BrowserEdge    = "Microsoft Edge"
	BrowserOpera   = "Opera"

	// BrowserUnknown is used when no browser entry matches
	BrowserUnknown = "unknown"

	// VersionUnknown is used when no version could be extracted
	VersionUnknown = "0"
)

// versionLength is the number of characters taken after a browser search key.
const versionLength = 4

// operaMarker triggers the Opera shortcut in DetectBrowser.
const operaMarker = "Opera"
