package useragent

import (
	"fmt"
	"strings"

	mssola "github.com/mssola/useragent"
)

// UserAgent contains the parsed information from a user agent string
type UserAgent struct {
	// Raw user agent string
	userAgent string

	// Device information
	deviceType  string
	deviceModel string

	// Software information
	os          string
	browserName string
	browserVer  string

	// Crawler information
	bot     bool
	botName string
}

// String returns the user agent as a string
func (ua UserAgent) String() string { return ua.userAgent }

// UserAgent returns the full user agent string
func (ua UserAgent) UserAgent() string { return ua.userAgent }

// DeviceType returns the device type (mobile, tablet, desktop)
func (ua UserAgent) DeviceType() string { return ua.deviceType }

// DeviceModel returns the specific device model if available
func (ua UserAgent) DeviceModel() string { return ua.deviceModel }

// OS returns the operating system name
func (ua UserAgent) OS() string { return ua.os }

// BrowserName returns the browser name
func (ua UserAgent) BrowserName() string { return ua.browserName }

// BrowserVer returns the browser version
func (ua UserAgent) BrowserVer() string { return ua.browserVer }

// BrowserInfo returns the browser name and version
func (ua UserAgent) BrowserInfo() Browser {
	return Browser{Name: ua.browserName, Version: ua.browserVer}
}

// IsBot returns true if the user agent belongs to a crawler
func (ua UserAgent) IsBot() bool { return ua.bot }

// IsMobile returns true if the user agent is a mobile device
func (ua UserAgent) IsMobile() bool { return ua.deviceType == DeviceTypeMobile }

// IsDesktop returns true if the user agent is a desktop device
func (ua UserAgent) IsDesktop() bool { return ua.deviceType == DeviceTypeDesktop }

// IsTablet returns true if the user agent is a tablet device
func (ua UserAgent) IsTablet() bool { return ua.deviceType == DeviceTypeTablet }

// ShortIdentifier returns a short human-readable label for logs.
// Format: Browser/Version (OS, DeviceType) or Bot: BotName for crawlers.
func (ua UserAgent) ShortIdentifier() string {
	if ua.bot {
		name := ua.botName
		if name == "" {
			name = "Unknown Bot"
		}
		return fmt.Sprintf("Bot: %s", name)
	}

	if ua.browserName == BrowserUnknown && ua.os == OSUnknown {
		return fmt.Sprintf("Unknown device (%s)", ua.deviceType)
	}

	return fmt.Sprintf("%s/%s (%s, %s)", ua.browserName, ua.browserVer, ua.os, ua.deviceType)
}

// Parse parses a user agent string with the built-in tables.
// It never fails: unmatched parts fall back to OSUnknown, BrowserUnknown,
// VersionUnknown and DeviceTypeDesktop.
func Parse(ua string) UserAgent {
	return DefaultTables().Parse(ua)
}

// New creates a new UserAgent with the provided parameters
func New(ua, deviceType, deviceModel, os, browserName, browserVer string) UserAgent {
	return UserAgent{
		userAgent:   ua,
		deviceType:  deviceType,
		deviceModel: deviceModel,
		os:          os,
		browserName: browserName,
		browserVer:  browserVer,
	}
}

type uaDetails struct {
	bot     bool
	botName string
	model   string
}

// inspect pulls the crawler flag and device model out of ua.
// These are not covered by the lookup tables.
func inspect(ua string) uaDetails {
	if strings.TrimSpace(ua) == "" {
		return uaDetails{}
	}

	parsed := mssola.New(ua)
	details := uaDetails{
		bot:   parsed.Bot(),
		model: parsed.Model(),
	}
	if details.bot {
		details.botName, _ = parsed.Browser()
	}
	return details
}
