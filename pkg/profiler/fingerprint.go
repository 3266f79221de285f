package profiler

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"maps"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

// Color scheme labels stored in ClientDetails.Theme.
const (
	ThemeDark  = "Dark"
	ThemeLight = "Light"
)

// Platform is the operating system and user-agent device class.
type Platform struct {
	OS         string `json:"os"`
	DeviceType string `json:"deviceType"`
}

// ClientDetails holds the facts read directly from the host environment.
type ClientDetails struct {
	SelectedLanguage string `json:"selectedLanguage"`
	Theme            string `json:"theme"`
	UserAgent        string `json:"userAgent"`
}

// FingerPrint is the per-session aggregate of platform, browser and client
// details. It is computed once by Profiler.FingerPrint.
type FingerPrint struct {
	Platform
	useragent.Browser
	ClientDetails

	// Bot and DeviceModel come from the secondary user agent inspection.
	Bot         bool   `json:"bot,omitempty"`
	DeviceModel string `json:"deviceModel,omitempty"`
}

func (p Platform) fields() map[string]any {
	return map[string]any{"os": p.OS, "deviceType": p.DeviceType}
}

func browserFields(b useragent.Browser) map[string]any {
	return map[string]any{"browserName": b.Name, "browserVersion": b.Version}
}

func (c ClientDetails) fields() map[string]any {
	return map[string]any{
		"selectedLanguage": c.SelectedLanguage,
		"theme":            c.Theme,
		"userAgent":        c.UserAgent,
	}
}

// Map returns the fingerprint as a flat map. Sections are merged in order
// platform, browser, client; on a key collision the later section wins.
func (f FingerPrint) Map() map[string]any {
	out := make(map[string]any, 9)
	for _, section := range []map[string]any{
		f.Platform.fields(),
		browserFields(f.Browser),
		f.ClientDetails.fields(),
	} {
		maps.Copy(out, section)
	}
	if f.Bot {
		out["bot"] = true
	}
	if f.DeviceModel != "" {
		out["deviceModel"] = f.DeviceModel
	}
	return out
}

// Hash returns a 32-character hex digest identifying the fingerprint.
// Equal fingerprints always hash the same.
func (f FingerPrint) Hash() string {
	components := []string{
		f.OS,
		f.DeviceType,
		f.Name,
		f.Version,
		f.SelectedLanguage,
		f.Theme,
		f.UserAgent,
	}

	filtered := components[:0]
	for _, c := range components {
		if c != "" {
			filtered = append(filtered, c)
		}
	}

	sum := sha256.Sum256([]byte(strings.Join(filtered, "|")))
	return hex.EncodeToString(sum[:16])
}

func (f FingerPrint) String() string {
	return fmt.Sprintf("%s/%s (%s, %s; %s; %s)",
		f.Name, f.Version, f.OS, f.DeviceType, f.SelectedLanguage, f.Theme)
}

func themeOf(dark bool) string {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}
