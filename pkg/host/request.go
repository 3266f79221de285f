package host

import (
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Client hint and negotiation headers read by FromRequest.
const (
	HeaderUserAgent          = "User-Agent"
	HeaderAcceptLanguage     = "Accept-Language"
	HeaderViewportWidth      = "Sec-CH-Viewport-Width"
	HeaderViewportWidthOld   = "Viewport-Width"
	HeaderViewportHeight     = "Sec-CH-Viewport-Height"
	HeaderPrefersColorScheme = "Sec-CH-Prefers-Color-Scheme"
)

// maxAcceptLanguageLength caps the Accept-Language header before parsing.
const maxAcceptLanguageLength = 4096

// Request is an Environment snapshot taken from an incoming HTTP request.
type Request struct {
	userAgent string
	width     int
	height    int
	language  string
	dark      bool
}

// FromRequest reads the user agent, viewport client hints, preferred
// language and color scheme hint from r. Facts missing from the request are
// taken from fallback, which may be nil.
func FromRequest(r *http.Request, fallback Environment) *Request {
	if fallback == nil {
		fallback = &Static{}
	}

	fw, fh := fallback.Viewport()
	env := &Request{
		userAgent: fallback.UserAgent(),
		width:     fw,
		height:    fh,
		language:  fallback.Language(),
		dark:      fallback.PrefersDarkScheme(),
	}

	if ua := r.Header.Get(HeaderUserAgent); ua != "" {
		env.userAgent = ua
	}

	if w, ok := headerInt(r, HeaderViewportWidth, HeaderViewportWidthOld); ok {
		env.width = w
	}
	if h, ok := headerInt(r, HeaderViewportHeight); ok {
		env.height = h
	}

	if lang := PreferredLanguage(r.Header.Get(HeaderAcceptLanguage)); lang != "" {
		env.language = lang
	}

	if scheme := unquote(r.Header.Get(HeaderPrefersColorScheme)); scheme != "" {
		env.dark = strings.EqualFold(scheme, "dark")
	}

	return env
}

func (e *Request) UserAgent() string { return e.userAgent }
func (e *Request) Viewport() (int, int) { return e.width, e.height }
func (e *Request) Language() string { return e.language }
func (e *Request) PrefersDarkScheme() bool { return e.dark }

// PreferredLanguage returns the highest-weighted tag of an Accept-Language
// header in canonical BCP 47 form, or an empty string when the header is
// empty or malformed.
func PreferredLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	if tags[0] == language.Und {
		return ""
	}
	return tags[0].String()
}

// headerInt returns the first header among names holding a valid integer.
func headerInt(r *http.Request, names ...string) (int, bool) {
	for _, name := range names {
		raw := strings.TrimSpace(r.Header.Get(name))
		if raw == "" {
			continue
		}
		if v, err := strconv.Atoi(raw); err == nil {
			return v, true
		}
	}
	return 0, false
}

// unquote strips the quotes structured header strings carry.
func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
