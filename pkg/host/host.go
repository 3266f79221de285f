package host

import "sync"

// Environment is the hosting runtime that reports client facts.
// Implementations are queried on demand; nothing is pushed.
type Environment interface {
	// UserAgent returns the raw user agent string.
	UserAgent() string
	// Viewport returns the viewport width and height in CSS pixels.
	Viewport() (width, height int)
	// Language returns the preferred locale, e.g. "en-US".
	Language() string
	// PrefersDarkScheme reports whether the client prefers a dark color scheme.
	PrefersDarkScheme() bool
}

// Static is an in-memory Environment with setters.
// The zero value is ready to use. All methods are safe for concurrent use.
type Static struct {
	mu        sync.RWMutex
	userAgent string
	width     int
	height    int
	language  string
	dark      bool
}

// NewStatic creates a Static environment from fixed values.
func NewStatic(userAgent string, width, height int, language string, dark bool) *Static {
	return &Static{
		userAgent: userAgent,
		width:     width,
		height:    height,
		language:  language,
		dark:      dark,
	}
}

func (s *Static) UserAgent() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userAgent
}

func (s *Static) Viewport() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height
}

func (s *Static) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

func (s *Static) PrefersDarkScheme() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

func (s *Static) SetUserAgent(ua string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userAgent = ua
}

// SetViewport simulates a window resize.
func (s *Static) SetViewport(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
}

func (s *Static) SetLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

func (s *Static) SetDarkScheme(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = dark
}
