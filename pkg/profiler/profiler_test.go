package profiler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/host"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/profiler"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
	"github.com/dmitrymomot/devicekit/pkg/viewport"
)

const (
	chromeWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	safariIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	androidTablet = "Mozilla/5.0 (Linux; Android 11; SM-T500) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Safari/537.36"
	androidPhone  = "Mozilla/5.0 (Linux; Android 10; Pixel 4) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Mobile Safari/537.36"
)

func TestProfiler_ClassifyViewport(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		width    int
		expected viewport.ScreenState
	}{
		{"negative", -1, viewport.ScreenState{IsMobile: true}},
		{"zero", 0, viewport.ScreenState{IsMobile: true}},
		{"mobile limit", 425, viewport.ScreenState{IsMobile: true}},
		{"tablet start", 426, viewport.ScreenState{IsTablet: true}},
		{"tablet limit", 1024, viewport.ScreenState{IsTablet: true}},
		{"desktop", 1025, viewport.ScreenState{IsDesktop: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := profiler.New(nil)
			defer p.Close()

			assert.Equal(t, tt.expected, p.ClassifyViewport(tt.width, 10000))
			assert.Equal(t, tt.expected, p.ResolutionState())
		})
	}
}

func TestProfiler_Resolution(t *testing.T) {
	t.Parallel()
	env := host.NewStatic(safariIPhone, 390, 844, "en-US", false)
	p := profiler.New(env)
	defer p.Close()

	assert.True(t, p.ResolutionState().IsZero(), "state is all-false before the first query")

	assert.Equal(t, viewport.ScreenState{IsMobile: true}, p.Resolution())

	env.SetViewport(1440, 900)
	assert.Equal(t, viewport.ScreenState{IsMobile: true}, p.ResolutionState(), "no automatic re-query")
	assert.Equal(t, viewport.ScreenState{IsDesktop: true}, p.Resolution())
	assert.Equal(t, viewport.ScreenState{IsDesktop: true}, p.ResolutionState())
}

func TestProfiler_WithBreakpoints(t *testing.T) {
	t.Parallel()
	p := profiler.New(nil, profiler.WithBreakpoints(viewport.Breakpoints{MobileMaxWidth: 600, TabletMaxWidth: 1200}))
	defer p.Close()

	assert.Equal(t, viewport.ScreenState{IsMobile: true}, p.ClassifyViewport(500, 0))
	assert.Equal(t, viewport.ScreenState{IsTablet: true}, p.ClassifyViewport(1100, 0))
}

func TestProfiler_SubscribeResolution(t *testing.T) {
	t.Parallel()
	p := profiler.New(host.NewStatic("", 800, 600, "", false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := p.SubscribeResolution(ctx)

	next := func() viewport.ScreenState {
		t.Helper()
		select {
		case msg, ok := <-sub.Receive(ctx):
			require.True(t, ok, "subscription closed")
			return msg.Data
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for screen state")
			return viewport.ScreenState{}
		}
	}

	assert.True(t, next().IsZero(), "subscriber gets the initial state first")

	p.Resolution()
	assert.Equal(t, viewport.ScreenState{IsTablet: true}, next())

	require.NoError(t, p.Close())

	select {
	case _, ok := <-sub.Receive(ctx):
		assert.False(t, ok, "channel closes with the profiler")
	case <-time.After(time.Second):
		t.Fatal("subscription not closed")
	}

	// Classification keeps working after Close, only publishing stops.
	assert.Equal(t, viewport.ScreenState{IsDesktop: true}, p.ClassifyViewport(2000, 0))
	assert.Equal(t, viewport.ScreenState{IsTablet: true}, p.ResolutionState())
}

func TestProfiler_Device(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{"android phone", androidPhone, useragent.DeviceTypeMobile},
		{"android tablet", androidTablet, useragent.DeviceTypeTablet},
		{"iphone", safariIPhone, useragent.DeviceTypeMobile},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 14_4 like Mac OS X)", useragent.DeviceTypeTablet},
		{"desktop", chromeWindows, useragent.DeviceTypeDesktop},
		{"empty", "", useragent.DeviceTypeDesktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := profiler.New(host.NewStatic(tt.ua, 0, 0, "", false))
			defer p.Close()
			assert.Equal(t, tt.expected, p.Device())
		})
	}
}

func TestProfiler_DeviceAndViewportMayDisagree(t *testing.T) {
	t.Parallel()
	p := profiler.New(host.NewStatic(chromeWindows, 390, 844, "en-US", false))
	defer p.Close()

	assert.Equal(t, useragent.DeviceTypeDesktop, p.Device())
	assert.True(t, p.Resolution().IsMobile)
}

func TestProfiler_FingerPrint(t *testing.T) {
	t.Parallel()
	env := host.NewStatic(chromeWindows, 1920, 1080, "en-US", true)
	p := profiler.New(env)
	defer p.Close()

	fp := p.FingerPrint()
	assert.Equal(t, useragent.OSWindows, fp.OS)
	assert.Equal(t, useragent.DeviceTypeDesktop, fp.DeviceType)
	assert.Equal(t, useragent.BrowserChrome, fp.Name)
	assert.Equal(t, "91.0", fp.Version)
	assert.Equal(t, "en-US", fp.SelectedLanguage)
	assert.Equal(t, profiler.ThemeDark, fp.Theme)
	assert.Equal(t, chromeWindows, fp.UserAgent)
	assert.False(t, fp.Bot)
}

func TestProfiler_FingerPrintIsMemoised(t *testing.T) {
	t.Parallel()
	env := host.NewStatic(chromeWindows, 1920, 1080, "en-US", false)
	p := profiler.New(env)
	defer p.Close()

	first := p.FingerPrint()

	env.SetUserAgent(androidPhone)
	env.SetLanguage("de-DE")
	env.SetDarkScheme(true)

	second := p.FingerPrint()
	assert.Equal(t, first, second)
	assert.Equal(t, first.Hash(), second.Hash())
	assert.Equal(t, profiler.ThemeLight, second.Theme)
	assert.Equal(t, "en-US", second.SelectedLanguage)

	assert.Equal(t, useragent.DeviceTypeDesktop, p.Device(), "device follows the cached fingerprint")
}

func TestProfiler_FingerPrintConcurrent(t *testing.T) {
	t.Parallel()
	p := profiler.New(host.NewStatic(safariIPhone, 0, 0, "fr-FR", false))
	defer p.Close()

	var wg sync.WaitGroup
	results := make([]profiler.FingerPrint, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.FingerPrint()
		}(i)
	}
	wg.Wait()

	for _, fp := range results {
		assert.Equal(t, results[0], fp)
	}
}

func TestProfiler_FingerPrintBot(t *testing.T) {
	t.Parallel()
	p := profiler.New(host.NewStatic("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", 0, 0, "", false))
	defer p.Close()

	assert.True(t, p.FingerPrint().Bot)
}

func TestProfiler_WithTables(t *testing.T) {
	t.Parallel()
	tables := useragent.Tables{
		Platforms: []useragent.PlatformEntry{{Name: "Haiku", Match: "Haiku"}},
		Browsers:  []useragent.BrowserEntry{{SearchKey: "WebPositive/", Name: "WebPositive"}},
	}
	p := profiler.New(host.NewStatic("Mozilla/5.0 (Haiku) WebPositive/1.3", 0, 0, "", false), profiler.WithTables(tables))
	defer p.Close()

	fp := p.FingerPrint()
	assert.Equal(t, "Haiku", fp.OS)
	assert.Equal(t, "WebPositive", fp.Name)
	assert.Equal(t, "1.3", fp.Version)
}

func TestProfiler_ID(t *testing.T) {
	t.Parallel()

	p := profiler.New(nil, profiler.WithID("session-1"))
	defer p.Close()
	assert.Equal(t, "session-1", p.ID())

	a, b := profiler.New(nil), profiler.New(nil)
	defer a.Close()
	defer b.Close()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestProfiler_Logging(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithFormat(logger.FormatJSON),
		logger.WithLevelName("debug"),
		logger.WithOutput(buf),
	)

	p := profiler.New(host.NewStatic(chromeWindows, 390, 844, "en-US", false),
		profiler.WithLogger(log),
		profiler.WithID("abc"),
	)
	defer p.Close()

	p.Resolution()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "screen state published", entry["msg"])
	assert.Equal(t, "abc", entry["profile_id"])
	assert.Equal(t, "profiler", entry["component"])
	assert.Equal(t, viewport.ClassMobile, entry["screen_class"])
}
