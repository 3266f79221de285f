// Package profiler derives device facts for a client session: the viewport
// screen class, the user agent device class, the operating system, the
// browser with its version, the preferred language and the color scheme.
//
// A Profiler reads from a host.Environment on demand. Viewport results are
// published to a latest-value cell, so the last screen state can be read
// with ResolutionState or streamed with SubscribeResolution. New
// subscribers receive the current state first, which is all-false before
// the first classification.
//
// The FingerPrint is computed on the first call and then returned unchanged
// for the lifetime of the profiler, even if the environment reports
// different values later.
//
// Viewport classification (width thresholds) and Device (user agent
// heuristics) are independent and may disagree.
//
// # Usage
//
//	env := host.NewStatic(ua, 390, 844, "en-US", true)
//	p := profiler.New(env, profiler.WithLogger(log))
//	defer p.Close()
//
//	state := p.Resolution()  // ScreenState{IsMobile: true}
//	fp := p.FingerPrint()    // memoised
//	log.Info("client", "device", p.Device(), "fingerprint", fp.Hash())
//
// For HTTP servers, Middleware builds a profiler per request from the
// User-Agent, Accept-Language and Sec-CH-* client hint headers:
//
//	cfg, _ := profiler.LoadConfig()
//	opts, _ := cfg.Options(log)
//	r := chi.NewRouter()
//	r.Use(profiler.Middleware(cfg.Fallback(), opts...))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    fp := profiler.FromContext(r.Context()).FingerPrint()
//	    ...
//	})
package profiler
