// Package devicekit detects what kind of client is on the other end: the
// screen class from the viewport width, the device class, operating system
// and browser from the user agent, plus the preferred language and color
// scheme.
//
// The work is split into small packages:
//
//   - pkg/viewport classifies a viewport width as mobile, tablet or desktop.
//   - pkg/useragent runs the ordered OS and browser tables against a user
//     agent string. Tables can be overridden from YAML.
//   - pkg/broadcast provides the latest-value cell screen states are
//     published to.
//   - pkg/host abstracts the environment the facts are read from, either a
//     static value or an incoming HTTP request with client hints.
//   - pkg/profiler ties them together into a per-session Profiler with a
//     memoised FingerPrint and HTTP middleware.
//   - pkg/config and pkg/logger carry configuration and structured logging.
//
// Basic usage:
//
//	env := host.NewStatic(userAgent, 390, 844, "en-US", false)
//	p := profiler.New(env)
//	defer p.Close()
//
//	if p.Resolution().IsMobile {
//		// compact layout
//	}
//	fp := p.FingerPrint()
package devicekit
