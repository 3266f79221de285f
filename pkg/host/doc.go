// Package host abstracts the runtime that reports client facts: the user
// agent string, viewport size, preferred language and color scheme.
//
// Two implementations are provided:
//
//   - Static holds fixed values with setters. It backs tests and the
//     configured defaults of a service.
//   - Request snapshots an incoming *http.Request, reading the User-Agent
//     header, the Sec-CH-Viewport-Width / Viewport-Width and
//     Sec-CH-Viewport-Height client hints, Accept-Language and
//     Sec-CH-Prefers-Color-Scheme. Missing facts come from a fallback
//     Environment.
//
// Usage:
//
//	defaults := host.NewStatic("", 1280, 800, "en-US", false)
//	env := host.FromRequest(r, defaults)
//	w, h := env.Viewport()
//
// Accept-Language parsing uses golang.org/x/text/language, so the reported
// language is the canonical form of the highest weighted tag ("en-US",
// "pt-BR", "zh-Hant-TW").
//
// WithContext and FromContext carry an Environment through a request context.
package host
