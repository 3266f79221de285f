package profiler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/devicekit/pkg/host"
)

const (
	// IDHeader carries the profiler session ID in requests and responses.
	IDHeader    = "X-Profile-ID"
	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// acceptCH asks browsers to send the client hints host.FromRequest reads.
var acceptCH = strings.Join([]string{
	host.HeaderViewportWidth,
	host.HeaderViewportHeight,
	host.HeaderPrefersColorScheme,
}, ", ")

// Middleware creates a profiler for every request from its headers, with
// missing facts taken from fallback. The profiler is stored in the request
// context and closed when the handler returns.
//
// A valid X-Profile-ID request header is reused as the session ID; otherwise
// a new one is generated. The ID is echoed in the response.
func Middleware(fallback host.Environment, opts ...Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(IDHeader)
			if !isValidID(id) {
				id = uuid.NewString()
			}

			env := host.FromRequest(r, fallback)
			p := New(env, append(opts[:len(opts):len(opts)], WithID(id))...)
			defer p.Close()

			w.Header().Set(IDHeader, id)
			w.Header().Set("Accept-CH", acceptCH)

			ctx := host.WithContext(r.Context(), env)
			ctx = WithContext(ctx, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isValidID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
