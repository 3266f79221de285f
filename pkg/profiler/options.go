package profiler

import (
	"log/slog"

	"github.com/dmitrymomot/devicekit/pkg/useragent"
	"github.com/dmitrymomot/devicekit/pkg/viewport"
)

// Option configures a Profiler.
type Option func(*Profiler)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Profiler) { p.log = l }
}

// WithTables replaces the OS and browser detection tables.
func WithTables(t useragent.Tables) Option {
	return func(p *Profiler) { p.tables = t }
}

// WithBreakpoints replaces the viewport width thresholds.
func WithBreakpoints(b viewport.Breakpoints) Option {
	return func(p *Profiler) { p.breakpoints = b }
}

// WithID sets the session identifier. Empty IDs are replaced by a random UUID.
func WithID(id string) Option {
	return func(p *Profiler) { p.id = id }
}

// WithBufferSize sets how many screen states each subscriber may hold
// before older ones are dropped.
func WithBufferSize(n int) Option {
	return func(p *Profiler) {
		if n > 0 {
			p.bufferSize = n
		}
	}
}
