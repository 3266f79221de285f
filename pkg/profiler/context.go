package profiler

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/devicekit/pkg/logger"
)

type profilerContextKey struct{}

// WithContext stores p in ctx.
func WithContext(ctx context.Context, p *Profiler) context.Context {
	return context.WithValue(ctx, profilerContextKey{}, p)
}

// FromContext returns the profiler stored in ctx, or nil.
func FromContext(ctx context.Context) *Profiler {
	p, _ := ctx.Value(profilerContextKey{}).(*Profiler)
	return p
}

// LogExtractor adds a "device" group with the session ID and device type to
// records logged with a profiler in context. The fingerprint hash is added
// once the fingerprint has been computed; the extractor never computes it.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		p := FromContext(ctx)
		if p == nil {
			return slog.Attr{}, false
		}

		attrs := []slog.Attr{
			logger.ProfileID(p.id),
			logger.DeviceType(p.Device()),
		}
		if p.fpComputed.Load() {
			attrs = append(attrs, logger.Fingerprint(p.fp.Hash()))
		}
		return logger.Group("device", attrs...), true
	}
}
