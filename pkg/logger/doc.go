// Package logger builds *slog.Logger instances from functional options and
// injects attributes stored in context.Context into every record.
//
// Options cover the output format (text or json), the minimum level, default
// attributes and ContextExtractor callbacks. WithEnvironment applies the
// usual development/staging/production presets.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler and wraps it with
// LogHandlerDecorator, which runs the registered extractors right before a
// record is handled. Attribute helpers (ProfileID, DeviceType, ScreenClass,
// Viewport, Fingerprint, Error, …) live in attr.go and keep key names
// consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "devicekit"),
//	    logger.WithContextExtractors(profiler.LogExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "viewport changed",
//	    logger.ScreenClass(state.Class()),
//	    logger.Viewport(w, h),
//	)
//
// Discard returns a logger that drops everything; components use it when no
// logger is configured.
package logger
