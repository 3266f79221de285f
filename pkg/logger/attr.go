package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ProfileID records the profiler session identifier under the key "profile_id".
// If id is empty, it returns an empty Attr.
func ProfileID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("profile_id", id)
}

// DeviceType records the user-agent device class under the key "device_type".
func DeviceType(deviceType string) slog.Attr {
	return slog.String("device_type", deviceType)
}

// ScreenClass records the viewport class under the key "screen_class".
func ScreenClass(class string) slog.Attr {
	return slog.String("screen_class", class)
}

// Viewport groups width and height under the key "viewport".
func Viewport(width, height int) slog.Attr {
	return Group("viewport", slog.Int("width", width), slog.Int("height", height))
}

// Fingerprint records a fingerprint hash under the key "fingerprint".
// If hash is empty, it returns an empty Attr.
func Fingerprint(hash string) slog.Attr {
	if hash == "" {
		return slog.Attr{}
	}
	return slog.String("fingerprint", hash)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
