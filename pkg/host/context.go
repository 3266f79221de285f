package host

import "context"

type contextKey struct{}

// WithContext adds an environment to the context
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves the environment from the context.
// Returns nil if none was stored.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return nil
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}
