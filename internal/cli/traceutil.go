package cli

import (
	"context"
	"runtime/trace"
)

// traced runs fn inside a named execution trace region so launcher
// phases show up when runtime tracing is enabled.
func traced[T any](ctx context.Context, name string, fn func() (T, error)) (T, error) {
	var value T
	var err error
	trace.WithRegion(ctx, name, func() {
		value, err = fn()
	})
	return value, err
}

func tracedErr(ctx context.Context, name string, fn func() error) error {
	_, err := traced(ctx, name, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
