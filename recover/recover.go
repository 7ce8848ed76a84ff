// file:dline/recover/recover.go
package recover

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/rskv-p/dline/pkg/x_log"

	"github.com/rs/zerolog"
)

// ----------------------------------------------------
// Global panic hook (optional)
// ----------------------------------------------------

var OnPanic func(scope, function string, recovered any)

var custom *zerolog.Logger

// SetLogger replaces the logger used for panic reports.
func SetLogger(l zerolog.Logger) {
	custom = &l
}

func logger() zerolog.Logger {
	if custom != nil {
		return *custom
	}
	return x_log.New("recover")
}

// ----------------------------------------------------
// Panic recovery functions
// ----------------------------------------------------

// report logs a recovered panic and fires OnPanic.
func report(scope, function string, recovered any) {
	log := logger()
	log.Error().
		Str("scope", scope).
		Str("function", function).
		Interface("panic", recovered).
		Str("stack", string(debug.Stack())).
		Msg("panic recovered")

	if OnPanic != nil {
		OnPanic(scope, function, recovered)
	}
}

// asError turns a recovered value into an error, keeping error values wrapped.
func asError(scope, function string, recovered any) error {
	if err, ok := recovered.(error); ok {
		return fmt.Errorf("panic in %s.%s: %w", scope, function, err)
	}
	return fmt.Errorf("panic in %s.%s: %v", scope, function, recovered)
}

// Safe runs fn and returns any panic as an error.
func Safe(label string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			report("safe", label, r)
			err = asError("safe", label, r)
		}
	}()
	fn()
	return nil
}

// ----------------------------------------------------
// Universal wrapper
// ----------------------------------------------------

// RecoverableFunc is a context-aware function that may panic.
type RecoverableFunc func(ctx context.Context) error

// WrapRecover wraps a context-aware function with panic protection.
func WrapRecover(scope, function string, f RecoverableFunc) RecoverableFunc {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				report(scope, function, r)
				err = asError(scope, function, r)
			}
		}()
		return f(ctx)
	}
}
