package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// SafeCloseWithLogging closes a resource and logs any errors that occur
func SafeCloseWithLogging(closer io.Closer, logger *slog.Logger, operation string) {
	if closer == nil {
		return
	}

	if err := closer.Close(); err != nil {
		LogError(logger, "failed to close resource", err,
			slog.String("operation", operation),
			slog.String("component", "resource_management"))
	}
}

// HandleDeferredError runs a deferred cleanup and folds its failure into *originalErr.
// An existing error always takes precedence; the cleanup failure is still logged.
func HandleDeferredError(originalErr *error, deferredOp func() error, logger *slog.Logger, operation string) {
	if deferredOp == nil {
		return
	}

	if err := deferredOp(); err != nil {
		LogError(logger, "deferred operation failed", err,
			slog.String("operation", operation),
			slog.String("component", "deferred_cleanup"))

		if *originalErr == nil {
			*originalErr = fmt.Errorf("%s failed: %w", operation, err)
		}
	}
}

// FatalStartupError logs err as a startup failure and returns it wrapped with message.
// cmd/ binaries use it right before exiting with a non-zero status.
func FatalStartupError(logger *slog.Logger, message string, err error) error {
	wrapped := fmt.Errorf("%s: %w", message, err)
	LogError(logger, message, err, slog.String("component", "startup"))
	return wrapped
}
