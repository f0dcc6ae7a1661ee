package errors

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	be, ok := As(err)
	if !ok {
		return 1
	}

	switch be.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryFileSystem:
		return 11 // Output error
	case CategoryRuntime:
		return 12 // Runtime error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	be, ok := As(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return be.Error()
	}

	switch be.Category {
	case CategoryConfig, CategoryValidation:
		if field, ok := be.Context["field"]; ok {
			return fmt.Sprintf("%s: %v", be.Message, field)
		}
		if path, ok := be.Context["path"]; ok {
			return fmt.Sprintf("%s: %v", be.Message, path)
		}
		return be.Message
	default:
		return fmt.Sprintf("%s: %s", be.Category, be.Message)
	}
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	if be, ok := As(err); ok {
		return be.Category == CategoryInternal || be.Category == CategoryRuntime
	}
	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	be, ok := As(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return
	}

	level := slog.LevelError
	if be.Severity == SeverityWarning {
		level = slog.LevelWarn
	}
	attrs := []slog.Attr{slog.String("category", string(be.Category))}
	for k, v := range be.Context {
		attrs = append(attrs, slog.Any(k, v))
	}
	if be.Cause != nil {
		attrs = append(attrs, slog.String("cause", be.Cause.Error()))
	}
	a.logger.LogAttrs(context.Background(), level, be.Message, attrs...)
}
