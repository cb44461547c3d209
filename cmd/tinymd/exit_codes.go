package main

import (
	"errors"
	"os"

	tinymd "github.com/alnah/go-tinymd"
	"github.com/alnah/go-tinymd/internal/config"
)

// Exit codes for tinymd CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion or banner
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid arguments, flags, or config
	ExitIO      = 3 // Input unreadable or output unwritable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, tinymd.ErrInputNotFound) ||
		errors.Is(err, tinymd.ErrOutputWriteFailed) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrInvalidInvocation) ||
		errors.Is(err, ErrConflictingFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidLogLevel) {
		return ExitUsage
	}

	return ExitGeneral
}
