package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/sufftree/pkg/suffixtree"
)

// Exit codes for sufftree.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitError indicates a generic failure.
	ExitError = 1

	// ExitInvalidUsage indicates invalid command-line usage or rejected input.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// errConfig tags configuration failures so they map to ExitConfigError.
var errConfig = errors.New("configuration error")

// errUsage tags usage failures so they map to ExitInvalidUsage.
var errUsage = errors.New("invalid usage")

// ExitCodeFor maps an error returned by command execution to a process exit
// code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errUsage), errors.Is(err, suffixtree.ErrInvalidInput):
		return ExitInvalidUsage
	case errors.Is(err, errConfig):
		return ExitConfigError
	case errors.Is(err, suffixtree.ErrInvariant):
		return ExitInternalError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitError
	}
}
