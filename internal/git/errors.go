package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// GitError represents a git command failure. Git's own output goes to the
// user's terminal untouched; this error only carries the exit status.
type GitError struct {
	ExitCode int
	Args     []string
	err      error
}

func (e *GitError) Error() string {
	return fmt.Errorf("git %s failed: %w", strings.Join(e.Args, " "), e.err).Error()
}

func (e *GitError) Unwrap() error {
	return e.err
}

// NewGitError creates a GitError from a command error.
func NewGitError(args []string, err error) *GitError {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &GitError{
		ExitCode: exitCode,
		Args:     args,
		err:      err,
	}
}

// GetExitCode returns the exit code from a git error, or -1 if not available
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.ExitCode
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
