// Package git wraps the git executable for commit creation with injected
// author and committer dates.
package git

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Client wraps git operations for a single repository.
type Client struct {
	RepoDir string // Repository directory; empty means the current directory
	GitPath string // Path to git executable
	Stderr  io.Writer
	Stdin   io.Reader
	Stdout  io.Writer
}

// NewClient creates a new git client for the current directory.
func NewClient() *Client {
	gitPath, _ := exec.LookPath("git")

	return &Client{
		GitPath: gitPath,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}
}

// NewClientForRepo creates a client for a specific repository.
func NewClientForRepo(repoDir string) *Client {
	c := NewClient()
	c.RepoDir = repoDir
	return c
}

// Command creates a git command without stdio attached.
// Note: Do not set Stdout/Stderr if you plan to use CombinedOutput()
func (c *Client) Command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.GitPath, args...)

	if c.RepoDir != "" {
		cmd.Dir = c.RepoDir
	}

	return cmd
}

// CommandInteractive creates a git command with stdio attached for
// interactive use (commit may open an editor).
func (c *Client) CommandInteractive(ctx context.Context, args ...string) *exec.Cmd {
	cmd := c.Command(ctx, args...)
	cmd.Stderr = c.Stderr
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	return cmd
}

// IsRepository checks if the client's directory is inside a git repository.
func (c *Client) IsRepository(ctx context.Context) bool {
	cmd := c.Command(ctx, "rev-parse", "--git-dir")
	return cmd.Run() == nil
}

// HeadCommitTime returns the committer timestamp of HEAD. The second return
// value is false when the repository has no commits or the query fails;
// callers treat that as "no prior commit" rather than an error.
func (c *Client) HeadCommitTime(ctx context.Context) (time.Time, bool) {
	cmd := c.Command(ctx, "log", "-1", "--format=%cI")

	output, err := cmd.Output()
	if err != nil {
		return time.Time{}, false
	}

	raw := strings.TrimSpace(string(output))
	if raw == "" {
		return time.Time{}, false
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}

	return ts, true
}

// CommitOptions configures a commit invocation.
type CommitOptions struct {
	Amend     bool     // Amend HEAD instead of creating a new commit
	ExtraArgs []string // Forwarded to git verbatim
}

// Commit runs git commit with both the author and committer dates set to
// the given timestamp. Extra args are forwarded verbatim and git's own
// stdio is attached, so interactive message editing still works.
func (c *Client) Commit(ctx context.Context, ts time.Time, opts CommitOptions) error {
	args := BuildCommitArgs(opts)

	cmd := c.CommandInteractive(ctx, args...)
	cmd.Env = append(os.Environ(), DateEnv(ts)...)

	if err := cmd.Run(); err != nil {
		return NewGitError(args, err)
	}

	return nil
}

// BuildCommitArgs assembles the git argument list for a commit or amend.
func BuildCommitArgs(opts CommitOptions) []string {
	args := []string{"commit"}

	if opts.Amend {
		args = append(args, "--amend", "--no-edit", "--reset-author")
	}

	return append(args, opts.ExtraArgs...)
}

// DateEnv returns the environment entries that pin both commit dates.
func DateEnv(ts time.Time) []string {
	formatted := ts.Format(time.RFC3339)

	return []string{
		fmt.Sprintf("GIT_AUTHOR_DATE=%s", formatted),
		fmt.Sprintf("GIT_COMMITTER_DATE=%s", formatted),
	}
}
