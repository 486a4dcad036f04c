// Package git wraps the external git binary for the operations gpush needs.
// Everything goes through gitcmd.Runner; no other side channel is used.
package git

import (
	"errors"
	"io"

	"gpush/internal/gitcmd"
	"gpush/internal/gitutil"
)

// ErrDetachedHead is returned when no branch is currently checked out.
var ErrDetachedHead = errors.New("no branch is currently checked out (detached HEAD)")

// Options configures a Client.
type Options struct {
	// Dir is the working directory for git commands. Empty means the
	// process working directory.
	Dir string
	// Verbose logs each git argv to Logger before execution.
	Verbose bool
	Logger  io.Writer
}

// Client runs git operations against a single working directory.
type Client struct {
	runner gitcmd.Runner
}

func NewClient(opts Options) *Client {
	return &Client{runner: gitcmd.Runner{
		Dir:     opts.Dir,
		Verbose: opts.Verbose,
		Logger:  opts.Logger,
	}}
}

// IsRepository reports whether the working directory is inside a git repository.
func (c *Client) IsRepository() bool {
	_, err := c.runner.Run("rev-parse", "--git-dir")
	return err == nil
}

// Status returns the porcelain status output. Empty output means a clean tree.
func (c *Client) Status() (string, error) {
	result, err := c.runner.RunLogged("status", "--porcelain")
	if err != nil {
		return "", gitutil.WrapGitError("failed to read git status", result, err)
	}
	return result.StdoutString(false), nil
}

// AddAll stages every change in the working directory.
func (c *Client) AddAll() error {
	result, err := c.runner.RunLogged("add", ".")
	if err != nil {
		return gitutil.WrapGitError("git add failed", result, err)
	}
	return nil
}

// Commit records the staged changes with the given message.
func (c *Client) Commit(message string, args ...string) error {
	commitArgs := append([]string{"commit", "-m", message}, args...)
	result, err := c.runner.RunLogged(commitArgs...)
	if err != nil {
		return gitutil.WrapGitError("git commit failed", result, err)
	}
	return nil
}

// CurrentBranch resolves the name of the currently checked-out branch.
func (c *Client) CurrentBranch() (string, error) {
	result, err := c.runner.RunLogged("branch", "--show-current")
	if err != nil {
		return "", gitutil.WrapGitError("failed to resolve current branch", result, err)
	}

	branch := result.StdoutString(true)
	if branch == "" {
		return "", ErrDetachedHead
	}
	return branch, nil
}

// Push sends local commits on branch to the named remote.
func (c *Client) Push(remote, branch string) error {
	result, err := c.runner.RunLogged("push", remote, branch)
	if err != nil {
		return gitutil.WrapGitError("git push failed", result, err)
	}
	return nil
}
