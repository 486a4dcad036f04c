//go:build !prod

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"gpush/internal/gitcmd"
)

// requireGit skips the test when no git binary is available.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not found in PATH")
	}
}

// newTempRepo initializes an isolated git repository under t.TempDir and
// returns a Client scoped to it. Nothing touches the process working
// directory, so tests can never leak into a real checkout.
func newTempRepo(t *testing.T) (string, *Client) {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	runner := gitcmd.Runner{Dir: dir}

	mustRun(t, runner, "init", "--initial-branch=main")
	mustRun(t, runner, "config", "user.email", "test@example.com")
	mustRun(t, runner, "config", "user.name", "Test User")
	mustRun(t, runner, "config", "commit.gpgsign", "false")

	return dir, NewClient(Options{Dir: dir})
}

// addBareRemote creates a bare repository and registers it as origin.
func addBareRemote(t *testing.T, dir string) string {
	t.Helper()

	bare := t.TempDir()
	mustRun(t, gitcmd.Runner{Dir: bare}, "init", "--bare")
	mustRun(t, gitcmd.Runner{Dir: dir}, "remote", "add", "origin", bare)
	return bare
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

// mustRunDetach moves the repository into a detached HEAD state.
func mustRunDetach(t *testing.T, dir string) {
	t.Helper()
	mustRun(t, gitcmd.Runner{Dir: dir}, "checkout", "--detach")
}

func mustRun(t *testing.T, runner gitcmd.Runner, args ...string) {
	t.Helper()
	if result, err := runner.Run(args...); err != nil {
		t.Fatalf("git %v failed: %v\nstderr: %s", args, err, result.StderrString(true))
	}
}
