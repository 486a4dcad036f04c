package git

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRepository(t *testing.T) {
	t.Run("inside a repository", func(t *testing.T) {
		_, client := newTempRepo(t)
		assert.True(t, client.IsRepository())
	})

	t.Run("plain directory", func(t *testing.T) {
		requireGit(t)
		client := NewClient(Options{Dir: t.TempDir()})
		assert.False(t, client.IsRepository())
	})
}

func TestStatus(t *testing.T) {
	dir, client := newTempRepo(t)

	status, err := client.Status()
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(status), "fresh repository should report a clean tree")

	writeFile(t, dir, "file.txt", "hello\n")

	status, err = client.Status()
	require.NoError(t, err)
	assert.Contains(t, status, "?? file.txt")
}

func TestAddAllAndCommit(t *testing.T) {
	dir, client := newTempRepo(t)
	writeFile(t, dir, "file.txt", "hello\n")

	require.NoError(t, client.AddAll())

	status, err := client.Status()
	require.NoError(t, err)
	assert.Contains(t, status, "A  file.txt", "file should be staged after AddAll")

	require.NoError(t, client.Commit("add file"))

	status, err = client.Status()
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(status), "tree should be clean after commit")
}

func TestCommit_EmptyIndexFails(t *testing.T) {
	_, client := newTempRepo(t)

	err := client.Commit("nothing staged")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git commit failed")
}

func TestCurrentBranch(t *testing.T) {
	dir, client := newTempRepo(t)
	writeFile(t, dir, "file.txt", "hello\n")
	require.NoError(t, client.AddAll())
	require.NoError(t, client.Commit("initial"))

	branch, err := client.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestCurrentBranch_DetachedHead(t *testing.T) {
	dir, client := newTempRepo(t)
	writeFile(t, dir, "file.txt", "hello\n")
	require.NoError(t, client.AddAll())
	require.NoError(t, client.Commit("initial"))

	mustRunDetach(t, dir)

	_, err := client.CurrentBranch()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDetachedHead))
}

func TestPush(t *testing.T) {
	dir, client := newTempRepo(t)
	writeFile(t, dir, "file.txt", "hello\n")
	require.NoError(t, client.AddAll())
	require.NoError(t, client.Commit("initial"))
	addBareRemote(t, dir)

	require.NoError(t, client.Push("origin", "main"))
}

func TestPush_UnknownRemote(t *testing.T) {
	dir, client := newTempRepo(t)
	writeFile(t, dir, "file.txt", "hello\n")
	require.NoError(t, client.AddAll())
	require.NoError(t, client.Commit("initial"))

	err := client.Push("nowhere", "main")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git push failed")
}
