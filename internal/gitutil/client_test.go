package gitutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Dubox.Api"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dubox.Api", "Program.cs"), []byte("class Program {}"), 0600))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("Dubox.Api/Program.cs")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir, hash.String()
}

func TestHeadSHA(t *testing.T) {
	dir, want := initRepo(t)
	c := NewClient(nil)

	got, err := c.HeadSHA(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Subdirectories resolve to the enclosing repository.
	got, err = c.HeadSHA(filepath.Join(dir, "Dubox.Api"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHeadSHA_NotRepository(t *testing.T) {
	_, err := NewClient(nil).HeadSHA(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestHeadSHA_EmptyRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = NewClient(nil).HeadSHA(dir)
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	dir, sha := initRepo(t)
	c := NewClient(nil)

	got := c.Describe(dir)
	assert.Contains(t, got, "@"+sha[:12])
	assert.Empty(t, c.Describe(t.TempDir()))
}
