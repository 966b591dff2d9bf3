package git_test

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigma-db/napi/internal/git"
)

// requireGit skips the test when git is not installed
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

func TestOSGitClientAvailable(t *testing.T) {
	requireGit(t)

	client := git.NewOSGitClient()
	require.True(t, client.Available())
}

func TestOSGitClientInit(t *testing.T) {
	requireGit(t)

	tmpDir := t.TempDir()
	client := git.NewOSGitClient()

	require.NoError(t, client.Init(tmpDir))

	// A fresh repository carries its metadata directory
	info, err := exec.Command("git", "-C", tmpDir, "rev-parse", "--git-dir").Output()
	require.NoError(t, err)
	require.NotEmpty(t, info)
	require.DirExists(t, filepath.Join(tmpDir, ".git"))
}

func TestOSGitClientInitFailure(t *testing.T) {
	requireGit(t)

	client := git.NewOSGitClient()

	err := client.Init(filepath.Join(t.TempDir(), "does", "not", "exist"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to initialize repository")
}
