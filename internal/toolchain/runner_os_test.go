package toolchain_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigma-db/napi/internal/toolchain"
)

// requireGit skips the test when git is not installed; it is the one
// tool these tests can reasonably expect on a development machine.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

func TestOSRunnerLook(t *testing.T) {
	requireGit(t)

	runner := toolchain.NewOSRunner()

	path, err := runner.Look("git")
	require.NoError(t, err)
	require.NotEmpty(t, path)

	_, err = runner.Look("definitely-not-a-real-tool-name")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found on PATH")
}

func TestOSRunnerOutput(t *testing.T) {
	requireGit(t)

	runner := toolchain.NewOSRunner()

	out, err := runner.Output(context.Background(), t.TempDir(), "git", "--version")
	require.NoError(t, err)
	require.Contains(t, out, "git version")
}

func TestOSRunnerRunFailure(t *testing.T) {
	requireGit(t)

	runner := toolchain.NewOSRunner()

	err := runner.Run(context.Background(), t.TempDir(), "git", "definitely-not-a-subcommand")
	require.Error(t, err)
	require.Contains(t, err.Error(), "git failed")
}

func TestOSRunnerAttachReportsExitCode(t *testing.T) {
	requireGit(t)

	runner := toolchain.NewOSRunner()

	err := runner.Attach(context.Background(), t.TempDir(), "git", "definitely-not-a-subcommand")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exited with code")
}
