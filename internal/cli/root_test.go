package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/git"
	"github.com/sigma-db/napi/internal/toolchain"
)

func TestRootCommand_RequiresSubcommand(t *testing.T) {
	root := NewRootCommand(filesystem.NewMockFileSystem(), git.NewMockGitClient(), toolchain.NewMockRunner())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{})

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "subcommand is required")
	require.Contains(t, out.String(), "Usage:")
}

func TestRootCommand_RejectsUnknownCommand(t *testing.T) {
	root := NewRootCommand(filesystem.NewMockFileSystem(), git.NewMockGitClient(), toolchain.NewMockRunner())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"publish"})

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown command")
}

func TestRootCommand_ShowsVersion(t *testing.T) {
	root := NewRootCommand(filesystem.NewMockFileSystem(), git.NewMockGitClient(), toolchain.NewMockRunner())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), toolVersion)
}

func TestRootCommand_RoutesSubcommands(t *testing.T) {
	fs := projectFS()
	fs.AddFile("/workspace/native/build/native.node", []byte("binary"))

	root := NewRootCommand(fs, git.NewMockGitClient(), toolchain.NewMockRunner())
	root.SetArgs([]string{"clean"})

	require.NoError(t, root.Execute())
	require.False(t, fs.Exists("/workspace/native/build"))
}

func TestRootCommand_AcceptsVerboseFlag(t *testing.T) {
	fs := projectFS()

	root := NewRootCommand(fs, git.NewMockGitClient(), toolchain.NewMockRunner())
	root.SetArgs([]string{"--verbose", "clean"})

	require.NoError(t, root.Execute())
}
