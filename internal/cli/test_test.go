package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/toolchain"
)

func TestTest_RunsSmokeTest(t *testing.T) {
	fs := projectFS()
	fs.AddFile("/workspace/native/build/native.node", []byte("binary"))
	runner := addonToolchain()

	cmd := &TestCommand{fs: fs, runner: runner}
	require.NoError(t, cmd.Run(nil, nil))

	calls := runner.CallsTo(toolchain.Node)
	require.Len(t, calls, 1)
	require.Equal(t, []string{"-p", "require('.')"}, calls[0].Args)
	require.Equal(t, "/workspace/native", calls[0].Dir)
}

func TestTest_RequiresBuiltAddon(t *testing.T) {
	fs := projectFS()
	runner := addonToolchain()

	cmd := &TestCommand{fs: fs, runner: runner}
	err := cmd.Run(nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "run `napi build` first")
	require.Empty(t, runner.CallsTo(toolchain.Node))
}

func TestTest_PropagatesRuntimeFailure(t *testing.T) {
	fs := projectFS()
	fs.AddFile("/workspace/native/build/native.node", []byte("binary"))
	runner := addonToolchain()
	runner.AttachErrors[toolchain.Node] = errors.New("node exited with code 1")

	cmd := &TestCommand{fs: fs, runner: runner}
	err := cmd.Run(nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "exited with code 1")
}

func TestTest_RequiresProject(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/workspace/empty")
	fs.SetCurrentDir("/workspace/empty")

	cmd := &TestCommand{fs: fs, runner: addonToolchain()}
	err := cmd.Run(nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no package.json found")
}
