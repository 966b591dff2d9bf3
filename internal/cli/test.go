package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/project"
	"github.com/sigma-db/napi/internal/toolchain"
)

// TestCommand handles the test command
type TestCommand struct {
	fs     filesystem.FileSystem
	runner toolchain.Runner
}

// NewTestCommand creates a new test command
func NewTestCommand(fs filesystem.FileSystem, runner toolchain.Runner) *cobra.Command {
	cmd := &TestCommand{fs: fs, runner: runner}

	cobraCmd := &cobra.Command{
		Use:   "test",
		Short: "Smoke-test the built addon",
		Long: `Smoke-test the built addon.

Loads the addon in the Node runtime and prints its exports. The child
process shares the terminal, so anything the addon writes shows up
directly.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the test command
func (c *TestCommand) Run(cmd *cobra.Command, args []string) error {
	proj, err := project.Find(c.fs)
	if err != nil {
		return err
	}

	if _, err := c.runner.Look(toolchain.Node); err != nil {
		return err
	}

	manifest, err := project.ReadManifest(c.fs, proj.Root)
	if err != nil {
		return err
	}
	if manifest.Main != "" && !c.fs.Exists(filepath.Join(proj.Root, manifest.Main)) {
		return fmt.Errorf("%s does not exist (run `napi build` first)", manifest.Main)
	}

	ctx := context.Background()
	return c.runner.Attach(ctx, proj.Root, toolchain.Node, "-p", "require('.')")
}
