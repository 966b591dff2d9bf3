package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sigma-db/napi/internal/dist"
	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/project"
)

// CleanCommand handles the clean command
type CleanCommand struct {
	fs filesystem.FileSystem

	all bool
}

// NewCleanCommand creates a new clean command
func NewCleanCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &CleanCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "clean [all]",
		Short: "Remove build outputs",
		Long: `Remove build outputs.

Deletes the build directory. When all is requested, installed runtime
headers are removed as well, returning the project to its freshly
scaffolded state.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVar(&cmd.all, "all", false, "Also remove installed runtime headers")

	return cobraCmd
}

// Run executes the clean command
func (c *CleanCommand) Run(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if args[0] != "all" {
			return fmt.Errorf("unknown clean target %q (supported: all)", args[0])
		}
		c.all = true
	}

	proj, err := project.Find(c.fs)
	if err != nil {
		return err
	}

	if err := filesystem.RemovePath(c.fs, proj.BuildDir(), true); err != nil {
		return fmt.Errorf("failed to remove build directory: %w", err)
	}

	if !c.all {
		fmt.Printf("🧹 Removed build outputs of %s\n", proj.Name)
		return nil
	}

	matches, err := c.fs.Glob(filepath.Join(proj.Root, dist.RuntimeDirPattern))
	if err != nil {
		return fmt.Errorf("failed to locate runtime directories: %w", err)
	}
	for _, dir := range matches {
		if err := filesystem.RemovePath(c.fs, dir, true); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
	}

	fmt.Printf("🧹 Removed build outputs and runtime headers of %s\n", proj.Name)

	return nil
}
