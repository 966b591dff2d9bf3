package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sigma-db/napi/internal/dist"
	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/git"
	"github.com/sigma-db/napi/internal/logger"
	"github.com/sigma-db/napi/internal/project"
	"github.com/sigma-db/napi/internal/scaffold"
	"github.com/sigma-db/napi/internal/toolchain"
)

// NewCommand handles the new command
type NewCommand struct {
	fs     filesystem.FileSystem
	git    git.GitClient
	runner toolchain.Runner

	noGit       bool
	distURL     string
	compression string
}

// NewNewCommand creates the scaffolding command
func NewNewCommand(fs filesystem.FileSystem, gitClient git.GitClient, runner toolchain.Runner) *cobra.Command {
	cmd := &NewCommand{fs: fs, git: gitClient, runner: runner}

	cobraCmd := &cobra.Command{
		Use:     "new <name>",
		Aliases: []string{"create"},
		Short:   "Scaffold a native addon project",
		Long: `Scaffold a native addon project.

Creates a project directory with a CMake build configuration, a source
stub exporting a greeting and a package manifest wired to this tool.
The headers matching the local Node runtime are installed alongside,
so the project compiles right away.`,
		Example: `  # Scaffold a project named hello
  napi new hello

  # Scaffold without initializing a git repository
  napi new hello --no-git`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVar(&cmd.noGit, "no-git", false, "Skip initializing a git repository")
	cobraCmd.Flags().StringVar(&cmd.distURL, "dist", "", "Base URL of the release file server")
	cobraCmd.Flags().StringVar(&cmd.compression, "compression", "", "Header archive compression (gzip or xz)")

	return cobraCmd
}

// Run executes the new command
func (c *NewCommand) Run(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := project.ValidateName(name); err != nil {
		return err
	}

	if _, err := c.runner.Look(toolchain.CMake); err != nil {
		return err
	}
	if _, err := c.runner.Look(toolchain.Node); err != nil {
		return err
	}

	ctx := context.Background()

	cmakeVersion, err := toolchain.CMakeVersion(ctx, c.runner)
	if err != nil {
		return err
	}
	release, err := dist.Probe(ctx, c.runner)
	if err != nil {
		return err
	}
	settings, err := resolveSettings(c.fs, "", c.distURL, c.compression)
	if err != nil {
		return err
	}

	cwd, err := c.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	root := filepath.Join(cwd, name)

	// Refuses to reuse an existing directory, whatever it contains.
	if err := c.fs.Mkdir(root, 0755); err != nil {
		return fmt.Errorf("failed to create project directory %s: %w", root, err)
	}
	rb := newRollback(c.fs, root)

	fmt.Printf("📦 Creating %s for Node.js %s (%s/%s)\n", name, release.Version, release.Platform, release.Arch)

	data := scaffold.Data{
		Name:         name,
		ToolVersion:  toolVersion,
		CMakeVersion: cmakeVersion,
		RuntimeDir:   release.DirName(),
		IsWindows:    release.IsWindows(),
		IsDarwin:     release.IsDarwin(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scaffold.NewScaffolder(c.fs).Write(root, data)
	})
	g.Go(func() error {
		return installDependencies(gctx, c.fs, settings, release, root)
	})
	if err := g.Wait(); err != nil {
		rb.run()
		return err
	}

	c.initRepository(ctx, root)

	fmt.Println(renderProjectCreated(name))

	return nil
}

// initRepository sets up version control for a scaffolded project.
// Failures leave the project usable, so they warn instead of erroring.
func (c *NewCommand) initRepository(ctx context.Context, root string) {
	if c.noGit {
		return
	}

	if !c.git.Available() {
		logger.Warn("⚠️  git not found on PATH, skipping repository setup\n")
		return
	}

	if err := c.git.WithContext(ctx).Init(root); err != nil {
		logger.Warn("⚠️  %v, continuing without version control\n", err)
		_ = filesystem.RemovePath(c.fs, filepath.Join(root, ".git"), true)
		return
	}

	if err := scaffold.NewScaffolder(c.fs).WriteIgnoreFile(root); err != nil {
		logger.Warn("⚠️  failed to write .gitignore: %v\n", err)
	}
}
