package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sigma-db/napi/internal/dist"
	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/project"
	"github.com/sigma-db/napi/internal/toolchain"
)

// BuildCommand handles the build command
type BuildCommand struct {
	fs     filesystem.FileSystem
	runner toolchain.Runner

	debug bool
}

// NewBuildCommand creates a new build command
func NewBuildCommand(fs filesystem.FileSystem, runner toolchain.Runner) *cobra.Command {
	cmd := &BuildCommand{fs: fs, runner: runner}

	cobraCmd := &cobra.Command{
		Use:   "build [debug]",
		Short: "Compile the addon with CMake and Ninja",
		Long: `Compile the addon with CMake and Ninja.

Configures the build directory with the Ninja generator and runs the
build. Builds are Release unless debug is requested.`,
		Example: `  # Release build
  napi build

  # Debug build
  napi build debug`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVar(&cmd.debug, "debug", false, "Compile a Debug build")

	return cobraCmd
}

// Run executes the build command
func (c *BuildCommand) Run(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if args[0] != "debug" {
			return fmt.Errorf("unknown build type %q (supported: debug)", args[0])
		}
		c.debug = true
	}

	proj, err := project.Find(c.fs)
	if err != nil {
		return err
	}

	if _, err := c.runner.Look(toolchain.Node); err != nil {
		return err
	}

	ctx := context.Background()

	release, err := dist.Probe(ctx, c.runner)
	if err != nil {
		return err
	}

	// Every precondition is checked before the first tool runs.
	var g errgroup.Group
	g.Go(func() error {
		_, err := c.runner.Look(toolchain.CMake)
		return err
	})
	g.Go(func() error {
		_, err := c.runner.Look(toolchain.Ninja)
		return err
	})
	g.Go(func() error {
		if !c.fs.Exists(release.IncludeDir(proj.Root)) {
			return fmt.Errorf("headers for Node.js %s are not installed (run `napi install` first)", release.Version)
		}
		return nil
	})
	if release.IsWindows() {
		g.Go(func() error {
			if !c.fs.Exists(release.ImportLibrary(proj.Root)) {
				return fmt.Errorf("import library for Node.js %s is not installed (run `napi install` first)", release.Version)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	buildType := "Release"
	if c.debug {
		buildType = "Debug"
	}

	buildDir := proj.BuildDir()
	if err := c.fs.MkdirAll(buildDir, 0755); err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}

	// A failed build leaves no build directory behind, so the next
	// attempt reconfigures from scratch instead of trusting a stale
	// CMake cache.
	rb := newRollback(c.fs, buildDir)

	fmt.Printf("🔨 Building %s (%s)\n", proj.Name, buildType)

	if err := c.runner.Run(ctx, proj.Root, toolchain.CMake, "-S", proj.Root, "-B", buildDir, "-G", "Ninja", "-DCMAKE_BUILD_TYPE="+buildType); err != nil {
		rb.run()
		return fmt.Errorf("failed to configure build: %w", err)
	}
	if err := c.runner.Run(ctx, buildDir, toolchain.Ninja); err != nil {
		rb.run()
		return fmt.Errorf("failed to compile: %w", err)
	}

	fmt.Println(successStyle.Render("✓ Built " + proj.Name))

	return nil
}
