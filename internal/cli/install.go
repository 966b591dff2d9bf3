package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sigma-db/napi/internal/config"
	"github.com/sigma-db/napi/internal/dist"
	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/project"
	"github.com/sigma-db/napi/internal/toolchain"
)

// InstallCommand handles the install command
type InstallCommand struct {
	fs     filesystem.FileSystem
	runner toolchain.Runner

	distURL     string
	compression string
}

// NewInstallCommand creates a new install command
func NewInstallCommand(fs filesystem.FileSystem, runner toolchain.Runner) *cobra.Command {
	cmd := &InstallCommand{fs: fs, runner: runner}

	cobraCmd := &cobra.Command{
		Use:     "install",
		Aliases: []string{"init"},
		Short:   "Install the Node headers matching the local runtime",
		Long: `Install the Node headers matching the local runtime.

Downloads the header archive published for the runtime found on the
search path and extracts it into a node-v<version> directory inside
the project. On Windows the import library the linker needs is fetched
alongside. Re-running replaces a previous installation.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.distURL, "dist", "", "Base URL of the release file server")
	cobraCmd.Flags().StringVar(&cmd.compression, "compression", "", "Header archive compression (gzip or xz)")

	return cobraCmd
}

// Run executes the install command
func (c *InstallCommand) Run(cmd *cobra.Command, args []string) error {
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
	settings, err := resolveSettings(c.fs, proj.Root, c.distURL, c.compression)
	if err != nil {
		return err
	}

	return installDependencies(ctx, c.fs, settings, release, proj.Root)
}

// resolveSettings loads the rc file chain and applies flag overrides
func resolveSettings(fs filesystem.FileSystem, projectRoot, distURL, compression string) (*config.Settings, error) {
	settings, err := config.Load(fs, projectRoot)
	if err != nil {
		return nil, err
	}

	if distURL != "" {
		settings.DistURL = distURL
	}
	if compression != "" {
		settings.Compression = compression
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// installDependencies fetches everything a build needs into the
// project: the header archive and, on Windows, the import library. A
// failed fetch never leaves a half-installed runtime directory behind.
func installDependencies(ctx context.Context, fs filesystem.FileSystem, settings *config.Settings, release dist.Release, projectRoot string) error {
	client := dist.NewClient(fs, settings)

	if _, err := client.FetchHeaders(ctx, release, projectRoot); err != nil {
		// Leftovers are only removed when no usable installation remains,
		// so a failed re-install keeps an intact previous one.
		if !fs.Exists(release.IncludeDir(projectRoot)) {
			_ = filesystem.RemovePath(fs, release.Dir(projectRoot), true)
		}
		return err
	}
	fmt.Printf("📦 Installed headers for Node.js %s\n", release.Version)

	if release.IsWindows() {
		if _, err := client.FetchImportLibrary(ctx, release, projectRoot); err != nil {
			_ = filesystem.RemovePath(fs, release.Dir(projectRoot), true)
			return err
		}
		fmt.Printf("📦 Installed import library for %s\n", release.Arch)
	}

	return nil
}
