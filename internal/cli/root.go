package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/git"
	"github.com/sigma-db/napi/internal/logger"
	"github.com/sigma-db/napi/internal/toolchain"
)

// toolVersion is the released version of the tool. Scaffolded projects
// pin it as their development dependency.
const toolVersion = "0.3.0"

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, gitClient git.GitClient, runner toolchain.Runner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "napi",
		Short: "Build native Node.js addons with CMake and Ninja",
		Long: `A CLI tool for native Node.js addon development.

napi scaffolds addon projects, installs the Node headers matching the
local runtime, drives CMake and Ninja builds and smoke-tests the
resulting addon.`,
		Version:       toolVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger.Init(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Invoked without a subcommand: show usage and fail.
			_ = cmd.Usage()
			return fmt.Errorf("a subcommand is required")
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable diagnostic output")

	// Add subcommands
	rootCmd.AddCommand(NewNewCommand(fs, gitClient, runner))
	rootCmd.AddCommand(NewInstallCommand(fs, runner))
	rootCmd.AddCommand(NewBuildCommand(fs, runner))
	rootCmd.AddCommand(NewTestCommand(fs, runner))
	rootCmd.AddCommand(NewCleanCommand(fs))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	gitClient := git.NewOSGitClient()
	runner := toolchain.NewOSRunner()

	rootCmd := NewRootCommand(fs, gitClient, runner)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Error: %v\n", err)
		return err
	}

	return nil
}
