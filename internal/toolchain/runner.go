// Package toolchain locates and spawns the external tools the CLI
// drives: the CMake generator, the Ninja build tool, the Node runtime
// and its package manager.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sigma-db/napi/internal/logger"
)

// Tool names as resolved on the search path
const (
	CMake = "cmake"
	Ninja = "ninja"
	Node  = "node"
	Npm   = "npm"
)

// Runner provides an abstraction over external process execution for testability
type Runner interface {
	// Look resolves a tool on the search path
	Look(tool string) (string, error)

	// Output runs a tool and returns its trimmed standard output
	Output(ctx context.Context, dir, tool string, args ...string) (string, error)

	// Run executes a tool, relaying its standard output live. Standard
	// error is captured and folded into the returned error.
	Run(ctx context.Context, dir, tool string, args ...string) error

	// Attach executes a tool with both output streams connected to the
	// invoking process. The child's exit status is reported as an error.
	Attach(ctx context.Context, dir, tool string, args ...string) error
}

// OSRunner implements Runner by spawning real processes
type OSRunner struct{}

// NewOSRunner creates a new OSRunner
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

func (r *OSRunner) Look(tool string) (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", tool, err)
	}
	return path, nil
}

func (r *OSRunner) Output(ctx context.Context, dir, tool string, args ...string) (string, error) {
	trace(dir, tool, args)
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", commandError(tool, err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (r *OSRunner) Run(ctx context.Context, dir, tool string, args ...string) error {
	trace(dir, tool, args)
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return commandError(tool, err, stderr.String())
	}

	return nil
}

func (r *OSRunner) Attach(ctx context.Context, dir, tool string, args ...string) error {
	trace(dir, tool, args)
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with code %d", tool, exitErr.ExitCode())
		}
		return fmt.Errorf("%s failed: %w", tool, err)
	}

	return nil
}

// trace logs the command line when verbose output is enabled
func trace(dir, tool string, args []string) {
	cmdline := strings.Join(append([]string{tool}, args...), " ")
	if dir == "" {
		logger.Debug("exec %s\n", cmdline)
		return
	}
	logger.Debug("exec %s (in %s)\n", cmdline, dir)
}

func commandError(tool string, err error, stderr string) error {
	errMsg := strings.TrimSpace(stderr)
	if errMsg != "" {
		return fmt.Errorf("%s failed: %w: %s", tool, err, errMsg)
	}
	return fmt.Errorf("%s failed: %w", tool, err)
}
