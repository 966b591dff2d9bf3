package toolchain

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// CMakeVersion probes the generator for its version, e.g. "3.28.1".
// The reported version is pinned into generated build configurations.
func CMakeVersion(ctx context.Context, runner Runner) (string, error) {
	out, err := runner.Output(ctx, "", CMake, "--version")
	if err != nil {
		return "", fmt.Errorf("failed to probe cmake version: %w", err)
	}

	// First line looks like "cmake version 3.28.1"
	line, _, _ := strings.Cut(out, "\n")
	for _, field := range strings.Fields(line) {
		if semver.IsValid("v" + field) {
			return field, nil
		}
	}

	return "", fmt.Errorf("could not parse cmake version from %q", line)
}
