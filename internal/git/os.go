package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// OSGitClient implements GitClient using real git commands
type OSGitClient struct {
	ctx context.Context
}

// NewOSGitClient creates a new OSGitClient
func NewOSGitClient() *OSGitClient {
	return &OSGitClient{
		ctx: context.Background(),
	}
}

// WithContext returns a new client with the given context
func (g *OSGitClient) WithContext(ctx context.Context) GitClient {
	return &OSGitClient{
		ctx: ctx,
	}
}

// Available reports whether git resolves on the search path
func (g *OSGitClient) Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Init initializes a fresh repository in dir
func (g *OSGitClient) Init(dir string) error {
	cmd := exec.CommandContext(g.ctx, "git", "init")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg != "" {
			return fmt.Errorf("failed to initialize repository: %w: %s", err, errMsg)
		}
		return fmt.Errorf("failed to initialize repository: %w", err)
	}

	return nil
}
