package git

import (
	"context"
)

// GitClient provides an abstraction over git operations for testability
type GitClient interface {
	// Available reports whether the git executable is on the search path
	Available() bool

	// Init initializes a fresh repository in dir
	Init(dir string) error

	// WithContext returns a client whose commands run under ctx
	WithContext(ctx context.Context) GitClient
}
