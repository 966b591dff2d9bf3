package cli

import (
	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/logger"
)

// rollback collects paths created by a command so they can be removed
// together when a later step fails. Removal is best effort; a path
// that no longer exists or cannot be deleted never masks the error
// that triggered the rollback.
type rollback struct {
	fs    filesystem.FileSystem
	paths []string
}

func newRollback(fs filesystem.FileSystem, paths ...string) *rollback {
	return &rollback{fs: fs, paths: paths}
}

func (r *rollback) run() {
	for i := len(r.paths) - 1; i >= 0; i-- {
		if err := filesystem.RemovePath(r.fs, r.paths[i], true); err != nil {
			logger.Warn("⚠️  failed to clean up %s: %v\n", r.paths[i], err)
		}
	}
}
