package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sigma-db/napi/internal/filesystem"
)

// Find walks up from the current working directory to the nearest
// directory containing a manifest and returns the project rooted
// there. The name falls back to the directory basename when the
// manifest does not carry one.
func Find(fs filesystem.FileSystem) (*Project, error) {
	cwd, err := fs.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	dir := cwd
	for {
		if fs.Exists(filepath.Join(dir, ManifestFileName)) {
			name := filepath.Base(dir)
			if manifest, err := ReadManifest(fs, dir); err == nil && strings.TrimSpace(manifest.Name) != "" {
				name = manifest.Name
			}
			return &Project{Name: name, Root: dir}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("no %s found in %s or any parent directory (run `napi new <name>` first)", ManifestFileName, cwd)
		}
		dir = parent
	}
}
