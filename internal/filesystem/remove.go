package filesystem

import (
	"fmt"
)

// RemovePath deletes a file or a directory tree, whichever path turns
// out to be. A missing path is an error unless ignoreMissing is set,
// in which case it is a no-op.
func RemovePath(fs FileSystem, path string, ignoreMissing bool) error {
	info, err := fs.Stat(path)
	if err != nil {
		if ignoreMissing {
			return nil
		}
		return fmt.Errorf("invalid path %s: %w", path, err)
	}

	if info.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
