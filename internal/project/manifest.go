package project

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/sigma-db/napi/internal/filesystem"
)

// Manifest mirrors the package.json fields the tool generates
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private,omitempty"`
	Main            string            `json:"main,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// ReadManifest loads the manifest of the project rooted at root
func ReadManifest(fs filesystem.FileSystem, root string) (Manifest, error) {
	path := filepath.Join(root, ManifestFileName)

	data, err := fs.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return m, nil
}

// WriteManifest writes the manifest of the project rooted at root
func WriteManifest(fs filesystem.FileSystem, root string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	path := filepath.Join(root, ManifestFileName)
	if err := fs.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
