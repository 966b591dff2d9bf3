// Package config resolves tool settings from rc files and the
// environment. Settings are looked up in increasing precedence:
// built-in defaults, ~/.napirc, <project>/.napirc, then environment
// variables. Command-line flags override all of these and are applied
// by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sigma-db/napi/internal/filesystem"
)

const (
	// FileName is the rc file looked up in the home and project directories
	FileName = ".napirc"

	// CompressionGzip selects the gzip-compressed header archive
	CompressionGzip = "gzip"
	// CompressionXZ selects the xz-compressed header archive
	CompressionXZ = "xz"

	defaultDistURL = "https://nodejs.org/dist"

	envDistURL     = "NAPI_DIST_URL"
	envCompression = "NAPI_COMPRESSION"
)

// Settings holds the resolved tool configuration
type Settings struct {
	// DistURL is the base URL of the release file server
	DistURL string `yaml:"dist_url"`
	// Compression selects the header archive flavor, gzip or xz
	Compression string `yaml:"compression"`
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{
		DistURL:     defaultDistURL,
		Compression: CompressionGzip,
	}
}

// Load resolves settings for a project rooted at projectRoot. Missing rc
// files are not an error; unparseable ones are. An empty projectRoot
// skips the project-level file.
func Load(fs filesystem.FileSystem, projectRoot string) (*Settings, error) {
	settings := Default()

	if home, err := fs.UserHomeDir(); err == nil {
		if err := settings.mergeFile(fs, filepath.Join(home, FileName)); err != nil {
			return nil, err
		}
	}

	if projectRoot != "" {
		if err := settings.mergeFile(fs, filepath.Join(projectRoot, FileName)); err != nil {
			return nil, err
		}
	}

	if url := os.Getenv(envDistURL); url != "" {
		settings.DistURL = url
	}
	if compression := os.Getenv(envCompression); compression != "" {
		settings.Compression = compression
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *Settings) mergeFile(fs filesystem.FileSystem, path string) error {
	data, err := fs.ReadFile(path)
	if err != nil {
		if !fs.Exists(path) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// Validate checks that the settings hold usable values
func (s *Settings) Validate() error {
	if s.DistURL == "" {
		return fmt.Errorf("dist URL must not be empty")
	}
	switch s.Compression {
	case CompressionGzip, CompressionXZ:
		return nil
	default:
		return fmt.Errorf("unsupported compression %q (expected %q or %q)", s.Compression, CompressionGzip, CompressionXZ)
	}
}
