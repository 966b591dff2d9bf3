// Package project models a scaffolded addon project on disk.
package project

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// ManifestFileName is the file marking a project root
	ManifestFileName = "package.json"
	// SourceDirName holds the native source stub
	SourceDirName = "src"
	// BuildDirName is the disposable build output directory
	BuildDirName = "build"
)

// Project is an addon project rooted somewhere on disk
type Project struct {
	Name string
	Root string
}

// SourceDir returns the native source directory
func (p *Project) SourceDir() string {
	return filepath.Join(p.Root, SourceDirName)
}

// BuildDir returns the build output directory
func (p *Project) BuildDir() string {
	return filepath.Join(p.Root, BuildDirName)
}

// ManifestPath returns the path of the project manifest
func (p *Project) ManifestPath() string {
	return filepath.Join(p.Root, ManifestFileName)
}

// Project names become directory names, npm package names and (after
// snake_casing) C identifiers, so the accepted alphabet is the
// intersection of all three.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// maxNameLength matches the npm registry limit
const maxNameLength = 214

// ValidateName checks that name is usable as a project name
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("project name %q is too long (max %d characters)", name, maxNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: use lowercase letters, digits, - and _, starting with a letter", name)
	}
	return nil
}
