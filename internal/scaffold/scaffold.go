// Package scaffold renders the generated files of a fresh addon
// project: the CMake build configuration, the native source stub, the
// manifest and the version control ignore list.
package scaffold

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/project"
)

// DefaultNapiVersion is the stable native API version new projects
// compile against.
const DefaultNapiVersion = 8

// initialVersion seeds the manifest of a fresh project
const initialVersion = "0.1.0"

// Data carries the substitutions for one project scaffold
type Data struct {
	Name         string
	ToolVersion  string
	CMakeVersion string
	RuntimeDir   string
	IsWindows    bool
	IsDarwin     bool
	NapiVersion  int
}

// Scaffolder writes rendered project files through a FileSystem
type Scaffolder struct {
	fs filesystem.FileSystem
}

// NewScaffolder creates a new Scaffolder
func NewScaffolder(fs filesystem.FileSystem) *Scaffolder {
	return &Scaffolder{fs: fs}
}

// Write renders the build configuration, source stub and manifest into
// root. The ignore file is not part of this step; it is written by
// WriteIgnoreFile once a repository has actually been initialized.
func (s *Scaffolder) Write(root string, data Data) error {
	if data.NapiVersion == 0 {
		data.NapiVersion = DefaultNapiVersion
	}

	cmakeLists, err := render("CMakeLists.txt", cmakeListsTemplate, data)
	if err != nil {
		return err
	}
	source, err := render("source", sourceTemplate, data)
	if err != nil {
		return err
	}

	sourceDir := filepath.Join(root, project.SourceDirName)
	if err := s.fs.MkdirAll(sourceDir, 0755); err != nil {
		return fmt.Errorf("failed to create source directory: %w", err)
	}
	if err := s.fs.WriteFile(filepath.Join(root, "CMakeLists.txt"), []byte(cmakeLists+eol), 0644); err != nil {
		return fmt.Errorf("failed to write CMakeLists.txt: %w", err)
	}
	if err := s.fs.WriteFile(filepath.Join(sourceDir, data.Name+".c"), []byte(source+eol), 0644); err != nil {
		return fmt.Errorf("failed to write source stub: %w", err)
	}

	manifest := project.Manifest{
		Name:    data.Name,
		Version: initialVersion,
		Private: true,
		Main:    fmt.Sprintf("./%s/%s.node", project.BuildDirName, data.Name),
		Scripts: map[string]string{
			"install": "napi install",
			"build":   "napi build",
			"test":    "napi test",
		},
		DevDependencies: map[string]string{
			"@sigma-db/napi": "^" + data.ToolVersion,
		},
	}

	return project.WriteManifest(s.fs, root, manifest)
}

// WriteIgnoreFile writes the version control ignore list into root
func (s *Scaffolder) WriteIgnoreFile(root string) error {
	content, err := render(".gitignore", ignoreTemplate, nil)
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(filepath.Join(root, ".gitignore"), []byte(content+eol), 0644); err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}
	return nil
}

func render(name, raw string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}

	return Dedent(buf.String()), nil
}
