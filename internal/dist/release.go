// Package dist resolves and fetches Node release artifacts: the C/C++
// header archive every addon compiles against and, on Windows, the
// import library the linker needs.
package dist

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/sigma-db/napi/internal/config"
	"github.com/sigma-db/napi/internal/toolchain"
)

// RuntimeDirPattern globs the extracted runtime directories inside a
// project root, e.g. node-v22.9.0
const RuntimeDirPattern = "node-v*"

// probeScript asks the runtime to describe itself so downloads match
// the exact interpreter that will load the addon
const probeScript = `JSON.stringify({version:process.version,platform:process.platform,arch:process.arch})`

// Release identifies one published Node build. It decides the download
// URLs and the on-disk layout of everything fetched for it.
type Release struct {
	Version  string // as reported by the runtime, e.g. "v22.9.0"
	Platform string // e.g. "linux", "darwin", "win32"
	Arch     string // e.g. "x64", "ia32", "arm64"
}

// Probe asks the node executable on the search path for its version,
// platform and architecture.
func Probe(ctx context.Context, runner toolchain.Runner) (Release, error) {
	out, err := runner.Output(ctx, "", toolchain.Node, "-p", probeScript)
	if err != nil {
		return Release{}, fmt.Errorf("failed to probe node runtime: %w", err)
	}

	var raw struct {
		Version  string `json:"version"`
		Platform string `json:"platform"`
		Arch     string `json:"arch"`
	}
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		return Release{}, fmt.Errorf("failed to parse node probe output: %w", err)
	}

	release := Release{Version: raw.Version, Platform: raw.Platform, Arch: raw.Arch}
	if err := release.Validate(); err != nil {
		return Release{}, err
	}

	return release, nil
}

// Validate checks that the descriptor came from a plausible runtime
func (r Release) Validate() error {
	if !semver.IsValid(r.Version) {
		return fmt.Errorf("invalid runtime version %q", r.Version)
	}
	if r.Platform == "" {
		return fmt.Errorf("runtime reported an empty platform")
	}
	if r.Arch == "" {
		return fmt.Errorf("runtime reported an empty architecture")
	}
	return nil
}

// IsWindows reports whether the release needs the import library step
func (r Release) IsWindows() bool {
	return r.Platform == "win32"
}

// IsDarwin reports whether the release links with the macOS linker,
// which resolves the runtime's symbols at load time.
func (r Release) IsDarwin() bool {
	return r.Platform == "darwin"
}

// DirName returns the directory the header archive extracts to,
// e.g. node-v22.9.0
func (r Release) DirName() string {
	return "node-" + r.Version
}

// Dir returns the runtime directory inside a project root
func (r Release) Dir(projectRoot string) string {
	return filepath.Join(projectRoot, r.DirName())
}

// IncludeDir returns the directory holding node_api.h and friends
func (r Release) IncludeDir(projectRoot string) string {
	return filepath.Join(projectRoot, r.DirName(), "include", "node")
}

// ImportLibrary returns the path of the Windows linker library
func (r Release) ImportLibrary(projectRoot string) string {
	return filepath.Join(projectRoot, r.DirName(), "lib", "node.lib")
}

// HeadersURL returns the download URL of the header archive
func (r Release) HeadersURL(baseURL, compression string) string {
	ext := "gz"
	if compression == config.CompressionXZ {
		ext = "xz"
	}
	return fmt.Sprintf("%s/%s/%s-headers.tar.%s", strings.TrimSuffix(baseURL, "/"), r.Version, r.DirName(), ext)
}

// ImportLibraryURL returns the download URL of the Windows import
// library matching the release architecture.
func (r Release) ImportLibraryURL(baseURL string) (string, error) {
	if !r.IsWindows() {
		return "", fmt.Errorf("no import library is published for platform %q", r.Platform)
	}
	return fmt.Sprintf("%s/%s/win-%s/node.lib", strings.TrimSuffix(baseURL, "/"), r.Version, r.libArch()), nil
}

// libArch maps the runtime's architecture names onto the directory
// names used by the release file server.
func (r Release) libArch() string {
	if r.Arch == "ia32" {
		return "x86"
	}
	return r.Arch
}
