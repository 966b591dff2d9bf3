package dist

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/xi2/xz"

	"github.com/sigma-db/napi/internal/config"
	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/logger"
)

// Client downloads release artifacts into a project
type Client struct {
	fs       filesystem.FileSystem
	http     *http.Client
	settings *config.Settings
}

// NewClient creates a new Client
func NewClient(fs filesystem.FileSystem, settings *config.Settings) *Client {
	return &Client{
		fs:       fs,
		http:     &http.Client{},
		settings: settings,
	}
}

// FetchHeaders downloads the header archive for a release and extracts
// it into the project root. Extraction happens in a scratch directory
// that is swapped into place only once the archive has been fully
// unpacked, so a failed download never leaves a partial runtime
// directory behind. Re-fetching replaces an existing runtime directory.
func (c *Client) FetchHeaders(ctx context.Context, release Release, projectRoot string) (string, error) {
	url := release.HeadersURL(c.settings.DistURL, c.settings.Compression)

	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	scratch, err := c.scratchDir(projectRoot)
	if err != nil {
		return "", err
	}
	defer c.fs.RemoveAll(scratch)

	if err := c.extractArchive(body, scratch); err != nil {
		return "", err
	}

	extracted := filepath.Join(scratch, release.DirName())
	if !c.fs.Exists(extracted) {
		return "", fmt.Errorf("header archive did not contain %s", release.DirName())
	}

	target := release.Dir(projectRoot)
	if c.fs.Exists(target) {
		if err := c.fs.RemoveAll(target); err != nil {
			return "", fmt.Errorf("failed to replace %s: %w", target, err)
		}
	}
	if err := c.fs.Rename(extracted, target); err != nil {
		return "", fmt.Errorf("failed to move extracted headers into place: %w", err)
	}

	if info, err := c.fs.Stat(release.IncludeDir(projectRoot)); err != nil || !info.IsDir() {
		return "", fmt.Errorf("header archive did not contain include/node")
	}

	return target, nil
}

// FetchImportLibrary downloads the Windows import library into the
// lib subdirectory of the release's runtime directory. The library is
// written under a scratch name and renamed once complete.
func (c *Client) FetchImportLibrary(ctx context.Context, release Release, projectRoot string) (string, error) {
	url, err := release.ImportLibraryURL(c.settings.DistURL)
	if err != nil {
		return "", err
	}

	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to download import library: %w", err)
	}

	libDir := filepath.Dir(release.ImportLibrary(projectRoot))
	if err := c.fs.MkdirAll(libDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", libDir, err)
	}

	suffix, err := gonanoid.Generate(scratchAlphabet, 8)
	if err != nil {
		return "", fmt.Errorf("failed to generate scratch name: %w", err)
	}

	target := release.ImportLibrary(projectRoot)
	scratch := target + ".tmp-" + suffix
	if err := c.fs.WriteFile(scratch, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write import library: %w", err)
	}
	if err := c.fs.Rename(scratch, target); err != nil {
		c.fs.Remove(scratch)
		return "", fmt.Errorf("failed to move import library into place: %w", err)
	}

	return target, nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	logger.Debug("GET %s\n", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	return resp.Body, nil
}

const scratchAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func (c *Client) scratchDir(projectRoot string) (string, error) {
	suffix, err := gonanoid.Generate(scratchAlphabet, 8)
	if err != nil {
		return "", fmt.Errorf("failed to generate scratch name: %w", err)
	}

	dir := filepath.Join(projectRoot, ".napi-"+suffix)
	if err := c.fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return dir, nil
}

func (c *Client) extractArchive(r io.Reader, dest string) error {
	switch c.settings.Compression {
	case config.CompressionXZ:
		xzr, err := xz.NewReader(r, 0)
		if err != nil {
			return fmt.Errorf("failed to open xz stream: %w", err)
		}
		return c.extractTar(xzr, dest)
	default:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gzr.Close()
		return c.extractTar(gzr, dest)
	}
}

func (c *Client) extractTar(r io.Reader, dest string) error {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read header archive: %w", err)
		}

		name := filepath.FromSlash(hdr.Name)
		if !filepath.IsLocal(name) {
			return fmt.Errorf("header archive contains unsafe path %q", hdr.Name)
		}
		target := filepath.Join(dest, name)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := c.fs.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := c.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
			}
			data, err := io.ReadAll(tr)
			if err != nil {
				return fmt.Errorf("failed to read %s from archive: %w", hdr.Name, err)
			}
			if err := c.fs.WriteFile(target, data, hdr.FileInfo().Mode().Perm()); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}
		}
	}
}
