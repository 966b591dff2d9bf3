package cli

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigma-db/napi/internal/filesystem"
	"github.com/sigma-db/napi/internal/toolchain"
)

// nodeProbeScript mirrors the expression the runtime probe evaluates
const nodeProbeScript = `JSON.stringify({version:process.version,platform:process.platform,arch:process.arch})`

const testVersion = "v22.9.0"

// addonToolchain returns a runner with the full toolchain on the
// path, reporting a Linux x64 runtime.
func addonToolchain() *toolchain.MockRunner {
	runner := toolchain.NewMockRunner()
	runner.AddTool(toolchain.CMake, "/usr/bin/cmake")
	runner.AddTool(toolchain.Ninja, "/usr/bin/ninja")
	runner.AddTool(toolchain.Node, "/usr/bin/node")
	runner.SetOutput(toolchain.CMake, []string{"--version"},
		"cmake version 3.28.1\n\nCMake suite maintained and supported by Kitware (kitware.com/cmake).")
	runner.SetOutput(toolchain.Node, []string{"-p", nodeProbeScript},
		`{"version":"v22.9.0","platform":"linux","arch":"x64"}`)
	return runner
}

// windowsToolchain reports a Windows x64 runtime instead
func windowsToolchain() *toolchain.MockRunner {
	runner := addonToolchain()
	runner.SetOutput(toolchain.Node, []string{"-p", nodeProbeScript},
		`{"version":"v22.9.0","platform":"win32","arch":"x64"}`)
	return runner
}

// headersArchive builds a gzip-compressed header archive laid out the
// way the release file server publishes them.
func headersArchive(t *testing.T, version string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	root := "node-" + version + "/"
	for _, dir := range []string{root, root + "include/", root + "include/node/"} {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: dir, Typeflag: tar.TypeDir, Mode: 0755}))
	}

	content := []byte("#define NAPI_VERSION 8\n")
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     root + "include/node/node_api.h",
		Typeflag: tar.TypeReg,
		Mode:     0644,
		Size:     int64(len(content)),
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)

	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// distServer serves the artifacts of a single release
func distServer(t *testing.T, version string, withImportLibrary bool) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	archive := headersArchive(t, version)
	mux.HandleFunc("/dist/"+version+"/node-"+version+"-headers.tar.gz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	})
	if withImportLibrary {
		mux.HandleFunc("/dist/"+version+"/win-x64/node.lib", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("!<arch>import-library"))
		})
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// emptyDistServer answers every request with 404
func emptyDistServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	return srv
}

// projectFS returns a mock filesystem holding a scaffolded project at
// /workspace/native with the working directory inside it.
func projectFS() *filesystem.MockFileSystem {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/native/package.json", []byte(`{"name": "native", "version": "0.1.0", "main": "./build/native.node"}`))
	fs.AddFile("/workspace/native/src/native.c", []byte("#include <node_api.h>\n"))
	fs.AddFile("/workspace/native/CMakeLists.txt", []byte("project(native LANGUAGES C)\n"))
	fs.SetCurrentDir("/workspace/native")
	return fs
}

// installedHeaders marks the runtime headers of a release as installed
func installedHeaders(fs *filesystem.MockFileSystem, version string) {
	fs.AddFile("/workspace/native/node-"+version+"/include/node/node_api.h", []byte("#define NAPI_VERSION 8\n"))
}
