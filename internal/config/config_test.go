package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigma-db/napi/internal/filesystem"
)

// clearEnv keeps the host's NAPI_* variables out of the test
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NAPI_DIST_URL", "")
	t.Setenv("NAPI_COMPRESSION", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	fs := filesystem.NewMockFileSystem()

	settings, err := Load(fs, "")
	require.NoError(t, err)
	require.Equal(t, "https://nodejs.org/dist", settings.DistURL)
	require.Equal(t, CompressionGzip, settings.Compression)
}

func TestLoadHomeFile(t *testing.T) {
	clearEnv(t)
	fs := filesystem.NewMockFileSystem()
	fs.SetHomeDir("/home/test")
	fs.AddFile("/home/test/.napirc", []byte("dist_url: https://mirror.example.com/dist\n"))

	settings, err := Load(fs, "")
	require.NoError(t, err)
	require.Equal(t, "https://mirror.example.com/dist", settings.DistURL)
	require.Equal(t, CompressionGzip, settings.Compression, "unset keys keep their defaults")
}

func TestLoadProjectFileOverridesHome(t *testing.T) {
	clearEnv(t)
	fs := filesystem.NewMockFileSystem()
	fs.SetHomeDir("/home/test")
	fs.AddFile("/home/test/.napirc", []byte("dist_url: https://mirror.example.com/dist\ncompression: xz\n"))
	fs.AddFile("/workspace/proj/.napirc", []byte("dist_url: https://internal.example.com/node\n"))

	settings, err := Load(fs, "/workspace/proj")
	require.NoError(t, err)
	require.Equal(t, "https://internal.example.com/node", settings.DistURL)
	require.Equal(t, CompressionXZ, settings.Compression, "home-level keys survive when the project file does not set them")
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/proj/.napirc", []byte("dist_url: https://mirror.example.com/dist\n"))

	t.Setenv("NAPI_DIST_URL", "https://env.example.com/dist")

	settings, err := Load(fs, "/workspace/proj")
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com/dist", settings.DistURL)
}

func TestLoadInvalidYAML(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/proj/.napirc", []byte("dist_url: [not closed\n"))

	_, err := Load(fs, "/workspace/proj")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestValidate(t *testing.T) {
	t.Run("accepts gzip and xz", func(t *testing.T) {
		require.NoError(t, (&Settings{DistURL: "https://nodejs.org/dist", Compression: CompressionGzip}).Validate())
		require.NoError(t, (&Settings{DistURL: "https://nodejs.org/dist", Compression: CompressionXZ}).Validate())
	})

	t.Run("rejects unknown compression", func(t *testing.T) {
		err := (&Settings{DistURL: "https://nodejs.org/dist", Compression: "brotli"}).Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "unsupported compression")
	})

	t.Run("rejects empty dist URL", func(t *testing.T) {
		err := (&Settings{Compression: CompressionGzip}).Validate()
		require.Error(t, err)
	})
}
