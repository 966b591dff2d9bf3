package git_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigma-db/napi/internal/git"
)

func TestMockGitClientInitRecording(t *testing.T) {
	mock := git.NewMockGitClient()

	require.True(t, mock.Available())
	require.NoError(t, mock.Init("/workspace/proj"))
	require.Equal(t, []string{"/workspace/proj"}, mock.Inits())
}

func TestMockGitClientAvailability(t *testing.T) {
	mock := git.NewMockGitClient()
	mock.SetAvailable(false)

	require.False(t, mock.Available())
}

func TestMockGitClientInitError(t *testing.T) {
	mock := git.NewMockGitClient()
	mock.InitError = errors.New("exit status 128")

	err := mock.Init("/workspace/proj")
	require.Error(t, err)
	require.Empty(t, mock.Inits(), "failed init should not be recorded")
}
