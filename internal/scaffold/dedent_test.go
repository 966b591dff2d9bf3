package scaffold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDedent(t *testing.T) {
	t.Run("strips the first line's indentation from every line", func(t *testing.T) {
		input := "\n    first\n    second\n      nested\n"
		expected := strings.Join([]string{"first", "second", "  nested"}, eol)
		require.Equal(t, expected, Dedent(input))
	})

	t.Run("drops leading blank lines", func(t *testing.T) {
		input := "\n\n  \n    content\n"
		require.Equal(t, "content", Dedent(input))
	})

	t.Run("drops a single trailing blank line", func(t *testing.T) {
		input := "    content\n    "
		require.Equal(t, "content", Dedent(input))
	})

	t.Run("lines shallower than the first keep their text", func(t *testing.T) {
		input := "    deep\n  shallow\n"
		expected := strings.Join([]string{"deep", "shallow"}, eol)
		require.Equal(t, expected, Dedent(input))
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		require.Equal(t, "", Dedent(""))
		require.Equal(t, "", Dedent("\n\n  \n"))
	})

	t.Run("unindented input passes through", func(t *testing.T) {
		input := "first\nsecond"
		expected := strings.Join([]string{"first", "second"}, eol)
		require.Equal(t, expected, Dedent(input))
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		input := "\n    cmake_minimum_required(VERSION 3.28.1)\n    project(native)\n"
		once := Dedent(input)
		require.Equal(t, once, Dedent(once))
	})
}
