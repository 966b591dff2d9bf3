package scaffold

import (
	"runtime"
	"strings"
)

// eol is the native line ending generated files are joined with
var eol = "\n"

func init() {
	if runtime.GOOS == "windows" {
		eol = "\r\n"
	}
}

// Dedent normalizes a readably-indented multi-line literal into clean
// file content: leading blank lines and a single trailing blank line
// are dropped, the leading-space indentation of the first remaining
// line is removed from every line, and lines are joined with the
// platform's native line ending. An all-blank input yields "".
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	indent := len(lines[0]) - len(strings.TrimLeft(lines[0], " "))
	for i, line := range lines {
		width := 0
		for width < indent && width < len(line) && line[width] == ' ' {
			width++
		}
		lines[i] = line[width:]
	}

	return strings.Join(lines, eol)
}
