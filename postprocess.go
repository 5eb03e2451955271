package shl

import (
	"fmt"
	"strings"
)

// numberLines prepends a numbered span to every output line. Lines are
// 1-based, space-padded to at least 3 characters. The empty segment after a
// trailing newline is not a line and gets no number.
func numberLines(s string) string {
	lines := strings.Split(s, "\n")

	last := len(lines) - 1
	for i, line := range lines {
		if i == last && line == "" {
			break
		}

		lines[i] = fmt.Sprintf(`<span class="%s">%3d</span> `, cssClass["line_number"], i+1) + line
	}

	return strings.Join(lines, "\n")
}

func wrapPre(s string) string {
	return "<pre>\n" + s + "</pre>\n"
}

// expandTabs replaces every literal tab in the buffer, markup included,
// with width spaces.
func expandTabs(s string, width int) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}
