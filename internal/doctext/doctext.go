// Package doctext extracts plain text from uploaded report files through an
// external recognition service.
package doctext

import (
	"context"
	"strings"
)

// Recognizer turns an uploaded document into plain text.
type Recognizer interface {
	Text(ctx context.Context, filename string, data []byte) (string, error)
}

// Normalize cleans recognized text: line endings unified, non-breaking
// spaces replaced, runs of blank lines collapsed.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, " ", " ")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
