package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// GenerateUnifiedDiff renders a line-oriented diff from before to after.
// Returns empty string if content is identical.
func GenerateUnifiedDiff(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)

	written := 2
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			if written >= maxDiffLines {
				buf.WriteString(truncateMessage)
				buf.WriteString("\n")
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			written++
		}
	}

	return buf.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
