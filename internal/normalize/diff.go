// internal/normalize/diff.go
package normalize

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// HighlightDiff renders formatted against original for the rewrite log
// line: additions in green, removals in red, unchanged text as-is.
func HighlightDiff(original, formatted string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, formatted, false)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString(ansiGreen)
			b.WriteString(d.Text)
			b.WriteString(ansiReset)
		case diffmatchpatch.DiffDelete:
			b.WriteString(ansiRed)
			b.WriteString(d.Text)
			b.WriteString(ansiReset)
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
