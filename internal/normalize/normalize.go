// internal/normalize/normalize.go
package normalize

import (
	"strings"

	"clipzen/internal/config"
)

// The contiguous Unicode block of full-width forms for ASCII punctuation,
// digits and letters: FULLWIDTH EXCLAMATION MARK through FULLWIDTH TILDE.
// Subtracting the offset yields the half-width twin (！ → !, Ａ → A).
const (
	fullwidthLo = '！'
	fullwidthHi = '～'
	widthOffset = 0xFEE0
)

// Apply runs the substitution rules in file order, then folds full-width
// characters not in the exclusion set to their half-width twins.
// Substitution is plain non-overlapping substring replacement, not regex,
// and is sequential: a replacement's output is visible to every later rule,
// so overlapping rules interact order-dependently. Pure.
func Apply(text string, rules []config.Replacement, exclude config.Exclusions) string {
	for _, r := range rules {
		text = strings.ReplaceAll(text, r.Original, r.Replacement)
	}
	return foldWidth(text, exclude)
}

// foldWidth maps runes in the full-width block to rune-widthOffset, skipping
// exclusion members. Runes outside the block pass through untouched
// regardless of exclusion membership.
func foldWidth(s string, exclude config.Exclusions) string {
	start := strings.IndexFunc(s, isFullwidth)
	if start < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:start])
	for _, r := range s[start:] {
		if isFullwidth(r) && !exclude.Contains(r) {
			b.WriteRune(r - widthOffset)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isFullwidth(r rune) bool {
	return r >= fullwidthLo && r <= fullwidthHi
}
