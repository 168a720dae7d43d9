// internal/config/config.go
package config

// File names inside the config directory.
const (
	ReplacementsFile = "replacements.json"
	ExclusionsFile   = "exclusions.json"
)

// ---- REPLACEMENTS ----

// Replacement is one ordered substitution rule.
// Rules apply sequentially: later rules see the output of earlier ones,
// and duplicate originals apply once each, in order.
type Replacement struct {
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
}

// ---- EXCLUSIONS ----

// Exclusions is the set of characters exempt from width folding.
// No ordering.
type Exclusions map[rune]struct{}

// Contains reports whether r is exempt from width folding.
func (e Exclusions) Contains(r rune) bool {
	_, ok := e[r]
	return ok
}

// exclusionsFile mirrors the on-disk shape of exclusions.json.
// Each entry must be exactly one character.
type exclusionsFile struct {
	Exclude []string `json:"exclude"`
}
