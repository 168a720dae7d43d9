// internal/config/load.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Failure classes for config loads. Callers classify with errors.Is.
var (
	// ErrRead means the file is missing or unreadable.
	ErrRead = errors.New("config: read failed")
	// ErrParse means the JSON is malformed or violates the expected shape.
	ErrParse = errors.New("config: parse failed")
)

// LoadReplacements reads and decodes a replacements file.
// The result preserves file order.
func LoadReplacements(path string) ([]Replacement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	var rules []Replacement
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return rules, nil
}

// LoadExclusions reads and decodes an exclusions file into a set.
// Entries longer or shorter than one character are a parse failure.
func LoadExclusions(path string) (Exclusions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	var f exclusionsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	set := make(Exclusions, len(f.Exclude))
	for _, s := range f.Exclude {
		runes := []rune(s)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%w: %s: exclude entry %q must be exactly one character", ErrParse, path, s)
		}
		set[runes[0]] = struct{}{}
	}
	return set, nil
}
