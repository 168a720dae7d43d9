// internal/config/fingerprint.go
package config

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Fingerprints are computed over the parsed content, not the file bytes,
// so a no-op touch or a watcher false positive never counts as a change.

// FingerprintReplacements hashes the rule sequence. Order matters: rules
// apply sequentially, so a reorder is a real change.
func FingerprintReplacements(rules []Replacement) uint64 {
	h := xxhash.New()
	for _, r := range rules {
		writeString(h, r.Original)
		writeString(h, r.Replacement)
	}
	return h.Sum64()
}

// FingerprintExclusions hashes the exclusion set. Members are hashed in
// sorted rune order: reordering the file is a no-op.
func FingerprintExclusions(set Exclusions) uint64 {
	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	h := xxhash.New()
	var buf [4]byte
	for _, r := range runes {
		binary.LittleEndian.PutUint32(buf[:], uint32(r))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// writeString hashes a length prefix before the bytes so adjacent fields
// cannot alias ("ab"+"c" vs "a"+"bc").
func writeString(h *xxhash.Digest, s string) {
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(s)))
	_, _ = h.Write(n[:])
	_, _ = h.WriteString(s)
}
