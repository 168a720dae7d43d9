// internal/config/state.go
package config

// LoadState is the per-file load outcome.
type LoadState int

const (
	LoadOk LoadState = iota
	LoadFailed
)

// FileState couples the last accepted fingerprint of one config file with
// its load state. The state machine suppresses repeated failure logging:
// only the first failure after a success is reported, and a later success
// re-arms the report.
type FileState struct {
	Fingerprint uint64
	State       LoadState
}

// MarkFailure records a failed load attempt and reports whether it is the
// first failure since the last successful one.
func (s *FileState) MarkFailure() bool {
	if s.State == LoadFailed {
		return false
	}
	s.State = LoadFailed
	return true
}

// MarkSuccess records a successful load attempt and reports whether the
// parsed content differs from the previously accepted fingerprint.
func (s *FileState) MarkSuccess(fp uint64) bool {
	s.State = LoadOk
	if s.Fingerprint == fp {
		return false
	}
	s.Fingerprint = fp
	return true
}
