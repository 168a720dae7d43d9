// internal/clipboard/clipboard.go
package clipboard

import (
	"errors"
	"fmt"
)

// Conn is the exact clipboard contract the agent uses.
// Plain text only.
type Conn interface {
	Read() (string, error)
	Write(text string) error
}

// Factory constructs a Conn. ONE attempt per call; after a dead connection
// the agent redials through the factory on a future tick.
type Factory func() (Conn, error)

// ErrProbe means the provider was constructed but is not usable
// (e.g. no display or clipboard server available).
var ErrProbe = errors.New("clipboard: provider unusable")

// Open constructs a Conn through the factory and probes it: a successful
// read proves the provider works; if the read fails, an empty write is
// attempted instead. Construction can succeed on hosts where the clipboard
// is non-functional, hence the probe.
func Open(f Factory) (Conn, error) {
	c, err := f()
	if err != nil {
		return nil, err
	}
	if _, err := c.Read(); err == nil {
		return c, nil
	}
	if err := c.Write(""); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProbe, err)
	}
	return c, nil
}
