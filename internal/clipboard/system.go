// internal/clipboard/system.go
package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// systemConn talks to the OS clipboard.
type systemConn struct{}

// System is the Factory for the real OS clipboard.
func System() (Conn, error) {
	if atotto.Unsupported {
		return nil, fmt.Errorf("%w: no clipboard backend on this platform", ErrProbe)
	}
	return systemConn{}, nil
}

func (systemConn) Read() (string, error) {
	text, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard: read: %w", err)
	}
	return text, nil
}

func (systemConn) Write(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: write: %w", err)
	}
	return nil
}
