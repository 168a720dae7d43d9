// internal/clipboard/clipboard_test.go
package clipboard

import (
	"errors"
	"testing"
)

type fakeConn struct {
	text     string
	readErr  error
	writeErr error
	reads    int
	writes   []string
}

func (f *fakeConn) Read() (string, error) {
	f.reads++
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.text, nil
}

func (f *fakeConn) Write(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, text)
	f.text = text
	return nil
}

func TestOpen_ReadProbe(t *testing.T) {
	fc := &fakeConn{text: "hello"}

	c, err := Open(func() (Conn, error) { return fc, nil })
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	if c != Conn(fc) {
		t.Fatalf("Open returned a different conn")
	}
	if fc.reads != 1 {
		t.Fatalf("expected exactly one probe read, got %d", fc.reads)
	}
	if len(fc.writes) != 0 {
		t.Fatalf("write probe must not run when the read probe passes")
	}
}

func TestOpen_WriteProbeFallback(t *testing.T) {
	// An empty clipboard can fail reads on some providers; the empty
	// write is the second chance.
	fc := &fakeConn{readErr: errors.New("empty selection")}

	_, err := Open(func() (Conn, error) { return fc, nil })
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	if len(fc.writes) != 1 || fc.writes[0] != "" {
		t.Fatalf("expected one empty write probe, got %v", fc.writes)
	}
}

func TestOpen_BothProbesFail(t *testing.T) {
	fc := &fakeConn{
		readErr:  errors.New("no display"),
		writeErr: errors.New("no display"),
	}

	_, err := Open(func() (Conn, error) { return fc, nil })
	if !errors.Is(err, ErrProbe) {
		t.Fatalf("expected ErrProbe, got %v", err)
	}
}

func TestOpen_FactoryFailure(t *testing.T) {
	boom := errors.New("construction failed")

	_, err := Open(func() (Conn, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected factory error, got %v", err)
	}
}
