// internal/normalize/diff_test.go
package normalize

import "testing"

func TestHighlightDiff_NoChanges(t *testing.T) {
	got := HighlightDiff("This is a test.", "This is a test.")
	if got != "This is a test." {
		t.Fatalf("got %q", got)
	}
}

func TestHighlightDiff_Addition(t *testing.T) {
	got := HighlightDiff("This is a test", "This is a test!")
	want := "This is a test\x1b[32m!\x1b[0m"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestHighlightDiff_Removal(t *testing.T) {
	got := HighlightDiff("This is a test!", "This is a test")
	want := "This is a test\x1b[31m!\x1b[0m"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestHighlightDiff_Change(t *testing.T) {
	got := HighlightDiff("A string", "B string")
	want := "\x1b[31mA\x1b[0m\x1b[32mB\x1b[0m string"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
