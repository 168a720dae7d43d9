// internal/normalize/normalize_test.go
package normalize

import (
	"testing"

	"clipzen/internal/config"
)

var testRules = []config.Replacement{
	{Original: "foo", Replacement: "bar"},
	{Original: "baz", Replacement: "qux"},
}

func TestApply_ReplacementsAndExclusions(t *testing.T) {
	exclude := config.Exclusions{'！': {}, '？': {}}

	got := Apply("foo baz １２３４！？", testRules, exclude)
	if got != "bar qux 1234！？" {
		t.Fatalf("got %q", got)
	}
}

func TestApply_ReplacementsNoExclusions(t *testing.T) {
	got := Apply("foo baz １２３４！？", testRules, nil)
	if got != "bar qux 1234!?" {
		t.Fatalf("got %q", got)
	}
}

func TestApply_ExclusionsOnly(t *testing.T) {
	exclude := config.Exclusions{'！': {}, '？': {}}

	got := Apply("foo baz １２３４！？", nil, exclude)
	if got != "foo baz 1234！？" {
		t.Fatalf("got %q", got)
	}
}

func TestApply_NoRulesNoExclusions(t *testing.T) {
	got := Apply("foo baz １２３４！？", nil, nil)
	if got != "foo baz 1234!?" {
		t.Fatalf("got %q", got)
	}
}

func TestApply_PartialExclusions(t *testing.T) {
	exclude := config.Exclusions{'！': {}}

	got := Apply("foo baz １２３４！？", testRules, exclude)
	if got != "bar qux 1234！?" {
		t.Fatalf("got %q", got)
	}
}

func TestApply_SequentialRules(t *testing.T) {
	// A replacement's output is visible to later rules. This is the
	// intended sequential semantics, not a round-trip law.
	rules := []config.Replacement{
		{Original: "a", Replacement: "b"},
		{Original: "b", Replacement: "c"},
	}

	got := Apply("a b", rules, nil)
	if got != "c c" {
		t.Fatalf("got %q, want %q", got, "c c")
	}
}

func TestApply_DuplicateOriginals(t *testing.T) {
	// Duplicates apply once each, in order; the first rewrite consumes
	// the occurrences the second would have matched.
	rules := []config.Replacement{
		{Original: "a", Replacement: "b"},
		{Original: "a", Replacement: "x"},
	}

	got := Apply("a", rules, nil)
	if got != "b" {
		t.Fatalf("got %q, want %q", got, "b")
	}
}

// ---- width folding ----

func TestFoldWidth_FullRange(t *testing.T) {
	for r := rune(fullwidthLo); r <= fullwidthHi; r++ {
		got := Apply(string(r), nil, nil)
		want := string(r - widthOffset)
		if got != want {
			t.Fatalf("rune %U: got %q want %q", r, got, want)
		}
	}
}

func TestFoldWidth_ExcludedMemberUnchanged(t *testing.T) {
	for r := rune(fullwidthLo); r <= fullwidthHi; r++ {
		exclude := config.Exclusions{r: {}}
		if got := Apply(string(r), nil, exclude); got != string(r) {
			t.Fatalf("excluded rune %U was folded to %q", r, got)
		}
	}
}

func TestFoldWidth_OutsideRangeUntouched(t *testing.T) {
	// Neighbors of the block boundaries plus unrelated scripts.
	inputs := []string{
		"＀",            // one below the block
		"｟",            // one above the block
		"あいう",          // hiragana
		"ｱｲｳ",          // half-width katakana
		"　",            // ideographic space
		"plain ascii!", // already half-width
	}
	for _, in := range inputs {
		if got := Apply(in, nil, nil); got != in {
			t.Fatalf("input %q altered to %q", in, got)
		}
	}
}

func TestFoldWidth_Idempotent(t *testing.T) {
	in := "ａｂｃ１２３！？ mixed テキスト～"

	once := Apply(in, nil, nil)
	twice := Apply(once, nil, nil)
	if once != twice {
		t.Fatalf("folding is not idempotent: %q vs %q", once, twice)
	}
}

func TestApply_Deterministic(t *testing.T) {
	exclude := config.Exclusions{'！': {}}
	in := "foo １！ baz"

	a := Apply(in, testRules, exclude)
	b := Apply(in, testRules, exclude)
	if a != b {
		t.Fatalf("identical inputs produced %q and %q", a, b)
	}
}
