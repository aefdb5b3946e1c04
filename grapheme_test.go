package cstring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGraphemes(t *testing.T) {
	family := "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466"
	tt := []struct {
		s    string
		want []string
	}{
		{"", nil},
		{"ab", []string{"a", "b"}},
		{"aéb", []string{"a", "é", "b"}},
		{family, []string{family}},
		{"x" + family + "y", []string{"x", family, "y"}},
	}
	for _, tc := range tt {
		s := mk(t, tc.s)
		got := flatten(s.Graphemes())
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Graphemes(%q) mismatch (-want +got):\n%s", tc.s, diff)
		}
		if n := s.NumGraphemes(); n != len(tc.want) {
			t.Errorf("NumGraphemes(%q) is %v; expected %v", tc.s, n, len(tc.want))
		}
	}

	// The family ZWJ sequence is one perceived character but seven
	// codepoints; Len still counts codepoints.
	s := mk(t, family)
	if s.Len() != 7 {
		t.Errorf("Len(%q) is %v; expected 7", family, s.Len())
	}
	if s.NumGraphemes() != 1 {
		t.Errorf("NumGraphemes(%q) is %v; expected 1", family, s.NumGraphemes())
	}
}

func TestWidth(t *testing.T) {
	tt := []struct {
		s string
		w int
	}{
		{"", 0},
		{"abc", 3},
		{"世界", 4},
		{"a世b", 4},
	}
	for _, tc := range tt {
		if w := mk(t, tc.s).Width(); w != tc.w {
			t.Errorf("Width(%q) is %v; expected %v", tc.s, w, tc.w)
		}
	}
}

func TestNormalize(t *testing.T) {
	decomposed := mk(t, "café")
	if decomposed.Len() != 5 {
		t.Fatalf("Len is %v; expected 5", decomposed.Len())
	}
	composed := decomposed.Normalize()
	if composed.Len() != 4 {
		t.Errorf("normalized Len is %v; expected 4", composed.Len())
	}
	if composed.String() != "café" {
		t.Errorf("normalized form is %q; expected %q", composed.String(), "café")
	}
	if i := composed.Find("é"); i != 3 {
		t.Errorf("Find(%q) on normalized form is %v; expected 3", "é", i)
	}
	if i := decomposed.Find("é"); i != -1 {
		t.Errorf("Find(%q) on decomposed form is %v; expected -1", "é", i)
	}
}
