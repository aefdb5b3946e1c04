// Package cstring provides an immutable string value addressed by
// Unicode codepoint rather than byte offset. Every index, bound and
// length in this package counts codepoints, so a multi-byte character
// occupies exactly one position. Values are safe for concurrent use.
//
// The search operations Count, Find, Index, Rfind and Rindex take
// optional bounds as trailing integers: none searches the whole string,
// one sets the start, two set start and end. A negative bound counts
// back from the end of the string; bounds outside [0, Len()] are
// clamped. A match is only reported when its entire span lies within
// [start, end).
package cstring

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/rjkroege/cstring/internal/runes"
)

var (
	// ErrInvalidEncoding is returned by New and FromBytes when the
	// input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("cstring: invalid UTF-8 encoding")

	// ErrNotFound is returned by Index and Rindex when the needle
	// does not occur in the searched range.
	ErrNotFound = errors.New("cstring: substring not found")
)

// String is an immutable sequence of Unicode codepoints. The zero
// value is the empty string.
type String struct {
	r []rune
}

// New decodes s into a String. It fails with ErrInvalidEncoding if s
// is not valid UTF-8.
func New(s string) (String, error) {
	if !utf8.ValidString(s) {
		return String{}, ErrInvalidEncoding
	}
	return String{r: []rune(s)}, nil
}

// FromBytes decodes b into a String. It fails with ErrInvalidEncoding
// if b is not valid UTF-8.
func FromBytes(b []byte) (String, error) {
	if !utf8.Valid(b) {
		return String{}, ErrInvalidEncoding
	}
	return String{r: []rune(string(b))}, nil
}

// FromRunes copies r into a String.
func FromRunes(r []rune) String {
	cp := make([]rune, len(r))
	copy(cp, r)
	return String{r: cp}
}

// Must returns s or panics if err is non-nil. It is intended for use
// with literal inputs known to be well formed, as in
// cstring.Must(cstring.New("hello")).
func Must(s String, err error) String {
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the contents encoded as UTF-8. See fmt.Stringer interface.
func (s String) String() string { return string(s.r) }

// Bytes returns the contents encoded as UTF-8.
func (s String) Bytes() []byte { return []byte(string(s.r)) }

// Runes returns a copy of the codepoint sequence.
func (s String) Runes() []rune {
	cp := make([]rune, len(s.r))
	copy(cp, s.r)
	return cp
}

// Len returns the number of codepoints in s.
func (s String) Len() int { return len(s.r) }

// NumBytes returns the number of bytes needed to store the contents
// of s in UTF-8.
func (s String) NumBytes() int {
	bc := 0
	for _, r := range s.r {
		bc += utf8.RuneLen(r)
	}
	return bc
}

// At returns the codepoint at position i. A negative i counts back
// from the end. At panics if the resolved position is out of range.
func (s String) At(i int) rune {
	if i < 0 {
		i += len(s.r)
	}
	if i < 0 || i >= len(s.r) {
		panic("cstring: index out of range")
	}
	return s.r[i]
}

// fix resolves a caller-supplied position: negative counts back from
// the end, then the result is clamped to [0, Len()].
func (s String) fix(i int) int {
	if i < 0 {
		i += len(s.r)
	}
	if i < 0 {
		i = 0
	}
	if i > len(s.r) {
		i = len(s.r)
	}
	return i
}

// bounds resolves the optional trailing start/end arguments of the
// search operations. An inverted range is empty.
func (s String) bounds(span []int) (start, end int) {
	start, end = 0, len(s.r)
	switch len(span) {
	case 0:
	case 1:
		start = s.fix(span[0])
	case 2:
		start = s.fix(span[0])
		end = s.fix(span[1])
	default:
		panic("cstring: at most two bounds may be given")
	}
	if end < start {
		end = start
	}
	return start, end
}

// Slice returns the codepoints in [start, end). Positions resolve like
// search bounds: negative counts back from the end, out of range
// clamps, and an inverted range is empty.
func (s String) Slice(start, end int) String {
	start, end = s.fix(start), s.fix(end)
	if end < start {
		end = start
	}
	return String{r: s.r[start:end]}
}

// Count returns the number of non-overlapping occurrences of needle
// within the bounded range, scanning left to right and resuming past
// each matched span. An empty needle counts zero.
func (s String) Count(needle string, span ...int) int {
	sep := []rune(needle)
	if len(sep) == 0 {
		return 0
	}
	start, end := s.bounds(span)
	return runes.Count(s.r[start:end], sep)
}

// Find returns the position of the first occurrence of needle whose
// entire span lies within the bounded range, or -1 if there is none.
// The returned position is absolute, not relative to the start bound.
// An empty needle is never found.
func (s String) Find(needle string, span ...int) int {
	sep := []rune(needle)
	if len(sep) == 0 {
		return -1
	}
	start, end := s.bounds(span)
	i := runes.Index(s.r[start:end], sep)
	if i < 0 {
		return -1
	}
	return start + i
}

// Index is Find returning ErrNotFound in place of -1.
func (s String) Index(needle string, span ...int) (int, error) {
	if i := s.Find(needle, span...); i >= 0 {
		return i, nil
	}
	return 0, ErrNotFound
}

// Rfind returns the position of the last occurrence of needle whose
// entire span lies within the bounded range, or -1 if there is none.
func (s String) Rfind(needle string, span ...int) int {
	sep := []rune(needle)
	if len(sep) == 0 {
		return -1
	}
	start, end := s.bounds(span)
	i := runes.LastIndex(s.r[start:end], sep)
	if i < 0 {
		return -1
	}
	return start + i
}

// Rindex is Rfind returning ErrNotFound in place of -1.
func (s String) Rindex(needle string, span ...int) (int, error) {
	if i := s.Rfind(needle, span...); i >= 0 {
		return i, nil
	}
	return 0, ErrNotFound
}

// Contains reports whether needle occurs anywhere in s.
func (s String) Contains(needle string) bool {
	return runes.Index(s.r, []rune(needle)) >= 0
}

// HasPrefix reports whether the bounded range begins with prefix.
func (s String) HasPrefix(prefix string, span ...int) bool {
	start, end := s.bounds(span)
	return runes.HasPrefix(s.r[start:end], []rune(prefix))
}

// HasSuffix reports whether the bounded range ends with suffix.
func (s String) HasSuffix(suffix string, span ...int) bool {
	start, end := s.bounds(span)
	return runes.HasSuffix(s.r[start:end], []rune(suffix))
}

// Cut slices s around the first occurrence of sep, returning the text
// before and after it. If sep does not occur, Cut returns s, "", false.
func (s String) Cut(sep string) (before, after String, found bool) {
	sp := []rune(sep)
	if i := runes.Index(s.r, sp); i >= 0 {
		return String{r: s.r[:i]}, String{r: s.r[i+len(sp):]}, true
	}
	return s, String{}, false
}

// LastCut slices s around the last occurrence of sep. If sep does not
// occur, LastCut returns "", s, false.
func (s String) LastCut(sep string) (before, after String, found bool) {
	sp := []rune(sep)
	if i := runes.LastIndex(s.r, sp); i >= 0 {
		return String{r: s.r[:i]}, String{r: s.r[i+len(sp):]}, true
	}
	return String{}, s, false
}

// Split slices s into all substrings separated by sep, as in
// strings.Split. An empty sep splits into individual codepoints.
func (s String) Split(sep string) []String { return s.SplitN(sep, -1) }

// SplitN slices s into substrings separated by sep, as in
// strings.SplitN: n limits the total number of parts, with n < 0
// meaning no limit.
func (s String) SplitN(sep string, n int) []String {
	if n == 0 {
		return nil
	}
	sp := []rune(sep)
	if len(sp) == 0 {
		return s.explode(n)
	}
	out := []String{}
	rest := s.r
	for n < 0 || len(out) < n-1 {
		i := runes.Index(rest, sp)
		if i < 0 {
			break
		}
		out = append(out, String{r: rest[:i]})
		rest = rest[i+len(sp):]
	}
	return append(out, String{r: rest})
}

// explode splits s into at most n single-codepoint strings, with the
// final element holding the remainder.
func (s String) explode(n int) []String {
	l := len(s.r)
	if n < 0 || n > l {
		n = l
	}
	out := make([]String, 0, n)
	for i := 0; i < n-1; i++ {
		out = append(out, String{r: s.r[i : i+1]})
	}
	if n > 0 {
		out = append(out, String{r: s.r[n-1:]})
	}
	return out
}

// Fields splits s around each maximal run of whitespace, returning the
// non-empty pieces.
func (s String) Fields() []String {
	var out []String
	i := 0
	for i < len(s.r) {
		for i < len(s.r) && unicode.IsSpace(s.r[i]) {
			i++
		}
		if i == len(s.r) {
			break
		}
		j := i
		for j < len(s.r) && !unicode.IsSpace(s.r[j]) {
			j++
		}
		out = append(out, String{r: s.r[i:j]})
		i = j
	}
	return out
}

// Join concatenates elems, placing s between consecutive elements.
func (s String) Join(elems []String) String {
	switch len(elems) {
	case 0:
		return String{}
	case 1:
		return elems[0]
	}
	n := len(s.r) * (len(elems) - 1)
	for _, e := range elems {
		n += len(e.r)
	}
	out := make([]rune, 0, n)
	out = append(out, elems[0].r...)
	for _, e := range elems[1:] {
		out = append(out, s.r...)
		out = append(out, e.r...)
	}
	return String{r: out}
}

// Trim returns s with all leading and trailing codepoints contained in
// cutset removed.
func (s String) Trim(cutset string) String {
	cut := []rune(cutset)
	return String{r: runes.TrimRight(runes.TrimLeft(s.r, cut), cut)}
}

// TrimLeft returns s with all leading codepoints contained in cutset
// removed.
func (s String) TrimLeft(cutset string) String {
	return String{r: runes.TrimLeft(s.r, []rune(cutset))}
}

// TrimRight returns s with all trailing codepoints contained in cutset
// removed.
func (s String) TrimRight(cutset string) String {
	return String{r: runes.TrimRight(s.r, []rune(cutset))}
}

// TrimSpace returns s with all leading and trailing whitespace removed.
func (s String) TrimSpace() String {
	lo, hi := 0, len(s.r)
	for lo < hi && unicode.IsSpace(s.r[lo]) {
		lo++
	}
	for hi > lo && unicode.IsSpace(s.r[hi-1]) {
		hi--
	}
	return String{r: s.r[lo:hi]}
}

// Concat returns the concatenation of s and t.
func (s String) Concat(t String) String {
	out := make([]rune, 0, len(s.r)+len(t.r))
	out = append(out, s.r...)
	out = append(out, t.r...)
	return String{r: out}
}

// Repeat returns s repeated n times. A count of zero or less gives the
// empty string.
func (s String) Repeat(n int) String {
	if n <= 0 || len(s.r) == 0 {
		return String{}
	}
	out := make([]rune, 0, len(s.r)*n)
	for i := 0; i < n; i++ {
		out = append(out, s.r...)
	}
	return String{r: out}
}

func (s String) mapRunes(f func(rune) rune) String {
	out := make([]rune, len(s.r))
	for i, r := range s.r {
		out[i] = f(r)
	}
	return String{r: out}
}

// ToLower returns s with all codepoints mapped to lower case.
func (s String) ToLower() String { return s.mapRunes(unicode.ToLower) }

// ToUpper returns s with all codepoints mapped to upper case.
func (s String) ToUpper() String { return s.mapRunes(unicode.ToUpper) }

// SwapCase returns s with the case of every cased codepoint inverted.
func (s String) SwapCase() String {
	return s.mapRunes(func(r rune) rune {
		switch {
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		}
		return r
	})
}

func (s String) all(f func(rune) bool) bool {
	for _, r := range s.r {
		if !f(r) {
			return false
		}
	}
	return true
}

// IsAlpha reports whether every codepoint in s is a letter.
func (s String) IsAlpha() bool { return s.all(unicode.IsLetter) }

// IsDigit reports whether every codepoint in s is a digit.
func (s String) IsDigit() bool { return s.all(unicode.IsDigit) }

// IsAlnum reports whether every codepoint in s is a letter or a digit.
func (s String) IsAlnum() bool {
	return s.all(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// IsPrintable reports whether every codepoint in s is printable.
func (s String) IsPrintable() bool { return s.all(unicode.IsPrint) }

// IsSpace reports whether s is non-empty and every codepoint is
// whitespace.
func (s String) IsSpace() bool {
	return len(s.r) > 0 && s.all(unicode.IsSpace)
}

// IsLower reports whether s contains at least one lower case letter
// and no upper case letters.
func (s String) IsLower() bool {
	seen := false
	for _, r := range s.r {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			seen = true
		}
	}
	return seen
}

// IsUpper reports whether s contains at least one upper case letter
// and no lower case letters.
func (s String) IsUpper() bool {
	seen := false
	for _, r := range s.r {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			seen = true
		}
	}
	return seen
}

// Equal reports whether s and t contain the same codepoints.
func (s String) Equal(t String) bool { return runes.Equal(s.r, t.r) }

// Compare returns 0 if s == t, -1 if s < t and +1 if s > t, ordering
// lexicographically by codepoint.
func (s String) Compare(t String) int { return runes.Compare(s.r, t.r) }
