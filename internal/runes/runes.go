// Package runes implements search and comparison primitives over rune
// slices. All indices are rune offsets.
package runes

// Equal returns a boolean reporting whether a and b
// are the same length and contain the same runes.
func Equal(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i, r := range a {
		if r != b[i] {
			return false
		}
	}
	return true
}

// Compare returns an integer comparing a and b lexicographically by
// codepoint: 0 if a == b, -1 if a < b, +1 if a > b.
func Compare(a, b []rune) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// HasPrefix tests whether the rune slice s begins with prefix.
func HasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

// HasSuffix tests whether the rune slice s ends with suffix.
func HasSuffix(s, suffix []rune) bool {
	if len(suffix) > len(s) {
		return false
	}
	return Equal(s[len(s)-len(suffix):], suffix)
}

// Index returns the index of the first instance of sep in s, or -1 if sep is not present in s.
func Index(s, sep []rune) int {
	n := len(sep)
	switch {
	case n > len(s):
		return -1
	case n == 0:
		return 0
	}
	for i := range s[:len(s)-n+1] {
		if HasPrefix(s[i:], sep) {
			return i
		}
	}
	return -1
}

// LastIndex returns the index of the last instance of sep in s, or -1 if
// sep is not present in s. An empty sep matches at len(s).
func LastIndex(s, sep []rune) int {
	n := len(sep)
	switch {
	case n > len(s):
		return -1
	case n == 0:
		return len(s)
	}
	for i := len(s) - n; i >= 0; i-- {
		if HasPrefix(s[i:], sep) {
			return i
		}
	}
	return -1
}

// IndexRune returns the index of the first occurrence in s of the given rune r.
// It returns -1 if rune is not present in s.
func IndexRune(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}

// ContainsRune reports whether the rune is contained in the runes slice s.
func ContainsRune(s []rune, r rune) bool {
	return IndexRune(s, r) >= 0
}

// Count returns the number of non-overlapping instances of sep in s.
// After a match the scan resumes past the matched span rather than one
// position forward. An empty sep counts zero.
func Count(s, sep []rune) int {
	if len(sep) == 0 {
		return 0
	}
	n := 0
	for i := 0; i+len(sep) <= len(s); {
		if HasPrefix(s[i:], sep) {
			n++
			i += len(sep)
		} else {
			i++
		}
	}
	return n
}

// TrimLeft returns a subslice of s by slicing off all leading runes
// contained in cutset.
func TrimLeft(s, cutset []rune) []rune {
	for len(s) > 0 && ContainsRune(cutset, s[0]) {
		s = s[1:]
	}
	return s
}

// TrimRight returns a subslice of s by slicing off all trailing runes
// contained in cutset.
func TrimRight(s, cutset []rune) []rune {
	for len(s) > 0 && ContainsRune(cutset, s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}
