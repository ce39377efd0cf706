package textify

import "strconv"

// MarkerSequence yields the markers of consecutive ordered-list items.
type MarkerSequence interface {
	// Current returns the marker of the current item.
	Current() string
	// Advance moves to the marker of the next item.
	Advance()
}

// NewMarkerSequence starts a sequence at seed. Decimal seeds count as
// integers, anything else advances with Successor ("a", "b", ... "z", "aa").
func NewMarkerSequence(seed string) MarkerSequence {
	if n, err := strconv.Atoi(seed); err == nil && strconv.Itoa(n) == seed {
		return &numericSequence{n: n}
	}
	return &successorSequence{cur: seed}
}

type numericSequence struct {
	n int
}

func (s *numericSequence) Current() string { return strconv.Itoa(s.n) }
func (s *numericSequence) Advance()        { s.n++ }

type successorSequence struct {
	cur string
}

func (s *successorSequence) Current() string { return s.cur }
func (s *successorSequence) Advance()        { s.cur = Successor(s.cur) }

// Successor increments s the way alphabetic counters do: the rightmost ASCII
// letter or digit is bumped and carries leftwards over the other letters and
// digits, skipping punctuation ("az" -> "ba", "zz" -> "aaa", "a9" -> "b0",
// "1.9" -> "2.0"). Without any letter or digit the last rune is bumped.
func Successor(s string) string {
	if s == "" {
		return ""
	}
	rs := []rune(s)
	i := prevAlnum(rs, len(rs)-1)
	if i < 0 {
		rs[len(rs)-1]++
		return string(rs)
	}
	for {
		next, carry := bumpRune(rs[i])
		old := rs[i]
		rs[i] = next
		if !carry {
			return string(rs)
		}
		j := prevAlnum(rs, i-1)
		if j < 0 {
			out := make([]rune, 0, len(rs)+1)
			out = append(out, rs[:i]...)
			out = append(out, carryRune(old))
			out = append(out, rs[i:]...)
			return string(out)
		}
		i = j
	}
}

func prevAlnum(rs []rune, from int) int {
	for i := from; i >= 0; i-- {
		if isAlnum(rs[i]) {
			return i
		}
	}
	return -1
}

func isAlnum(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// bumpRune increments one letter or digit and reports whether it wrapped.
func bumpRune(r rune) (rune, bool) {
	switch r {
	case '9':
		return '0', true
	case 'z':
		return 'a', true
	case 'Z':
		return 'A', true
	}
	return r + 1, false
}

// carryRune is the rune prepended when the leftmost position wraps.
func carryRune(wrapped rune) rune {
	switch wrapped {
	case '9':
		return '1'
	case 'z':
		return 'a'
	}
	return 'A'
}
