package textify

import "strings"

// asciiSpace is the whitespace set that the normalizers touch. Non-ASCII
// spaces such as U+00A0 are content and survive untouched.
const asciiSpace = " \t\n\r\f\v"

// NormalizeWhitespace collapses every run of ASCII whitespace in s into a
// single space. It runs on raw markup, so attribute values are collapsed too.
func NormalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(asciiSpace, c) >= 0 {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteByte(c)
		lastSpace = false
	}
	return b.String()
}

// normalizeLines trims the whole text, strips the spaces at both ends of
// every line and terminates the result with exactly one newline.
func normalizeLines(s string) string {
	lines := strings.Split(strings.Trim(s, asciiSpace), "\n")
	for i, line := range lines {
		lines[i] = strings.Trim(line, " ")
	}
	return strings.Join(lines, "\n") + "\n"
}

// seamJoin concatenates parts and drops the leading spaces of a part when the
// text built so far already ends in a space, so decorations never introduce
// double spaces at the seams.
func seamJoin(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		if strings.HasSuffix(b.String(), " ") {
			p = strings.TrimLeft(p, " ")
		}
		b.WriteString(p)
	}
	return b.String()
}

func trimASCIISpace(s string) string {
	return strings.Trim(s, asciiSpace)
}
