package globs

import "strings"

// ExpandBraces expands every top-level {a,b,...} group of a single path segment
// into the cartesian set of strings it can produce.
// Returns (nil, false) when the segment has no balanced brace group.
//
// Only one level is expanded: braces nested inside an alternative are kept as
// literal text. Empty alternatives expand to the empty string.
//
//	ExpandBraces("{src,lib}")     // ["src", "lib"]
//	ExpandBraces("v{1,2}-{a,b}")  // ["v1-a", "v1-b", "v2-a", "v2-b"]
//	ExpandBraces("plain")         // nil, false
func ExpandBraces(segment string) ([]string, bool) {
	var (
		parts   [][]string
		literal strings.Builder
		found   bool
	)

	for i := 0; i < len(segment); i++ {
		c := segment[i]

		if c == '\\' && i+1 < len(segment) {
			literal.WriteByte(c)
			literal.WriteByte(segment[i+1])
			i++

			continue
		}

		if c != '{' {
			literal.WriteByte(c)
			continue
		}

		end := closingBrace(segment, i)
		if end < 0 {
			// Unbalanced: the rest of the segment is literal text.
			literal.WriteString(segment[i:])
			break
		}

		parts = append(parts, []string{literal.String()}, splitAlternatives(segment[i+1:end]))
		literal.Reset()

		found = true
		i = end
	}

	if !found {
		return nil, false
	}

	parts = append(parts, []string{literal.String()})

	expanded := []string{""}
	for _, alternatives := range parts {
		next := make([]string, 0, len(expanded)*len(alternatives))
		for _, head := range expanded {
			for _, alt := range alternatives {
				next = append(next, head+alt)
			}
		}
		expanded = next
	}

	return expanded, true
}

// closingBrace returns the index of the brace closing the one opened at open,
// or -1 when it is never closed.
func closingBrace(s string, open int) int {
	depth := 0

	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// splitAlternatives splits the inside of a brace group on commas that are not
// nested in an inner group.
func splitAlternatives(inner string) []string {
	var (
		alternatives []string
		depth        int
		start        int
	)

	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				alternatives = append(alternatives, inner[start:i])
				start = i + 1
			}
		}
	}

	return append(alternatives, inner[start:])
}
