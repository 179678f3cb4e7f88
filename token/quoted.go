package token

import "strings"

// NeedsQuote reports whether v, emitted bare as a TOON key or string
// scalar, would be misread: as a literal token (true/false/null), as a
// number, or as structure (the active delimiter, brackets, braces, colon,
// quotes, escapes, control whitespace, or leading/trailing spaces).
func NeedsQuote(v string, delim rune) bool {
	if v == "" {
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	if v[0] == '-' {
		return true
	}
	if LooksLikeNumber(v) {
		return true
	}
	// leading-zero ambiguity, e.g. "007"
	if len(v) > 1 && v[0] == '0' && isDigit(v[1]) {
		return true
	}
	if v[0] == ' ' || v[len(v)-1] == ' ' {
		return true
	}
	return strings.ContainsFunc(v, func(r rune) bool {
		switch r {
		case ':', '"', '\\', '[', ']', '{', '}', '\n', '\r', '\t':
			return true
		}
		return r == delim
	})
}

// Quote wraps v in double quotes, escaping backslash, double quote,
// newline, carriage return, and tab. All other runes pass through
// unchanged, including multi-byte text.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// IsIdentifier reports whether v is a bare identifier: an ASCII letter or
// underscore followed by ASCII letters, digits, or underscores. Only
// identifier keys participate in key folding.
func IsIdentifier(v string) bool {
	if v == "" {
		return false
	}
	c := v[0]
	if !isLetter(c) && c != '_' {
		return false
	}
	for i := 1; i < len(v); i++ {
		c = v[i]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
