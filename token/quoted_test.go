package token

import "testing"

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		in    string
		delim rune
		want  bool
	}{
		{"", ',', true},
		{"hello", ',', false},
		{"hello world", ',', false},
		{"true", ',', true},
		{"false", ',', true},
		{"null", ',', true},
		{"True", ',', false},
		{"-x", ',', true},
		{"-1", ',', true},
		{"30", ',', true},
		{"3.14", ',', true},
		{"1e3", ',', true},
		{"1E+3", ',', true},
		{"007", ',', true},
		{"0", ',', true},
		{"0x", ',', false},
		{" x", ',', true},
		{"x ", ',', true},
		{"a:b", ',', true},
		{`a"b`, ',', true},
		{`a\b`, ',', true},
		{"a[b", ',', true},
		{"a]b", ',', true},
		{"a{b", ',', true},
		{"a}b", ',', true},
		{"a\nb", ',', true},
		{"a\rb", ',', true},
		{"a\tb", ',', true},
		{"a,b", ',', true},
		{"a,b", '|', false},
		{"a|b", '|', true},
		{"a|b", ',', false},
		{"日本語", ',', false},
	}
	for _, tc := range tests {
		if got := NeedsQuote(tc.in, tc.delim); got != tc.want {
			t.Errorf("NeedsQuote(%q, %q) = %v, want %v", tc.in, tc.delim, got, tc.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"a", `"a"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb", `"a\nb"`},
		{"a\rb", `"a\rb"`},
		{"a\tb", `"a\tb"`},
		{"日本", `"日本"`},
		{"\x00", "\"\x00\""}, // only the five escape chars are rewritten
	}
	for _, tc := range tests {
		if got := Quote(tc.in); got != tc.want {
			t.Errorf("Quote(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLooksLikeNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"1", true},
		{"-1", true},
		{"1.5", true},
		{"-1.5", true},
		{"1.", false},
		{".5", false},
		{"1e3", true},
		{"1E3", true},
		{"1e+3", true},
		{"1e-3", true},
		{"1.5e-3", true},
		{"1e", false},
		{"1e+", false},
		{"-", false},
		{"--1", false},
		{"1.2.3", false},
		{"1x", false},
		{"007", true},
	}
	for _, tc := range tests {
		if got := LooksLikeNumber(tc.in); got != tc.want {
			t.Errorf("LooksLikeNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"a", true},
		{"_", true},
		{"abc_123", true},
		{"Abc", true},
		{"1a", false},
		{"a-b", false},
		{"a.b", false},
		{"a b", false},
		{"héllo", false},
	}
	for _, tc := range tests {
		if got := IsIdentifier(tc.in); got != tc.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
