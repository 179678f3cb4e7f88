package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		var back Format
		if err := back.UnmarshalText([]byte(f.String())); err != nil {
			t.Errorf("round trip %v: %v", f, err)
		} else if back != f {
			t.Errorf("round trip %v: got %v", f, back)
		}
	}
	if JSONFormat.Suffix() != ".json" || YAMLFormat.Suffix() != ".yaml" {
		t.Error("bad suffixes")
	}
}
