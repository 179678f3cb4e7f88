package encode

import (
	"errors"
	"fmt"
)

// Delimiter separates inline list values and tabular row values.
type Delimiter int

const (
	Comma Delimiter = iota
	Tab
	Pipe
)

var (
	ErrBadDelimiter  = errors.New("bad delimiter")
	ErrBadKeyFolding = errors.New("bad key folding mode")
)

func ParseDelimiter(v string) (Delimiter, error) {
	d, ok := map[string]Delimiter{
		"c":     Comma,
		"comma": Comma,
		",":     Comma,
		"t":     Tab,
		"tab":   Tab,
		"p":     Pipe,
		"pipe":  Pipe,
		"|":     Pipe,
	}[v]
	if ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDelimiter, v)
}

func (d Delimiter) String() string {
	b, err := d.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(b)
}

func (d Delimiter) MarshalText() ([]byte, error) {
	switch d {
	case Comma:
		return []byte("comma"), nil
	case Tab:
		return []byte("tab"), nil
	case Pipe:
		return []byte("pipe"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a delimiter>", d)
	}
}

func (d *Delimiter) UnmarshalText(b []byte) error {
	pd, err := ParseDelimiter(string(b))
	if err != nil {
		return err
	}
	*d = pd
	return nil
}

// Rune is the character placed between values.
func (d Delimiter) Rune() rune {
	switch d {
	case Tab:
		return '\t'
	case Pipe:
		return '|'
	default:
		return ','
	}
}

// headerSymbol is the delimiter marker inside array headers, e.g. the
// pipe in "[3|]:". Comma, the default, is unmarked.
func (d Delimiter) headerSymbol() string {
	switch d {
	case Tab:
		return "\t"
	case Pipe:
		return "|"
	default:
		return ""
	}
}

// KeyFolding controls collapsing single-key object chains into dotted
// key paths.
type KeyFolding int

const (
	FoldOff KeyFolding = iota
	FoldSafe
)

func ParseKeyFolding(v string) (KeyFolding, error) {
	m, ok := map[string]KeyFolding{
		"off":  FoldOff,
		"safe": FoldSafe,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadKeyFolding, v)
}

func (m KeyFolding) String() string {
	b, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(b)
}

func (m KeyFolding) MarshalText() ([]byte, error) {
	switch m {
	case FoldOff:
		return []byte("off"), nil
	case FoldSafe:
		return []byte("safe"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a key folding mode>", m)
	}
}

func (m *KeyFolding) UnmarshalText(b []byte) error {
	pm, err := ParseKeyFolding(string(b))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}

type EncodeOption func(*EncState)

func EncodeDelimiter(d Delimiter) EncodeOption {
	return func(es *EncState) { es.delim = d }
}

// EncodeIndent sets the number of spaces per nesting level. Negative
// values are treated as 0.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeKeyFolding(m KeyFolding) EncodeOption {
	return func(es *EncState) { es.folding = m }
}

// EncodeFlattenDepth caps the number of single-key hops key folding may
// collapse. The default is unbounded.
func EncodeFlattenDepth(n int) EncodeOption {
	return func(es *EncState) { es.flattenDepth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
