package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/toon-format/go-toon/format"
	"github.com/toon-format/go-toon/ir"
)

func TestParseJSONOrder(t *testing.T) {
	node, err := Parse([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("expected object, got %s", node.Type)
	}
	want := []string{"z", "a", "m"}
	for i, k := range want {
		if node.Fields[i].String != k {
			t.Errorf("field %d: got %q, want %q", i, node.Fields[i].String, k)
		}
	}
}

func TestParseJSONValues(t *testing.T) {
	node, err := Parse([]byte(`{"s":"x","i":3,"f":2.5,"b":true,"n":null,"a":[1,"y"],"o":{"k":1}}`))
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(node, "s"); v == nil || v.Type != ir.StringType || v.String != "x" {
		t.Errorf("bad string value: %+v", v)
	}
	if v := ir.Get(node, "i"); v == nil || v.Type != ir.NumberType || v.Int64 == nil || *v.Int64 != 3 {
		t.Errorf("bad int value: %+v", v)
	}
	if v := ir.Get(node, "f"); v == nil || v.Type != ir.NumberType || v.Float64 == nil || *v.Float64 != 2.5 {
		t.Errorf("bad float value: %+v", v)
	}
	if v := ir.Get(node, "b"); v == nil || v.Type != ir.BoolType || !v.Bool {
		t.Errorf("bad bool value: %+v", v)
	}
	if v := ir.Get(node, "n"); v == nil || v.Type != ir.NullType {
		t.Errorf("bad null value: %+v", v)
	}
	if v := ir.Get(node, "a"); v == nil || v.Type != ir.ArrayType || len(v.Values) != 2 {
		t.Errorf("bad array value: %+v", v)
	}
	if v := ir.Get(node, "o"); v == nil || v.Type != ir.ObjectType || len(v.Fields) != 1 {
		t.Errorf("bad object value: %+v", v)
	}
}

func TestParseJSONRoundTrip(t *testing.T) {
	for _, in := range []string{
		`null`,
		`true`,
		`42`,
		`"hello"`,
		`[1,2,3]`,
		`{"a":1,"b":[true,null],"c":{"d":"x"}}`,
	} {
		node, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		out, err := ir.ToJSON(node)
		if err != nil {
			t.Fatalf("marshal %q: %v", in, err)
		}
		if d := cmp.Diff(in, string(out)); d != "" {
			t.Errorf("round trip mismatch for %q (-want +got):\n%s", in, d)
		}
	}
}

func TestParseJSONErrors(t *testing.T) {
	for _, in := range []string{
		``,
		`{`,
		`{"a":}`,
		`[1,2`,
		`{"a":1} extra`,
		`{"a":1}{"b":2}`,
	} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("expected error parsing %q", in)
		}
	}
}

func TestParseYAML(t *testing.T) {
	in := `
z: 1
a: two
m:
  - true
  - 2.5
  - null
o:
  k: v
`
	node, err := Parse([]byte(in), ParseFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("expected object, got %s", node.Type)
	}
	wantKeys := []string{"z", "a", "m", "o"}
	for i, k := range wantKeys {
		if node.Fields[i].String != k {
			t.Errorf("field %d: got %q, want %q", i, node.Fields[i].String, k)
		}
	}
	if v := ir.Get(node, "z"); v == nil || v.Type != ir.NumberType || v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("bad int value: %+v", v)
	}
	m := ir.Get(node, "m")
	if m == nil || m.Type != ir.ArrayType || len(m.Values) != 3 {
		t.Fatalf("bad array value: %+v", m)
	}
	if m.Values[0].Type != ir.BoolType || !m.Values[0].Bool {
		t.Errorf("bad bool element: %+v", m.Values[0])
	}
	if m.Values[1].Type != ir.NumberType || m.Values[1].Float64 == nil || *m.Values[1].Float64 != 2.5 {
		t.Errorf("bad float element: %+v", m.Values[1])
	}
	if m.Values[2].Type != ir.NullType {
		t.Errorf("bad null element: %+v", m.Values[2])
	}
}

func TestParseYAMLError(t *testing.T) {
	if _, err := Parse([]byte("a: [1,\n"), ParseFormat(format.YAMLFormat)); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
