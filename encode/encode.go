package encode

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/token"
)

// EncState carries the configuration for one Encode call. It is fixed
// for the whole encoding; the recursion threads it alongside the output
// buffer without mutating it.
type EncState struct {
	delim        Delimiter
	indent       int
	folding      KeyFolding
	flattenDepth int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as TOON text to w. The output is newline-separated
// with no trailing newline. Encoding is a pure function of the node tree
// and the options: re-encoding the same tree with the same options is
// byte-for-byte deterministic.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:       2,
		flattenDepth: math.MaxInt,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 0 {
		es.indent = 0
	}
	if node == nil {
		node = ir.Null()
	}
	buf := bytes.NewBuffer(nil)
	encode(node, buf, es)
	_, err := w.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	return err
}

func encode(node *ir.Node, buf *bytes.Buffer, es *EncState) {
	switch node.Type {
	case ir.ObjectType:
		encodeObject(node, buf, 0, es)
	case ir.ArrayType:
		encodeArrayField("", node, buf, 0, "", es)
	default:
		// a bare scalar is only legal at the root
		buf.WriteString(formatScalar(node, es))
	}
}

// encodeObject emits one field per key in insertion order, newline
// separated, each at indent*depth spaces.
func encodeObject(node *ir.Node, buf *bytes.Buffer, depth int, es *EncState) {
	indent := strings.Repeat(" ", depth*es.indent)
	first := true

	for i, field := range node.Fields {
		val := node.Values[i]
		if !first {
			buf.WriteByte('\n')
		}

		if es.folding == FoldSafe && token.IsIdentifier(field.String) {
			chain := []string{field.String}
			cur := val
			for len(chain)-1 < es.flattenDepth {
				if cur.Type != ir.ObjectType || len(cur.Fields) != 1 {
					break
				}
				k := cur.Fields[0].String
				// the dotted form has no escaping, so never fold
				// through a key that would need quoting
				if !token.IsIdentifier(k) || token.NeedsQuote(k, es.delim.Rune()) {
					break
				}
				chain = append(chain, k)
				cur = cur.Values[0]
			}

			if len(chain) > 1 {
				encodeField(strings.Join(chain, "."), cur, buf, depth, indent, es)
				first = false
				continue
			}
		}

		encodeField(field.String, val, buf, depth, indent, es)
		first = false
	}
}

func encodeField(key string, val *ir.Node, buf *bytes.Buffer, depth int, indent string, es *EncState) {
	fkey := formatKey(key, es)

	switch {
	case val.Type == ir.ObjectType && len(val.Fields) != 0:
		buf.WriteString(indent)
		buf.WriteString(fkey)
		buf.WriteString(colonSep(es))
		buf.WriteByte('\n')
		encodeObject(val, buf, depth+1, es)
	case val.Type == ir.ObjectType:
		buf.WriteString(indent)
		buf.WriteString(fkey)
		buf.WriteString(colonSep(es))
	case val.Type == ir.ArrayType:
		encodeArrayField(fkey, val, buf, depth, indent, es)
	default:
		buf.WriteString(indent)
		buf.WriteString(fkey)
		buf.WriteString(colonSep(es))
		buf.WriteByte(' ')
		buf.WriteString(formatScalar(val, es))
	}
}

// encodeArrayField chooses among the four array forms, in priority
// order: empty, inline primitive list, tabular, expanded list.
func encodeArrayField(key string, arr *ir.Node, buf *bytes.Buffer, depth int, indent string, es *EncState) {
	n := len(arr.Values)

	if n == 0 {
		buf.WriteString(indent)
		buf.WriteString(key)
		writeArrayHeader(buf, 0, nil, es)
		return
	}

	if allPrimitive(arr.Values) {
		buf.WriteString(indent)
		buf.WriteString(key)
		writeArrayHeader(buf, n, nil, es)
		buf.WriteByte(' ')
		buf.WriteString(joinScalars(arr.Values, es))
		return
	}

	if fields := detectTabular(arr.Values); fields != nil {
		buf.WriteString(indent)
		buf.WriteString(key)
		writeArrayHeader(buf, n, fields, es)

		childIndent := strings.Repeat(" ", (depth+1)*es.indent)
		sep := delimSep(es)
		for _, item := range arr.Values {
			buf.WriteByte('\n')
			buf.WriteString(childIndent)
			for j, f := range fields {
				if j > 0 {
					buf.WriteString(sep)
				}
				v := ir.Get(item, f)
				if v == nil {
					v = ir.Null()
				}
				buf.WriteString(formatScalar(v, es))
			}
		}
		return
	}

	buf.WriteString(indent)
	buf.WriteString(key)
	writeArrayHeader(buf, n, nil, es)

	childIndent := strings.Repeat(" ", (depth+1)*es.indent)
	for _, item := range arr.Values {
		buf.WriteByte('\n')
		switch {
		case item.Type == ir.ObjectType && len(item.Fields) != 0:
			// the object's first field shares the line with the
			// "- " marker; its own indentation is trimmed there
			sub := bytes.NewBuffer(nil)
			encodeObject(item, sub, depth+2, es)
			s := sub.String()
			buf.WriteString(childIndent)
			buf.WriteString(listMarker(es))
			if nl := strings.IndexByte(s, '\n'); nl >= 0 {
				buf.WriteString(strings.TrimLeft(s[:nl], " "))
				buf.WriteString(s[nl:])
			} else {
				buf.WriteString(strings.TrimLeft(s, " "))
			}
		case item.Type == ir.ObjectType:
			buf.WriteString(childIndent)
			buf.WriteString(bareMarker(es))
		case item.Type == ir.ArrayType:
			buf.WriteString(childIndent)
			buf.WriteString(listMarker(es))
			inner := item.Values
			writeArrayHeader(buf, len(inner), nil, es)
			if allPrimitive(inner) {
				buf.WriteByte(' ')
				buf.WriteString(joinScalars(inner, es))
				break
			}
			nestedIndent := strings.Repeat(" ", (depth+2)*es.indent)
			for _, iv := range inner {
				buf.WriteByte('\n')
				buf.WriteString(nestedIndent)
				buf.WriteString(listMarker(es))
				// inner composites are stringified, not recursed
				buf.WriteString(formatScalar(iv, es))
			}
		default:
			buf.WriteString(childIndent)
			buf.WriteString(listMarker(es))
			buf.WriteString(formatScalar(item, es))
		}
	}
}

// writeArrayHeader writes "[n<sym>]" plus, for the tabular form, the
// "{k1<delim>k2...}" field list, then the header colon.
func writeArrayHeader(buf *bytes.Buffer, n int, fields []string, es *EncState) {
	h := "[" + strconv.Itoa(n) + es.delim.headerSymbol() + "]"
	buf.WriteString(applyColor(es, ir.ArrayType, SepColor, h))
	if fields != nil {
		buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "{"))
		sep := delimSep(es)
		for i, f := range fields {
			if i > 0 {
				buf.WriteString(sep)
			}
			buf.WriteString(applyColor(es, ir.ObjectType, FieldColor, formatKeyPlain(f, es)))
		}
		buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "}"))
	}
	buf.WriteString(applyColor(es, ir.ObjectType, SepColor, ":"))
}

// detectTabular returns the first element's keys in order when every
// element is an object with the same key count whose values under those
// keys are all present and primitive; otherwise nil.
func detectTabular(vs []*ir.Node) []string {
	first := vs[0]
	if first.Type != ir.ObjectType || len(first.Fields) == 0 {
		return nil
	}
	keys := make([]string, len(first.Fields))
	for i, f := range first.Fields {
		if !first.Values[i].Type.IsPrimitive() {
			return nil
		}
		keys[i] = f.String
	}
	for _, item := range vs[1:] {
		if item.Type != ir.ObjectType || len(item.Fields) != len(keys) {
			return nil
		}
		for _, k := range keys {
			v := ir.Get(item, k)
			if v == nil || !v.Type.IsPrimitive() {
				return nil
			}
		}
	}
	return keys
}

func allPrimitive(vs []*ir.Node) bool {
	for _, v := range vs {
		if !v.Type.IsPrimitive() {
			return false
		}
	}
	return true
}

func joinScalars(vs []*ir.Node, es *EncState) string {
	sep := delimSep(es)
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(formatScalar(v, es))
	}
	return b.String()
}

// Scalar formatting

func formatScalar(node *ir.Node, es *EncState) string {
	switch node.Type {
	case ir.NullType:
		return applyValueColor(es, ir.NullType, "null")
	case ir.BoolType:
		return applyValueColor(es, ir.BoolType, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		return applyValueColor(es, ir.NumberType, formatNumber(node))
	case ir.StringType:
		v := node.String
		if token.NeedsQuote(v, es.delim.Rune()) {
			v = token.Quote(v)
		}
		return applyStringColor(es, v)
	default:
		// composites reach here only through the nested-array
		// fallback in encodeArrayField; they render as one-line JSON
		return applyValueColor(es, node.Type, jsonString(node))
	}
}

// formatNumber renders a number with no exponent marker ever appearing
// in the output. Zero (including negative zero) is "0"; NaN and the
// infinities have no representation and degrade to "null".
func formatNumber(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 == nil {
		return "0"
	}
	f := *node.Float64
	if f == 0 {
		return "0"
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		return strconv.FormatInt(int64(f), 10)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, "eE") {
		s = strconv.FormatFloat(f, 'f', 20, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

func jsonString(node *ir.Node) string {
	d, err := ir.ToJSON(node)
	if err != nil {
		return ""
	}
	return string(d)
}

// Key and separator writing

func formatKeyPlain(key string, es *EncState) string {
	if token.NeedsQuote(key, es.delim.Rune()) {
		return token.Quote(key)
	}
	return key
}

func formatKey(key string, es *EncState) string {
	return applyColor(es, ir.ObjectType, FieldColor, formatKeyPlain(key, es))
}

func colonSep(es *EncState) string {
	return applyColor(es, ir.ObjectType, SepColor, ":")
}

func delimSep(es *EncState) string {
	return applyColor(es, ir.ArrayType, SepColor, string(es.delim.Rune()))
}

func listMarker(es *EncState) string {
	return applyColor(es, ir.ArrayType, SepColor, "-") + " "
}

func bareMarker(es *EncState) string {
	return applyColor(es, ir.ArrayType, SepColor, "-")
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

func applyStringColor(es *EncState, v string) string {
	attr := LiteralSingleColor
	if strings.HasPrefix(v, "\"") && strings.HasSuffix(v, "\"") {
		attr = ValueColor
	}
	return applyColor(es, ir.StringType, attr, v)
}
