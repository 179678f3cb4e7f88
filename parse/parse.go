// Package parse reads JSON or YAML text into IR nodes.
package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/toon-format/go-toon/format"
	"github.com/toon-format/go-toon/ir"
)

var ErrParse = errors.New("parse error")

// Parse decodes one document into an IR tree, preserving object key
// order. The input format defaults to JSON; see ParseFormat.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return parseJSON(d)
	}
}

// JSON
//
// The stock map[string]any route would lose key order, so values are
// built from the decoder's token stream instead.

func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := parseJSONValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrParse)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content after document", ErrParse)
	}
	return node, nil
}

func parseJSONValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonValue(dec, tok)
}

func jsonValue(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var kvs []ir.KeyVal
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				val, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ir.FromKeyVals(kvs), nil
		case '[':
			var vs []*ir.Node
			for dec.More() {
				v, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				vs = append(vs, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ir.FromSlice(vs), nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(f), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// YAML

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	node, err := yamlValue(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return node, nil
}

func yamlValue(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t <= math.MaxInt64 {
			return ir.FromInt(int64(t)), nil
		}
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case []any:
		vs := make([]*ir.Node, len(t))
		for i, e := range t {
			n, err := yamlValue(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return ir.FromSlice(vs), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(t))
		for i, item := range t {
			n, err := yamlValue(item.Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: fmt.Sprint(item.Key), Val: n}
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
