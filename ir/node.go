package ir

import (
	"maps"
	"slices"
)

// Node is a single value in a generic data tree (the JSON data model).
//
// For ObjectType nodes, Fields[i] is the string-typed key for the value at
// Values[i]; field order is insertion order and is significant. For
// ArrayType nodes, Values holds the elements in order. Numbers carry
// either Int64 or Float64, never both.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object node from a map, with keys in sorted order.
// Use FromKeyVals when insertion order matters.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(m))
	res.Fields = make([]*Node, len(keys))
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		v := m[key]
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = key
		res.Fields[i] = &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Values[i] = v
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node preserving the given key order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
			Type:        StringType,
			String:      kv.Key,
		}
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		res.Values[i] = v
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

// Get returns the value under field, or nil if the node is not an object
// or has no such field.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
