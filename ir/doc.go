// Package ir provides the generic value tree the TOON encoder consumes.
//
// # Overview
//
// The IR is the JSON data model as a tree of nodes: null, boolean, number,
// string, ordered key-value object, ordered array. Trees come either from
// the parse package (JSON or YAML text) or from the constructor functions
// here.
//
// The IR works as a recursive tagged union, where values are placed in
// fields depending on the node type.
//
// # Structure constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always the same number of fields as values. Fields are
// always string typed. Field order is insertion order and is preserved by
// the encoder.
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//
// # Creating nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("Alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Thread safety
//
// Node trees are not synchronized. Encoding only reads the tree, so a
// single tree may be encoded concurrently; mutation requires external
// synchronization.
//
// # Related packages
//
//   - github.com/toon-format/go-toon/parse - Parses JSON/YAML text into IR nodes
//   - github.com/toon-format/go-toon/encode - Encodes IR nodes to TOON text
package ir
