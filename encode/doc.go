// Package encode encodes IR nodes to TOON text.
//
// TOON is a compact, indentation-based notation for the JSON data model.
// Arrays of uniform objects render as a tabular header plus one
// delimiter-joined row per element; primitive arrays render inline;
// everything else expands into an indented list.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("Alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//	// name: Alice
//	// age: 30
//
//	// Encode with options
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeDelimiter(encode.Pipe),
//	    encode.EncodeIndent(4),
//	    encode.EncodeKeyFolding(encode.FoldSafe),
//	)
//
// # Related packages
//
//   - github.com/toon-format/go-toon/ir - IR representation
//   - github.com/toon-format/go-toon/parse - Parse JSON/YAML text to IR
package encode
