// Package encode encodes IR nodes to JSON or YAML text.
//
// # Usage
//
//	// Compact JSON, the form used on the wire
//	d, err := encode.MarshalJSON(node)
//
//	// Indented JSON to a writer
//	err := encode.Encode(node, w)
//
//	// YAML with colors
//	err := encode.Encode(node, w,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// Object members are written in their stored order and numbers with their
// literal text.
//
// # Related Packages
//
//   - github.com/signadot/spatch/ir - IR representation
//   - github.com/signadot/spatch/parse - Parse text to IR
package encode
