// Package parse decodes JSON and YAML documents into ir nodes.
//
// Object members keep their document order and numbers keep their literal
// text.  A key repeated within one object keeps its first position and its
// last value.
//
// # Usage
//
//	node, err := parse.Parse(data)                    // JSON
//	node, err := parse.Parse(data, parse.ParseYAML()) // YAML
//
// # Related Packages
//
//   - github.com/signadot/spatch/ir - IR representation
//   - github.com/signadot/spatch/encode - Encode IR to text
package parse
