// Package spath provides Spath parsing and construction.
//
// A Spath is a JSON Pointer extended with filter segments that select an
// array element by the values of its fields:
//   - /field - Object member, or array index when the value is an array
//   - /0 - Array index
//   - /- - Array append position (add only)
//   - /[k=v] - First array element whose field k matches v
//   - /[k=v,k2=v2] - First element matching all conditions
//
// Field names escape '~' as "~0" and '/' as "~1".  Whitespace is
// significant in field names and trimmed inside filter segments.
//
// # Usage
//
//	// Parse a path
//	p, err := spath.Parse("/items/[id=abc]/count")
//
//	// Navigate
//	parent, _ := p.Parent()
//	child := p.PushField("email")
//	last, _ := p.Last()
//
//	// Render
//	s := p.String() // "/items/[id=abc]/count"
//
// Spath values are immutable: Push and Parent return new paths and never
// share mutable state with the receiver.
//
// # Related Packages
//
//   - github.com/signadot/spatch/resolve - resolves paths against ir nodes
package spath
