// Package resolve navigates ir node trees by Spath.
//
// Resolution starts at the document root and applies each segment in turn:
// a field segment selects an object member or, on an array, the element at
// a base-10 index; a filter segment selects the first array element whose
// fields match every condition.
//
// Resolve returns a Ref whose Mode tells whether it may be written
// through.  Read-only refs may be shared freely; a Mutable ref is an
// exclusive handle on a node of a document the caller owns.
package resolve
