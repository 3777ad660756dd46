// Package format names the document formats spatch reads and writes.
//
// # Related Packages
//
//   - github.com/signadot/spatch/parse - Parse text to IR
//   - github.com/signadot/spatch/encode - Encode IR to text
package format
