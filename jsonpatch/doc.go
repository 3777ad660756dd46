// Package jsonpatch applies patches in the JSON Patch format of RFC 6902,
// extended so that paths are Spaths and may select array elements with
// filter segments such as "/items/[id=a]".
//
// Each operation has a standalone primitive (Add, Remove, Replace, Move,
// Copy, Test) that mutates and returns the working document.  Apply runs a
// whole Patch against a private copy of the document and either returns
// the result or an aggregate of every operation's failure, leaving the
// input untouched.
//
// Patches free of filter segments can be rendered as strict RFC 6902 with
// Patch.RFC6902 and applied with ApplyRFC6902.
package jsonpatch
