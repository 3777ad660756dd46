package jsonpatch

import (
	"fmt"

	"github.com/signadot/spatch/encode"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/parse"

	"github.com/agentflare-ai/jsonpointer"
	evjsonpatch "github.com/evanphx/json-patch"
)

// IsRFC6902 reports whether no path of p uses a filter segment.
func (p Patch) IsRFC6902() bool {
	for i := range p {
		if p[i].Path.HasFilter() || p[i].From.HasFilter() {
			return false
		}
	}
	return true
}

// RFC6902 renders p with plain JSON Pointer paths.  It fails with
// ErrNotRFC6902 if a path has a filter segment.
func (p Patch) RFC6902() ([]byte, error) {
	return p.marshal(pointerText)
}

// ApplyRFC6902 applies a filter-free patch with a strict RFC 6902
// implementation.
func ApplyRFC6902(doc *ir.Node, p Patch) (*ir.Node, error) {
	pd, err := p.RFC6902()
	if err != nil {
		return nil, err
	}
	ep, err := evjsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	d, err := encode.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ep.Apply(d)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

func pointerText(p spath.Spath) (string, error) {
	segs := p.Segments()
	toks := make([]string, len(segs))
	for i, seg := range segs {
		if seg.IsFilter() {
			return "", fmt.Errorf("%w: filter segment in %s", ErrNotRFC6902, p)
		}
		toks[i] = seg.Field
	}
	s := jsonpointer.Pointer(toks).String()
	ptr, err := jsonpointer.New(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNotRFC6902, s, err)
	}
	if len(ptr) != len(toks) {
		return "", fmt.Errorf("%w: %s does not round trip", ErrNotRFC6902, s)
	}
	return s, nil
}
