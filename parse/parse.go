package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/spatch/debug"
	"github.com/signadot/spatch/format"
	"github.com/signadot/spatch/ir"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

var ErrParse = errors.New("parse error")

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	if pOpts.format == format.YAMLFormat {
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrParse, err)
		}
		if debug.Parse() {
			debug.Logf("yaml converted to json: %s\n", j)
		}
		d = j
	}
	if !gjson.ValidBytes(d) {
		return nil, fmt.Errorf("%w: invalid json", ErrParse)
	}
	return FromResult(gjson.ParseBytes(d))
}

// FromResult converts a gjson result into a node.
func FromResult(r gjson.Result) (*ir.Node, error) {
	switch r.Type {
	case gjson.Null:
		return ir.Null(), nil
	case gjson.False:
		return ir.FromBool(false), nil
	case gjson.True:
		return ir.FromBool(true), nil
	case gjson.Number:
		n, err := ir.FromNumberText(r.Raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return n, nil
	case gjson.String:
		return ir.FromString(r.Str), nil
	}
	if r.IsArray() {
		return fromArray(r)
	}
	if r.IsObject() {
		return fromObject(r)
	}
	return nil, fmt.Errorf("%w: unexpected value %q", ErrParse, r.Raw)
}

func fromArray(r gjson.Result) (*ir.Node, error) {
	var (
		vals []*ir.Node
		err  error
	)
	r.ForEach(func(_, v gjson.Result) bool {
		var n *ir.Node
		n, err = FromResult(v)
		if err != nil {
			return false
		}
		vals = append(vals, n)
		return true
	})
	if err != nil {
		return nil, err
	}
	return ir.FromSlice(vals), nil
}

func fromObject(r gjson.Result) (*ir.Node, error) {
	var (
		kvs []ir.KeyVal
		err error
	)
	r.ForEach(func(k, v gjson.Result) bool {
		var n *ir.Node
		n, err = FromResult(v)
		if err != nil {
			return false
		}
		kvs = append(kvs, ir.KeyVal{Key: k.Str, Val: n})
		return true
	})
	if err != nil {
		return nil, err
	}
	return ir.FromKeyVals(kvs), nil
}
