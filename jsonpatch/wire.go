package jsonpatch

import (
	"bytes"
	"fmt"

	"github.com/signadot/spatch/encode"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/parse"

	"github.com/tidwall/gjson"
)

// MarshalJSON writes o as a compact JSON object with members in the
// order op, path, from, value.
func (o Operation) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := o.write(buf, spathText); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p Patch) MarshalJSON() ([]byte, error) {
	return p.marshal(spathText)
}

func (p *Patch) UnmarshalJSON(d []byte) error {
	q, err := Decode(d)
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// ToNode returns the wire form of p as a tree, for encoding in any
// supported format.
func (p Patch) ToNode() (*ir.Node, error) {
	d, err := p.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}

// Decode parses the JSON wire form of a patch.  Unknown members of an
// operation are ignored.
func Decode(d []byte) (Patch, error) {
	if !gjson.ValidBytes(d) {
		return nil, fmt.Errorf("%w: patch is not valid JSON", parse.ErrParse)
	}
	r := gjson.ParseBytes(d)
	if !r.IsArray() {
		return nil, fmt.Errorf("%w: patch must be an array, got %s", ErrInvalidOperation, r.Type)
	}
	res := Patch{}
	var err error
	r.ForEach(func(_, v gjson.Result) bool {
		op, opErr := decodeOp(v)
		if opErr != nil {
			err = fmt.Errorf("operation %d: %w", len(res), opErr)
			return false
		}
		res = append(res, op)
		return true
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func decodeOp(r gjson.Result) (Operation, error) {
	if !r.IsObject() {
		return Operation{}, fmt.Errorf("%w: expected an object", ErrInvalidOperation)
	}
	opRes := r.Get("op")
	if opRes.Type != gjson.String {
		return Operation{}, fmt.Errorf("%w: \"op\" must be a string", ErrInvalidOperation)
	}
	res := Operation{Op: Op(opRes.Str)}
	if !res.Op.IsValid() {
		return Operation{}, fmt.Errorf("%w: unknown op %q", ErrInvalidOperation, opRes.Str)
	}
	var err error
	if res.Path, err = pathMember(r, "path"); err != nil {
		return Operation{}, err
	}
	if res.Op.HasFrom() {
		if res.From, err = pathMember(r, "from"); err != nil {
			return Operation{}, err
		}
	}
	if res.Op.HasValue() {
		v := r.Get("value")
		if !v.Exists() {
			return Operation{}, fmt.Errorf("%w: %s requires \"value\"", ErrInvalidOperation, res.Op)
		}
		if res.Value, err = parse.FromResult(v); err != nil {
			return Operation{}, err
		}
	}
	return res, nil
}

func pathMember(r gjson.Result, name string) (spath.Spath, error) {
	m := r.Get(name)
	if m.Type != gjson.String {
		return spath.Spath{}, fmt.Errorf("%w: %q must be a string", ErrInvalidOperation, name)
	}
	p, err := spath.Parse(m.Str)
	if err != nil {
		return spath.Spath{}, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

func spathText(p spath.Spath) (string, error) {
	return p.String(), nil
}

func (p Patch) marshal(pathText func(spath.Spath) (string, error)) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('[')
	for i := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := p[i].write(buf, pathText); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (o Operation) write(buf *bytes.Buffer, pathText func(spath.Spath) (string, error)) error {
	n := 0
	member := func(name string, v []byte) {
		if n > 0 {
			buf.WriteByte(',')
		}
		n++
		buf.WriteByte('"')
		buf.WriteString(name)
		buf.WriteString(`":`)
		buf.Write(v)
	}
	str := func(s string) []byte {
		d, _ := encode.MarshalJSON(ir.FromString(s))
		return d
	}
	if !o.Op.IsValid() {
		return fmt.Errorf("%w: unknown op %q", ErrInvalidOperation, o.Op)
	}
	path, err := pathText(o.Path)
	if err != nil {
		return err
	}
	buf.WriteByte('{')
	member("op", str(string(o.Op)))
	member("path", str(path))
	if o.Op.HasFrom() {
		from, err := pathText(o.From)
		if err != nil {
			return err
		}
		member("from", str(from))
	}
	if o.Op.HasValue() {
		v, err := marshalValue(o.Value)
		if err != nil {
			return err
		}
		member("value", v)
	}
	buf.WriteByte('}')
	return nil
}

func marshalValue(v *ir.Node) ([]byte, error) {
	if v == nil {
		v = ir.Null()
	}
	return encode.MarshalJSON(v)
}
