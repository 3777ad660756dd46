package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/spatch/format"
	"github.com/signadot/spatch/ir"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/pretty"
)

// MarshalJSON returns the compact JSON text of node.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustString returns the compact JSON text of node, or a placeholder
// describing the error.
func MustString(node *ir.Node) string {
	d, err := MarshalJSON(node)
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	return string(d)
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	d, err := MarshalJSON(node)
	if err != nil {
		return err
	}
	switch es.format {
	case format.YAMLFormat:
		d, err = yaml.JSONToYAML(d)
		if err != nil {
			return fmt.Errorf("error converting to yaml: %w", err)
		}
		if es.Color != nil {
			d = es.Color.yaml(d)
		}
	default:
		if !es.wire {
			d = pretty.Pretty(d)
		} else {
			d = append(d, '\n')
		}
		if es.Color != nil && es.Color.Style != nil {
			d = pretty.Color(d, es.Color.Style)
		}
	}
	_, err = w.Write(d)
	return err
}

func writeJSON(buf *bytes.Buffer, node *ir.Node) error {
	if node == nil {
		return fmt.Errorf("cannot encode nil node")
	}
	switch node.Type {
	case ir.NullType:
		buf.WriteString("null")
	case ir.BoolType:
		buf.WriteString(strconv.FormatBool(node.Bool))
	case ir.NumberType:
		s, err := numberText(node)
		if err != nil {
			return err
		}
		buf.WriteString(s)
	case ir.StringType:
		writeString(buf, node.String)
	case ir.ArrayType:
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ir.ObjectType:
		if len(node.Fields) != len(node.Values) {
			return fmt.Errorf("object has %d fields and %d values", len(node.Fields), len(node.Values))
		}
		buf.WriteByte('{')
		for i, f := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, f.String)
			buf.WriteByte(':')
			if err := writeJSON(buf, node.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode node of type %s", node.Type)
	}
	return nil
}

func numberText(node *ir.Node) (string, error) {
	switch {
	case node.Number != "":
		return node.Number, nil
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		return ir.FromFloat(*node.Float64).Number, nil
	}
	return "", fmt.Errorf("number node without value")
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encode of a string cannot fail.
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1)
}
