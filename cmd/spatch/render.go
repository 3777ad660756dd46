package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/spatch/encode"
	"github.com/signadot/spatch/jsonpatch"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// writePatchLines writes p as a JSON array with one operation per line.
func writePatchLines(w io.Writer, p jsonpatch.Patch, colors *encode.Colors) error {
	if len(p) == 0 {
		_, err := io.WriteString(w, "[]\n")
		return err
	}
	buf := &strings.Builder{}
	buf.WriteString("[\n")
	for i, op := range p {
		d, err := op.MarshalJSON()
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		buf.WriteString("  ")
		buf.WriteString(colors.Op(string(op.Op), string(d)))
		if i < len(p)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	_, err := io.WriteString(w, buf.String())
	return err
}

// textDiff returns a line diff of a and b, with inserted lines prefixed
// by "+" and deleted lines by "-".
func textDiff(a, b string, colors *encode.Colors) string {
	dmp := diffmatchpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffMainRunes(ra, rb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix, op := " ", ""
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, op = "+", string(jsonpatch.OpAdd)
		case diffmatchpatch.DiffDelete:
			prefix, op = "-", string(jsonpatch.OpRemove)
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			buf.WriteString(colors.Op(op, prefix+line))
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

func errorText(colors *encode.Colors, err error) string {
	if colors == nil || colors.Error == nil {
		return err.Error()
	}
	return colors.Error("%s", err.Error())
}

func warnText(colors *encode.Colors, err error) string {
	if colors == nil || colors.Warn == nil {
		return err.Error()
	}
	return colors.Warn("%s", err.Error())
}
