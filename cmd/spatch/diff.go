package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/spatch"
	"github.com/signadot/spatch/encode"
	"github.com/signadot/spatch/format"
	"github.com/signadot/spatch/ir"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: need 2 args for diff, got %d", cli.ErrUsage, len(args))
	}
	left, err := getObjFile(cc, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return err
	}
	right, err := getObjFile(cc, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return err
	}
	var schema *ir.Node
	if cfg.Schema != "" {
		schema, err = getObjFile(cc, cfg.Schema, cfg.parseOpts(cfg.Schema)...)
		if err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	colors := cfg.colors(cc.Out)

	if cfg.Text {
		return textDiffDocs(cfg, cc, left, right)
	}

	patch, summary := spatch.Diff(left, right, schema)
	for _, de := range summary.Left {
		fmt.Fprintln(os.Stderr, warnText(cfg.colors(os.Stderr), fmt.Errorf("left: %w", de)))
	}
	for _, de := range summary.Right {
		fmt.Fprintln(os.Stderr, warnText(cfg.colors(os.Stderr), fmt.Errorf("right: %w", de)))
	}
	if len(patch) == 0 {
		return nil
	}
	if cfg.outFormat() == format.JSONFormat && !cfg.WireOut {
		if err := writePatchLines(cc.Out, patch, colors); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	node, err := patch.ToNode()
	if err != nil {
		return err
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func textDiffDocs(cfg *DiffConfig, cc *cli.Context, left, right *ir.Node) error {
	if ir.Equal(left, right) {
		return nil
	}
	opts := []encode.EncodeOption{encode.EncodeFormat(cfg.outFormat())}
	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	if err := encode.Encode(left, a, opts...); err != nil {
		return err
	}
	if err := encode.Encode(right, b, opts...); err != nil {
		return err
	}
	if _, err := fmt.Fprint(cc.Out, textDiff(a.String(), b.String(), cfg.colors(cc.Out))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
