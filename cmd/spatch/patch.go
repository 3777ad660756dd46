package main

import (
	"fmt"
	"os"

	"github.com/signadot/spatch"
	"github.com/signadot/spatch/encode"
	"github.com/signadot/spatch/jsonpatch"

	"github.com/scott-cotton/cli"
	"go.uber.org/multierr"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: need a patch and a file, got %d args", cli.ErrUsage, len(args))
	}
	p, err := readPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	doc, err := getObjFile(cc, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return err
	}
	apply := spatch.Apply
	if cfg.RFC6902 {
		apply = jsonpatch.ApplyRFC6902
	}
	res, err := apply(doc, p)
	if err != nil {
		colors := cfg.colors(os.Stderr)
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(os.Stderr, errorText(colors, e))
		}
		return cli.ExitCodeErr(1)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

// readPatch reads a patch in any input format by way of its JSON form.
func readPatch(cfg *PatchConfig, cc *cli.Context, path string) (jsonpatch.Patch, error) {
	node, err := getObjFile(cc, path, cfg.parseOpts(path)...)
	if err != nil {
		return nil, err
	}
	d, err := encode.MarshalJSON(node)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
