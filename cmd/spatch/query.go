package main

import (
	"fmt"

	"github.com/signadot/spatch/encode"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/resolve"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: need a path", cli.ErrUsage)
	}
	p, err := spath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := getObjFile(cc, file, cfg.parseOpts(file)...)
		if err != nil {
			return err
		}
		v, err := resolve.Read(doc, p)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
