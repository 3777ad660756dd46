package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/parse"

	"github.com/scott-cotton/cli"
)

// getObjFile loads the document at path, or from cc.In when path is "-".
func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	if path == "-" {
		return readDoc(cc.In, "<stdin>", opts...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}
	defer f.Close()
	return readDoc(f, path, opts...)
}

func readDoc(r io.Reader, name string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", name, err)
	}
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}
