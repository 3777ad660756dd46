package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/spatch/encode"
	"github.com/signadot/spatch/format"
	"github.com/signadot/spatch/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// parseOpts selects the input format from the options, falling back to
// the extension of path.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	fmat, ok := format.FromPath(path)
	switch {
	case cfg.Y:
		fmat, ok = format.YAMLFormat, true
	case cfg.J:
		fmat, ok = format.JSONFormat, true
	}
	if cfg.InFormat != nil {
		fmat, ok = *cfg.InFormat, true
	}
	if !ok {
		return nil
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

// colors returns the colors to write to w with, or nil for plain output.
// Without -color, output is colored when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Schema string `cli:"name=s aliases=schema desc='schema file steering the diff'"`
	Text   bool   `cli:"name=text desc='show a line diff of the documents instead of a patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	RFC6902 bool `cli:"name=rfc6902 desc='apply with a strict RFC 6902 implementation'"`

	Patch *cli.Command
}
