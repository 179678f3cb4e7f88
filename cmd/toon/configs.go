package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/format"
	"github.com/toon-format/go-toon/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='read input as json (default)'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	Delimiter    encode.Delimiter
	Spaces       int
	Folding      encode.KeyFolding
	FlattenDepth int

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) delimOpt(_ *cli.Context, v string) (any, error) {
	d, err := encode.ParseDelimiter(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Delimiter = d
	return d, nil
}

func (cfg *MainConfig) spacesOpt(_ *cli.Context, v string) (any, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: spaces must be a non-negative integer, got %q", cli.ErrUsage, v)
	}
	cfg.Spaces = n
	return n, nil
}

func (cfg *MainConfig) foldOpt(_ *cli.Context, v string) (any, error) {
	m, err := encode.ParseKeyFolding(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Folding = m
	return m, nil
}

func (cfg *MainConfig) flattenOpt(_ *cli.Context, v string) (any, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: flatten depth must be a positive integer, got %q", cli.ErrUsage, v)
	}
	cfg.FlattenDepth = n
	return n, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{
		parse.ParseFormat(fmat),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeDelimiter(cfg.Delimiter),
		encode.EncodeIndent(cfg.Spaces),
		encode.EncodeKeyFolding(cfg.Folding),
	}
	if cfg.FlattenDepth > 0 {
		res = append(res, encode.EncodeFlattenDepth(cfg.FlattenDepth))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}
