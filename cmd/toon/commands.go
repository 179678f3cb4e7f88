package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Spaces: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "d",
			Aliases:     []string{"delimiter"},
			Description: "delimiter for array values and tabular rows: comma/c, tab/t, pipe/p",
			Type:        cli.NamedFuncOpt(cfg.delimOpt, "(delimiter)"),
		},
		&cli.Opt{
			Name:        "s",
			Aliases:     []string{"spaces"},
			Description: "number of spaces per indentation level (default 2)",
			Type:        cli.NamedFuncOpt(cfg.spacesOpt, "(int)"),
		},
		&cli.Opt{
			Name:        "k",
			Aliases:     []string{"key-folding"},
			Description: "key folding mode: off, safe (collapse single-key chains into dotted paths)",
			Type:        cli.NamedFuncOpt(cfg.foldOpt, "(mode)"),
		},
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"flatten-depth"},
			Description: "maximum depth for key folding (default unlimited)",
			Type:        cli.NamedFuncOpt(cfg.flattenOpt, "(int)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "toon").
		WithSynopsis("toon [opts] [files]").
		WithDescription("toon converts JSON or YAML to TOON (Token-Oriented Object Notation).").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toonMain(cfg, cc, args)
		})
}
