package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "max-cells",
			Description: "largest table the exact alignment may build",
			Type:        cli.NamedFuncOpt(cfg.maxCellsOpt, "(n)"),
		},
		&cli.Opt{
			Name:        "timeout",
			Description: "time limit for the heuristic alignment, such as 2s",
			Type:        cli.NamedFuncOpt(cfg.timeoutOpt, "(duration)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "diffx").
		WithSynopsis("diffx [opts] command [opts] a b").
		WithDescription("diffx compares XML, HTML or text documents structurally.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffxMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			ScriptCommand(cfg),
			StatsCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] a b").
		WithDescription("write a annotated with the changes that turn it into b").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ScriptCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ScriptConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Script, "script").
		WithAliases("s").
		WithSynopsis("script [-y] a b").
		WithDescription("list the edit script, one token per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return script(cfg, cc, args)
		})
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithAliases("st").
		WithSynopsis("stats [-expect expr] a b").
		WithDescription(statsDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
}

const statsDescription = `stats counts the edits between two documents.

The counts are written as YAML. With -expect, the expression is evaluated
over the counts and stats exits with status 1 when it is false, for
example

  diffx stats -expect 'del == 0' old.xml new.xml

The variables are match, ins, del, edits and total, and kinds, a map from
token kind (such as Text or StartElement) to its own counts.`
