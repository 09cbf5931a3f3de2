package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "motion").
		WithSynopsis("motion [opts] command [opts]").
		WithDescription("motion is a tool for editing robot motion YAML files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cli.ErrUsage
		}).
		WithSubs(
			NamesCommand(cfg),
			ShowCommand(cfg),
			SetCommand(cfg),
			RoundtripCommand(cfg))
}

func NamesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NamesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Names, "names").
		WithAliases("n", "ls").
		WithSynopsis("names <file>").
		WithDescription("list frame names in document order").
		WithRun(func(cc *cli.Context, args []string) error {
			return names(cfg, cc, args)
		})
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Show, "show").
		WithAliases("s").
		WithSynopsis("show <file> <frame>").
		WithDescription("print one frame in human-readable form").
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithSynopsis("set [opts] <file> <frame> [joint=rad ...]").
		WithDescription("set joint positions in a frame and save the file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func RoundtripCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RoundtripConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Roundtrip, "roundtrip").
		WithAliases("rt").
		WithSynopsis("roundtrip [-o out] <file>").
		WithDescription("load a motion file and write it back out canonically").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return roundtrip(cfg, cc, args)
		})
}
