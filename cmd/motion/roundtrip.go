package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func roundtrip(cfg *RoundtripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Roundtrip.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: roundtrip [-o out] <file>", cli.ErrUsage)
	}
	me := cfg.editor()
	if err := me.Load(args[0]); err != nil {
		return err
	}
	out := cfg.O
	if out == "" {
		out = args[0]
	}
	return me.Save(out)
}
