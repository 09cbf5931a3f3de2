package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func names(cfg *NamesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Names.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: names <file>", cli.ErrUsage)
	}
	me := cfg.editor()
	if err := me.Load(args[0]); err != nil {
		return err
	}
	for _, n := range me.FrameNames() {
		fmt.Fprintln(cc.Out, n)
	}
	return nil
}
