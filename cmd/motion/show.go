package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/WJJJ2004/motion-editor/encode"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: show <file> <frame>", cli.ErrUsage)
	}
	me := cfg.editor()
	if err := me.Load(args[0]); err != nil {
		return err
	}
	f, ok := me.Frame(args[1])
	if !ok {
		return fmt.Errorf("no frame %q in %q", args[1], args[0])
	}
	return encode.Fprint(cc.Out, f, cfg.printOpts(cc.Out)...)
}
