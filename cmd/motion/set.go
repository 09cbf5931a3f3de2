package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set <file> <frame> [joint=rad ...]", cli.ErrUsage)
	}
	file, frame := args[0], args[1]
	updates, err := parseUpdates(args[2:])
	if err != nil {
		return err
	}
	me := cfg.editor()
	if err := me.Load(file); err != nil {
		return err
	}
	if cfg.Arm {
		err = me.EditArmJoints(frame, updates)
	} else {
		err = me.EditJoints(frame, updates, cfg.Strict)
	}
	if err != nil {
		return err
	}
	return me.Save(file)
}

func parseUpdates(args []string) (map[string]float64, error) {
	updates := make(map[string]float64, len(args))
	for _, a := range args {
		name, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: want joint=rad, got %q", cli.ErrUsage, a)
		}
		rad, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad position %q: %v", cli.ErrUsage, val, err)
		}
		updates[name] = rad
	}
	return updates, nil
}
