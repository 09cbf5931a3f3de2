package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	motion "github.com/WJJJ2004/motion-editor"
	"github.com/WJJJ2004/motion-editor/encode"
	"github.com/WJJJ2004/motion-editor/parse"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='print frames in color'"`
	Legacy bool `cli:"name=legacy desc='save with all blobs before all frames'"`
	Unique bool `cli:"name=unique desc='reject duplicate frame names on load'"`

	Main *cli.Command
}

type NamesConfig struct {
	*MainConfig
	Names *cli.Command
}

type ShowConfig struct {
	*MainConfig
	Show *cli.Command
}

type SetConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='fail on unknown joint names'"`
	Arm    bool `cli:"name=arm desc='restrict updates to the arm+torso group'"`

	Set *cli.Command
}

type RoundtripConfig struct {
	*MainConfig
	O string `cli:"name=o desc='output file (default: input file)'"`

	Roundtrip *cli.Command
}

func (cfg *MainConfig) editor() *motion.Editor {
	var opts []motion.Option
	if cfg.Unique {
		opts = append(opts, motion.WithParseOptions(parse.UniqueNames()))
	}
	if cfg.Legacy {
		opts = append(opts, motion.WithEncodeOptions(encode.LegacyOrder()))
	}
	return motion.New(opts...)
}

func (cfg *MainConfig) printOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}
