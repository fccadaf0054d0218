package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsonrecon/jsonrecon/encode"
	"github.com/jsonrecon/jsonrecon/format"
	"github.com/jsonrecon/jsonrecon/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Wire  bool `cli:"name=w aliases=wire desc='compact value rendering'"`

	J bool `cli:"name=j aliases=json desc='read input as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
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

// parseOpts picks the input format: explicit flags win, then the file
// extension, then JSON.
func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	fmat := format.JSONFormat
	switch {
	case strings.HasSuffix(file, ".yaml"), strings.HasSuffix(file, ".yml"):
		fmat = format.YAMLFormat
	}
	switch {
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.Y:
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
		encode.EncodeWire(cfg.Wire),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
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

type DiffConfig struct {
	*MainConfig
	Keys   bool   `cli:"name=k aliases=keys desc='print discovered identity keys'"`
	Filter string `cli:"name=e desc='filter entries with an expression over {kind, path, numericPath, key}'"`

	Diff *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type ResolveConfig struct {
	*MainConfig
	Side string `cli:"name=side desc='resolve for one side: left or right'"`

	Resolve *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}
