package main

import (
	"fmt"

	"github.com/jsonrecon/jsonrecon"
	"github.com/jsonrecon/jsonrecon/encode"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	left, err := getObjFile(cc, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	right, err := getObjFile(cc, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res := jsonrecon.Compare(left, right)
	if cfg.Filter != "" {
		flt, err := compileFilter(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: bad filter %q: %w", cli.ErrUsage, cfg.Filter, err)
		}
		res, err = flt.apply(res)
		if err != nil {
			return fmt.Errorf("error filtering with %q: %w", cfg.Filter, err)
		}
	}
	w := cc.Out
	opts := cfg.encOpts(w)
	if cfg.Keys {
		opts = append(opts, encode.EncodeKeys(true))
	}
	if err := encode.EncodeDiff(res, w, opts...); err != nil {
		return err
	}
	if len(res.Diffs) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
