package main

import (
	"fmt"
	"strings"

	"github.com/jsonrecon/jsonrecon"

	"github.com/scott-cotton/cli"
)

func resolve(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		cfg.Resolve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: resolve requires <path> <left> <right>, got %v", cli.ErrUsage, args)
	}
	path := args[0]
	left, err := getObjFile(cc, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	right, err := getObjFile(cc, args[2], cfg.parseOpts(args[2])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[2], err)
	}
	trees := &jsonrecon.Trees{Left: left, Right: right}
	idKeys := jsonrecon.Compare(left, right).IdentityKeys
	w := cc.Out

	if strings.Contains(path, "[]") || strings.Contains(path, "[*]") {
		m, err := jsonrecon.ResolveArrayPattern(path, trees, idKeys)
		if err != nil {
			return err
		}
		if m.Left == "" && m.Right == "" {
			return cli.ExitCodeErr(1)
		}
		if m.Left != "" {
			fmt.Fprintln(w, "left_"+m.Left)
		}
		if m.Right != "" {
			fmt.Fprintln(w, "right_"+m.Right)
		}
		return nil
	}

	side := jsonrecon.LeftSide
	if cfg.Side != "" {
		side, err = jsonrecon.ParseSide(cfg.Side)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	vp, err := jsonrecon.ToViewerPath(path, side, trees, idKeys)
	if err != nil {
		return err
	}
	if vp == "" {
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintln(w, vp)
	return nil
}
