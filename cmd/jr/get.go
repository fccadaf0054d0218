package main

import (
	"fmt"

	"github.com/jsonrecon/jsonrecon/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	w := cc.Out
	for i, arg := range args {
		doc, err := getObjFile(cc, arg, cfg.parseOpts(arg)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := doc.GetPath(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if res == nil {
			continue
		}
		if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
			return err
		}
	}
	return nil
}
