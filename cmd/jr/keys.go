package main

import (
	"fmt"

	"github.com/jsonrecon/jsonrecon"
	"github.com/jsonrecon/jsonrecon/encode"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	w := cc.Out
	for i, arg := range args {
		doc, err := getObjFile(cc, arg, cfg.parseOpts(arg)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		ks := jsonrecon.DetectIdentityKeys(doc)
		if err := encode.EncodeIdentityKeys(ks, w, cfg.encOpts(w)...); err != nil {
			return err
		}
	}
	return nil
}
