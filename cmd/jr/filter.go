package main

import (
	"github.com/jsonrecon/jsonrecon/libdiff"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// filterEnv is the expression environment for -e, one instance per entry.
type filterEnv struct {
	Kind        string `expr:"kind"`
	Path        string `expr:"path"`
	NumericPath string `expr:"numericPath"`
	Key         string `expr:"key"`
}

type entryFilter struct {
	prog *vm.Program
}

func compileFilter(src string) (*entryFilter, error) {
	prog, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &entryFilter{prog: prog}, nil
}

func (f *entryFilter) apply(res *libdiff.Result) (*libdiff.Result, error) {
	out := &libdiff.Result{IdentityKeys: res.IdentityKeys}
	for i := range res.Diffs {
		e := &res.Diffs[i]
		v, err := expr.Run(f.prog, filterEnv{
			Kind:        e.Kind.String(),
			Path:        e.DisplayPath,
			NumericPath: e.NumericPath,
			Key:         e.IdentityKey,
		})
		if err != nil {
			return nil, err
		}
		if v.(bool) {
			out.Diffs = append(out.Diffs, *e)
		}
	}
	return out, nil
}
