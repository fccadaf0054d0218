// Package debug provides environment-gated debug logging for the diff
// engine.  Flags are read once at process start:
//
//	JR_DEBUG_KEYS     identity key discovery
//	JR_DEBUG_ALIGN    array sequence alignment
//	JR_DEBUG_RESOLVE  path resolution
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Keys    bool
	Align   bool
	Resolve bool
}

var d *debug

func init() {
	d = &debug{}
	d.Keys = boolEnv("JR_DEBUG_KEYS")
	d.Align = boolEnv("JR_DEBUG_ALIGN")
	d.Resolve = boolEnv("JR_DEBUG_RESOLVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Keys() bool {
	return d.Keys
}
func Align() bool {
	return d.Align
}
func Resolve() bool {
	return d.Resolve
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
