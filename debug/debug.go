package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Resolve bool
	Diff    bool
	Patch   bool
	Apply   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SPATCH_DEBUG_PARSE")
	d.Resolve = boolEnv("SPATCH_DEBUG_RESOLVE")
	d.Diff = boolEnv("SPATCH_DEBUG_DIFF")
	d.Patch = boolEnv("SPATCH_DEBUG_PATCH")
	d.Apply = boolEnv("SPATCH_DEBUG_APPLY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Resolve() bool {
	return d.Resolve
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Apply() bool {
	return d.Apply
}
