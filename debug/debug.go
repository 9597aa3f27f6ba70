package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

type debug struct {
	Align     bool
	Reconcile bool
	Load      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Align = boolEnv("DIFFX_DEBUG_ALIGN")
	d.Reconcile = boolEnv("DIFFX_DEBUG_RECONCILE")
	d.Load = boolEnv("DIFFX_DEBUG_LOAD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Align reports whether alignment decisions are traced.
func Align() bool {
	return d.Align
}

// Reconcile reports whether every entry seen by the reconciler is traced.
func Reconcile() bool {
	return d.Reconcile
}

// Load reports whether loaded token lists are dumped.
func Load() bool {
	return d.Load
}

func LogAny(v any) {
	d, err := yaml.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
