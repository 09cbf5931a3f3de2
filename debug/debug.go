package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/WJJJ2004/motion-editor/ir"
)

type debug struct {
	Load bool
	Save bool
	Edit bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("MOTION_DEBUG_LOAD")
	d.Save = boolEnv("MOTION_DEBUG_SAVE")
	d.Edit = boolEnv("MOTION_DEBUG_EDIT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Save() bool {
	return d.Save
}
func Edit() bool {
	return d.Edit
}

// Logf writes to stderr, rendering *ir.Node arguments as YAML.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *ir.Node:
			out, err := yaml.Marshal(x.ToYAML())
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = string(out)
		case map[string]any, []any:
			out, err := yaml.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(out)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
