package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/chrono/logs"
	"github.com/reusee/chrono/machine"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer logger.InfoContext(ctx, "tap end: "+what)

		mappings := make(starlark.StringDict, len(globals))
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}
		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

// MachineGlobals exposes a program and its registers to a tap, with run and
// iterate helpers bound to prog.
func MachineGlobals(regs machine.Registers, prog machine.Program, output []uint8) map[string]any {
	return map[string]any{
		"registers": regs,
		"program":   prog,
		"output":    output,
		"disasm":    prog.Disassemble(),
		"run": func(a, b, c int64) []int64 {
			out, err := machine.Run(machine.Registers{A: a, B: b, C: c}, prog)
			if err != nil {
				return nil
			}
			ret := make([]int64, len(out))
			for i, d := range out {
				ret[i] = int64(d)
			}
			return ret
		},
		"iterate": func(a, b, c int64) []int64 {
			digit, next, err := machine.StepIteration(a, b, c, prog)
			if err != nil {
				return nil
			}
			return []int64{int64(digit), next}
		},
	}
}
