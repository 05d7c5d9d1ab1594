package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/chrono/cmds"
	"github.com/reusee/chrono/debugs"
	"github.com/reusee/chrono/inputs"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/chrono/machine"
	"github.com/reusee/chrono/modes"
	"github.com/reusee/chrono/puzzle"
	"github.com/reusee/chrono/solver"
	"github.com/reusee/dscope"
)

var (
	fileFlag   = cmds.Var[string]("-file")
	partFlag   = cmds.Var[int]("-part")
	traceFlag  = cmds.Switch("-trace")
	tapFlag    = cmds.Switch("-tap")
	disasmFlag = cmds.Switch("-disasm")

	fetchYear, fetchDay int
)

func init() {
	cmds.Define("-fetch", cmds.Func(func(year, day int) {
		fetchYear = year
		fetchDay = day
	}).Desc("download input for <year> <day>"))
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		fetch inputs.Fetch,
		newSolver solver.NewSolver,
		trace debugs.Trace,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(ctx, "chrono")

		fail := func(err error) {
			fmt.Fprintf(os.Stderr, "chrono: %v\n", logs.WrapSpan(ctx, err))
			os.Exit(1)
		}

		path := *fileFlag
		if fetchDay != 0 {
			var err error
			path, err = fetch(ctx, fetchYear, fetchDay)
			if err != nil {
				fail(err)
			}
		}
		if path == "" {
			fmt.Fprintln(os.Stderr, "chrono: -file <input> or -fetch <year> <day> is required")
			os.Exit(1)
		}

		f, err := os.Open(path)
		if err != nil {
			fail(err)
		}
		input, err := puzzle.Parse(f)
		f.Close()
		if err != nil {
			fail(fmt.Errorf("parse %s: %w", path, err))
		}
		logger.InfoContext(ctx, "input",
			"path", path,
			"registers", input.Registers.String(),
			"program", input.Program.String(),
		)

		if *disasmFlag {
			fmt.Println(strings.Join(input.Program.Disassemble(), "\n"))
		}

		var output []uint8
		if *partFlag == 0 || *partFlag == 1 {
			var traceFunc func(machine.TraceRecord)
			if *traceFlag {
				traceFunc = trace
			}
			var res string
			res, output, err = part1(input, traceFunc)
			if err != nil {
				fail(err)
			}
			fmt.Printf("Part 1 = %s\n", res)
		}

		if *partFlag == 0 || *partFlag == 2 {
			var opts []solver.Option
			if *traceFlag {
				opts = append(opts, solver.Frontiers(func(step solver.Step) {
					logger.DebugContext(ctx, "frontier values",
						"step", step.Index,
						"digit", step.Digit,
						"values", debugs.Dump(step.Frontier),
					)
				}))
			}
			res, err := part2(ctx, input, newSolver(opts...))
			if err != nil {
				fail(err)
			}
			fmt.Printf("Part 2 = %s\n", res)
		}

		if *tapFlag {
			tap(ctx, path, debugs.MachineGlobals(input.Registers, input.Program, output))
		}
	})
}
