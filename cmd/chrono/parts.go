package main

import (
	"context"
	"errors"
	"strconv"

	"github.com/reusee/chrono/machine"
	"github.com/reusee/chrono/puzzle"
	"github.com/reusee/chrono/solver"
)

const notQuine = "N/A (program cannot be a quine)"

func part1(input puzzle.Input, trace func(machine.TraceRecord)) (string, []uint8, error) {
	m := machine.New(input.Registers, input.Program)
	m.Trace = trace
	output, err := m.Output()
	if err != nil {
		return "", nil, err
	}
	return puzzle.Format(output), output, nil
}

func part2(ctx context.Context, input puzzle.Input, s *solver.Solver) (string, error) {
	a, err := s.FindMinimalA(ctx, input.Registers.B, input.Registers.C, input.Program)
	if errors.Is(err, solver.ErrNoSolution) {
		return notQuine, nil
	} else if err != nil {
		return "", err
	}
	return strconv.FormatInt(a, 10), nil
}
