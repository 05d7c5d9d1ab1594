package solver

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/reusee/chrono/machine"
	"github.com/stretchr/testify/require"
)

var exampleQuine = machine.MustProgram(0, 3, 5, 4, 3, 0)

func TestFindMinimalA(t *testing.T) {
	a, err := FindMinimalA(t.Context(), 0, 0, exampleQuine)
	require.NoError(t, err)
	require.Equal(t, int64(117440), a)

	output, err := machine.Run(machine.Registers{A: a}, exampleQuine)
	require.NoError(t, err)
	require.Equal(t, []uint8(exampleQuine), output)
}

func TestFindAll(t *testing.T) {
	all, err := New().FindAll(t.Context(), 0, 0, exampleQuine)
	require.NoError(t, err)
	require.Equal(t, []int64{
		117440, 117441, 117442, 117443,
		117444, 117445, 117446, 117447,
	}, all)
	for _, a := range all {
		require.NoError(t, Verify(a, 0, 0, exampleQuine))
	}
}

func TestMinimalAgainstBruteForce(t *testing.T) {
	a, err := FindMinimalA(t.Context(), 0, 0, exampleQuine)
	require.NoError(t, err)

	for candidate := range a {
		output, err := machine.Run(machine.Registers{A: candidate}, exampleQuine)
		require.NoError(t, err)
		if exampleQuine.Equal(output) {
			t.Fatalf("%d is smaller and prints the program", candidate)
		}
	}
}

func TestNoSolutionAgainstBruteForce(t *testing.T) {
	// halves A per iteration, so no 3-bit predecessor exists past the first digit
	prog := machine.MustProgram(0, 1, 5, 4, 3, 0)

	_, err := FindMinimalA(t.Context(), 0, 0, prog)
	require.ErrorIs(t, err, ErrNoSolution)
	require.False(t, errors.Is(err, machine.ErrMalformedProgram))

	for candidate := range int64(1 << 12) {
		output, err := machine.Run(machine.Registers{A: candidate}, prog)
		require.NoError(t, err)
		require.False(t, prog.Equal(output), "a=%d", candidate)
	}
}

func TestFourValuesAgainstBruteForce(t *testing.T) {
	// prints A forever unless A is 0, which prints a single 0
	prog := machine.MustProgram(5, 4, 3, 0)

	_, err := FindMinimalA(t.Context(), 0, 0, prog)
	require.ErrorIs(t, err, ErrNoSolution)
	require.Contains(t, err.Error(), "step 1")

	for candidate := range int64(1 << 12) {
		m := machine.New(machine.Registers{A: candidate}, prog)
		m.Limit = 64
		output, err := m.Output()
		if err != nil {
			require.ErrorIs(t, err, machine.ErrStepLimit)
			continue
		}
		require.False(t, prog.Equal(output), "a=%d", candidate)
	}
}

func TestMalformedProgram(t *testing.T) {
	for _, prog := range []machine.Program{
		{0, 7, 5, 4, 3, 0},
		{0, 3, 5, 4, 3},
		{9, 3, 5, 4, 3, 0},
	} {
		_, err := FindMinimalA(t.Context(), 0, 0, prog)
		require.ErrorIs(t, err, machine.ErrMalformedProgram, "%v", prog)
		require.False(t, errors.Is(err, ErrNoSolution), "%v", prog)

		_, err = New(Workers(4)).FindAll(t.Context(), 0, 0, prog)
		require.ErrorIs(t, err, machine.ErrMalformedProgram, "%v", prog)
	}
}

func TestPredecessorsMalformed(t *testing.T) {
	_, err := predecessors(0, 0, 0, 0, machine.Program{5, 7, 3, 0})
	require.ErrorIs(t, err, machine.ErrReservedOperand)
}

func TestFirstVerified(t *testing.T) {
	// 5 prints a single digit, the next candidate is the quine
	a, err := firstVerified([]int64{5, 117441, 117440}, 0, 0, exampleQuine)
	require.NoError(t, err)
	require.Equal(t, int64(117441), a)

	_, err = firstVerified([]int64{5, 6}, 0, 0, exampleQuine)
	require.ErrorIs(t, err, ErrVerification)
	require.Contains(t, err.Error(), "a=5")

	_, err = firstVerified(nil, 0, 0, exampleQuine)
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestNoSolutionFirstDigit(t *testing.T) {
	// always prints 1, the last digit must be 0
	_, err := FindMinimalA(t.Context(), 0, 0, machine.MustProgram(0, 3, 5, 1, 3, 0))
	require.ErrorIs(t, err, ErrNoSolution)
	require.Contains(t, err.Error(), "step 0")
}

func TestEmptyProgram(t *testing.T) {
	_, err := FindMinimalA(t.Context(), 0, 0, machine.Program{})
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestVerificationFailure(t *testing.T) {
	// prints before shifting, so the backward search trusts a final pass
	// that never runs
	prog := machine.MustProgram(5, 4, 0, 3, 3, 0)

	all, err := New().FindAll(t.Context(), 0, 0, prog)
	require.NoError(t, err)
	require.Equal(t, []int64{13861}, all)

	_, err = FindMinimalA(t.Context(), 0, 0, prog)
	require.ErrorIs(t, err, ErrVerification)
}

func TestFrontiers(t *testing.T) {
	var steps []Step
	_, err := FindMinimalA(t.Context(), 0, 0, exampleQuine, Frontiers(func(step Step) {
		steps = append(steps, step)
	}))
	require.NoError(t, err)
	require.Len(t, steps, len(exampleQuine))
	require.Equal(t, uint8(0), steps[0].Digit)
	require.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7}, steps[0].Frontier)
	require.Equal(t, uint8(3), steps[1].Digit)
	require.Equal(t, []int64{24, 25, 26, 27, 28, 29, 30, 31}, steps[1].Frontier)
	for i, step := range steps {
		require.Equal(t, i, step.Index)
		for _, v := range step.Frontier {
			require.GreaterOrEqual(t, v, int64(0))
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	programs := []machine.Program{
		exampleQuine,
		machine.MustProgram(2, 4, 1, 1, 7, 5, 1, 5, 4, 0, 0, 3, 5, 5, 3, 0),
		machine.MustProgram(0, 1, 5, 4, 3, 0),
	}
	for _, prog := range programs {
		seq, seqErr := New(Workers(1)).FindAll(t.Context(), 0, 0, prog)
		par, parErr := New(Workers(8)).FindAll(t.Context(), 0, 0, prog)
		require.Equal(t, seqErr == nil, parErr == nil, "program %s", prog)
		if seqErr != nil {
			require.ErrorIs(t, parErr, ErrNoSolution)
			continue
		}
		require.Equal(t, seq, par, "program %s", prog)

		a, err := New(Workers(8)).FindMinimalA(t.Context(), 0, 0, prog)
		require.NoError(t, err)
		require.Equal(t, seq[0], a)
		output, err := machine.Run(machine.Registers{A: a}, prog)
		require.NoError(t, err)
		require.Equal(t, []uint8(prog), output)
	}
}

func TestOverflow(t *testing.T) {
	_, err := predecessors(math.MaxInt64/8+1, 0, 0, 0, exampleQuine)
	require.ErrorIs(t, err, ErrOverflow)

	next, err := New(Workers(4)).expand(t.Context(), NewFrontier(1, math.MaxInt64/8+1), 0, 0, 0, exampleQuine)
	require.ErrorIs(t, err, ErrOverflow)
	require.Nil(t, next)
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := FindMinimalA(ctx, 0, 0, exampleQuine)
	require.ErrorIs(t, err, context.Canceled)

	_, err = New(Workers(4)).expand(ctx, NewFrontier(1, 2, 3), 0, 0, 0, exampleQuine)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFrontier(t *testing.T) {
	f := NewFrontier(5, 3, 5)
	f.Add(9, 3)
	require.Equal(t, []int64{3, 5, 9}, f.Sorted())
	lowest, ok := f.Min()
	require.True(t, ok)
	require.Equal(t, int64(3), lowest)
	_, ok = NewFrontier().Min()
	require.False(t, ok)
}
