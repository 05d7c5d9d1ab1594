package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/reusee/chrono/machine"
)

// Solver inverts one loop iteration at a time. It assumes every iteration of
// the program shifts A right by 3 bits and emits exactly one digit; the
// minimal answer is re-run forward to catch programs that break this.
type Solver struct {
	workers  int
	logger   *slog.Logger
	observer func(Step)
}

type Step struct {
	Index    int
	Digit    uint8
	Frontier []int64
}

type Option func(*Solver)

func Workers(n int) Option {
	return func(s *Solver) {
		s.workers = n
	}
}

func Logger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// Frontiers registers fn to receive the sorted frontier after each digit.
func Frontiers(fn func(Step)) Option {
	return func(s *Solver) {
		s.observer = fn
	}
}

func New(opts ...Option) *Solver {
	s := &Solver{
		workers: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = 1
	}
	return s
}

// FindAll returns every register A value, sorted, whose backward search
// survived all digits of prog.
func (s *Solver) FindAll(ctx context.Context, b, c int64, prog machine.Program) ([]int64, error) {
	if _, err := machine.NewProgram(prog); err != nil {
		return nil, err
	}
	frontier := NewFrontier(0)

	for i := len(prog) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		index := len(prog) - 1 - i
		digit := prog[i]

		next, err := s.expand(ctx, frontier, digit, b, c, prog)
		if err != nil {
			return nil, err
		}
		if len(next) == 0 {
			return nil, fmt.Errorf("%w: step %d, digit %d", ErrNoSolution, index, digit)
		}
		frontier = next

		if s.logger != nil {
			s.logger.DebugContext(ctx, "frontier",
				"step", index,
				"digit", digit,
				"size", len(frontier),
			)
		}
		if s.observer != nil {
			s.observer(Step{
				Index:    index,
				Digit:    digit,
				Frontier: frontier.Sorted(),
			})
		}
	}

	return frontier.Sorted(), nil
}

// FindMinimalA returns the smallest candidate of FindAll that prints prog when
// run forward. Malformed programs fail with machine.ErrMalformedProgram.
func (s *Solver) FindMinimalA(ctx context.Context, b, c int64, prog machine.Program) (int64, error) {
	if len(prog) == 0 {
		return 0, fmt.Errorf("%w: empty program", ErrNoSolution)
	}
	all, err := s.FindAll(ctx, b, c, prog)
	if err != nil {
		return 0, err
	}
	a, err := firstVerified(all, b, c, prog)
	if err != nil {
		return 0, err
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "quine found",
			"a", a,
			"candidates", len(all),
		)
	}
	return a, nil
}

// firstVerified returns the first of the sorted candidates passing Verify, or
// the error of the smallest one.
func firstVerified(candidates []int64, b, c int64, prog machine.Program) (int64, error) {
	var first error
	for _, a := range candidates {
		err := Verify(a, b, c, prog)
		if err == nil {
			return a, nil
		}
		if first == nil {
			first = err
		}
	}
	if first == nil {
		return 0, fmt.Errorf("%w: no candidates", ErrNoSolution)
	}
	return 0, first
}

func FindMinimalA(ctx context.Context, b, c int64, prog machine.Program, opts ...Option) (int64, error) {
	return New(opts...).FindMinimalA(ctx, b, c, prog)
}

// VerifyLimit bounds the forward run used to check a candidate.
const VerifyLimit = 1 << 20

func Verify(a, b, c int64, prog machine.Program) error {
	m := machine.New(machine.Registers{A: a, B: b, C: c}, prog)
	m.Limit = VerifyLimit
	output, err := m.Output()
	if err != nil {
		return fmt.Errorf("%w: a=%d: %w", ErrVerification, a, err)
	}
	if !prog.Equal(output) {
		return fmt.Errorf("%w: a=%d printed %v", ErrVerification, a, output)
	}
	return nil
}

// predecessors returns the 3-bit extensions of v that produce digit and land
// on v after one iteration.
func predecessors(v int64, digit uint8, b, c int64, prog machine.Program) ([]int64, error) {
	if v > (math.MaxInt64-7)/8 {
		return nil, fmt.Errorf("%w: %d*8", ErrOverflow, v)
	}
	var ret []int64
	for e := range int64(8) {
		candidate := v*8 + e
		got, next, err := machine.StepIteration(candidate, b, c, prog)
		if errors.Is(err, machine.ErrMalformedProgram) {
			return nil, err
		} else if err != nil {
			// candidates that cannot be simulated are not predecessors
			continue
		}
		if got == digit && next == v {
			ret = append(ret, candidate)
		}
	}
	return ret, nil
}
