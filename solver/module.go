package solver

import (
	"github.com/reusee/chrono/chronoconfigs"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs chronoconfigs.Module
}

type NewSolver func(opts ...Option) *Solver

func (Module) NewSolver(
	logger logs.Logger,
	workers chronoconfigs.Workers,
) NewSolver {
	return func(opts ...Option) *Solver {
		return New(append([]Option{
			Workers(int(workers)),
			Logger(logger),
		}, opts...)...)
	}
}
