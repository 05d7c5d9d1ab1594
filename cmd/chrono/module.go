package main

import (
	"github.com/reusee/chrono/chronoconfigs"
	"github.com/reusee/chrono/debugs"
	"github.com/reusee/chrono/inputs"
	"github.com/reusee/chrono/solver"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs chronoconfigs.Module
	Inputs  inputs.Module
	Solver  solver.Module
	Debugs  debugs.Module
}
