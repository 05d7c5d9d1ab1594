package inputs

import (
	"github.com/reusee/chrono/chronoconfigs"
	"github.com/reusee/chrono/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Nets    nets.Module
	Configs chronoconfigs.Module
}

type BaseURL string

func (Module) BaseURL() BaseURL {
	return "https://adventofcode.com"
}
