package chronoconfigs

import (
	"runtime"

	"github.com/reusee/chrono/cmds"
	"github.com/reusee/chrono/configs"
	"github.com/reusee/chrono/vars"
)

// Workers is the number of goroutines expanding the solver frontier.
type Workers int

var workersFlag = cmds.Var[int]("-workers")

func (Module) Workers(
	loader configs.Loader,
) Workers {
	return Workers(vars.FirstNonZero(
		*workersFlag,
		configs.First[int](loader, "workers"),
		runtime.NumCPU(),
	))
}
