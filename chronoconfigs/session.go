package chronoconfigs

import (
	"os"

	"github.com/reusee/chrono/cmds"
	"github.com/reusee/chrono/configs"
	"github.com/reusee/chrono/vars"
)

// Session is the adventofcode.com session cookie used to download inputs.
type Session string

var sessionFlag = cmds.Var[string]("-session")

func (Module) Session(
	loader configs.Loader,
) Session {
	return Session(vars.FirstNonZero(
		*sessionFlag,
		configs.First[string](loader, "session"),
		os.Getenv("AOC_SESSION"),
	))
}

// InputDir is where downloaded puzzle inputs are cached.
type InputDir string

var inputDirFlag = cmds.Var[string]("-input-dir")

func (Module) InputDir(
	loader configs.Loader,
) InputDir {
	return InputDir(vars.FirstNonZero(
		*inputDirFlag,
		configs.First[string](loader, "input_dir"),
		"input",
	))
}
