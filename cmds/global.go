package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, cmd *Command) {
	GlobalExecutor.Define(name, cmd)
}

// Execute runs args on GlobalExecutor and exits the process on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}
}
