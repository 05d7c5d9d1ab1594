package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/chrono/cmds"
)

// Writer receives terminal log output.
type Writer io.Writer

var logFile = cmds.Var[string]("-log-file")

// Writer is stderr unless -log-file names a file to append to.
func (Module) Writer() Writer {
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			return f
		}
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
	}
	return os.Stderr
}
