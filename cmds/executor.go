package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	e := &Executor{
		commands: make(map[string]*Command),
	}
	e.Define("-h", Func(func() {
		e.PrintUsage(os.Stdout)
		os.Exit(0)
	}).Desc("print usage").Alias("-help", "--help", "help"))
	return e
}

func (e *Executor) Define(name string, cmd *Command) {
	for _, n := range append([]string{name}, cmd.aliases...) {
		if _, ok := e.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		e.commands[n] = cmd
	}
}

// Execute runs args as a sequence of commands. A command with subs makes
// them available to the rest of the sequence.
func (e *Executor) Execute(args []string) error {
	commands := e.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		cmd, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		var err error
		args, err = cmd.call(args)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		if len(cmd.subs) > 0 {
			commands = maps.Clone(commands)
			for sub, subCmd := range cmd.subs {
				if _, ok := commands[sub]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, sub)
				}
				commands[sub] = subCmd
			}
		}
	}
	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}

func (e *Executor) PrintUsage(w io.Writer) {
	printCommands(w, e.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		cmd := commands[name]
		if cmd == nil || slices.Contains(cmd.aliases, name) {
			continue
		}
		names := append([]string{name}, cmd.aliases...)
		fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), strings.Join(names, ", "))
		if cmd.description != "" {
			fmt.Fprintf(w, "\t%s", cmd.description)
		}
		fmt.Fprintln(w)
		if len(cmd.subs) > 0 {
			printCommands(w, cmd.subs, depth+1)
		}
	}
}
