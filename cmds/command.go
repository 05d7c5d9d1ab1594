package cmds

import (
	"fmt"
	"reflect"
)

type Command struct {
	fn          reflect.Value
	subs        map[string]*Command
	description string
	aliases     []string
}

var errorType = reflect.TypeFor[error]()

// Func wraps fn as a command. Each parameter of fn consumes one argument;
// pointer parameters are optional. fn may return nothing or an error.
func Func(fn any) *Command {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Errorf("command must be a function, got %T", fn))
	}
	switch t := v.Type(); t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) != errorType {
			panic(fmt.Errorf("command may only return error, got %v", t.Out(0)))
		}
	default:
		panic(fmt.Errorf("command returns %d values", t.NumOut()))
	}
	return &Command{
		fn: v,
	}
}

// Sub makes a command whose only effect is enabling the sub commands.
func Sub(subs map[string]*Command) *Command {
	return &Command{
		subs: subs,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.aliases = append(c.aliases, names...)
	return c
}

func (c *Command) call(args []string) (rest []string, err error) {
	if !c.fn.IsValid() {
		return args, nil
	}
	t := c.fn.Type()
	in := make([]reflect.Value, 0, t.NumIn())
	for i := range t.NumIn() {
		v, consumed, err := parseArg(t.In(i), args)
		if err != nil {
			return nil, err
		}
		if consumed {
			args = args[1:]
		}
		in = append(in, v)
	}
	out := c.fn.Call(in)
	if len(out) == 1 && !out[0].IsNil() {
		return nil, out[0].Interface().(error)
	}
	return args, nil
}
