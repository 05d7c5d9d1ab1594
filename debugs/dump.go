package debugs

import (
	"github.com/kr/pretty"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/chrono/machine"
)

func Dump(v any) string {
	return pretty.Sprint(v)
}

// Trace logs every executed instruction at debug level.
type Trace func(machine.TraceRecord)

func (Module) Trace(
	logger logs.Logger,
) Trace {
	return func(rec machine.TraceRecord) {
		args := []any{
			"pc", rec.PC,
			"op", rec.Opcode.String(),
			"operand", rec.Operand,
			"registers", Dump(rec.After),
		}
		if rec.Output != nil {
			args = append(args, "out", *rec.Output)
		}
		logger.Debug("trace", args...)
	}
}
