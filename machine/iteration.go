package machine

import "fmt"

// IterationLimit bounds the instructions executed by StepIteration.
const IterationLimit = 1 << 16

// StepIteration runs one pass of the loop body starting at pc 0 with the
// given registers. The pass ends when pc comes back to 0, when a jnz falls
// through, or when the machine halts. The last two report nextA as 0. If the
// pass emitted more than one digit the last one is reported.
func StepIteration(a, b, c int64, prog Program) (digit uint8, nextA int64, err error) {
	m := New(Registers{A: a, B: b, C: c}, prog)
	m.Limit = IterationLimit
	emitted := false
	for {
		var op Opcode
		if !m.Halted() {
			op = Opcode(prog[m.PC])
		}
		out, ok, err := m.Step()
		if err != nil {
			return 0, 0, err
		}
		if ok {
			digit = out
			emitted = true
		}
		if op == OpJnz && m.A == 0 {
			// fell through, the loop is over
			nextA = 0
			break
		}
		if m.Halted() {
			nextA = 0
			break
		}
		if m.PC == 0 {
			nextA = m.A
			break
		}
	}
	if !emitted {
		return 0, 0, fmt.Errorf("%w: a=%d", ErrNoOutput, a)
	}
	return digit, nextA, nil
}
