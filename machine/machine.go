package machine

import "fmt"

type Machine struct {
	Registers
	Program Program
	PC      int

	// Limit bounds the number of executed instructions, zero means unbounded.
	Limit int
	Steps int

	Trace func(TraceRecord)
}

type TraceRecord struct {
	PC      int
	Opcode  Opcode
	Operand uint8
	Before  Registers
	After   Registers
	Jumped  bool
	Output  *uint8
}

func New(regs Registers, prog Program) *Machine {
	return &Machine{
		Registers: regs,
		Program:   prog,
	}
}

func (m *Machine) Halted() bool {
	return m.PC < 0 || m.PC >= len(m.Program)
}

// Step executes the instruction at PC. emitted is true if it was an out.
func (m *Machine) Step() (out uint8, emitted bool, err error) {
	if m.Halted() {
		return 0, false, ErrHalted
	}
	if m.Limit > 0 && m.Steps >= m.Limit {
		return 0, false, fmt.Errorf("%w: %d", ErrStepLimit, m.Limit)
	}
	if m.PC+1 >= len(m.Program) {
		return 0, false, fmt.Errorf("%w: dangling opcode at pc %d", ErrOddLength, m.PC)
	}
	m.Steps++

	pc := m.PC
	op := Opcode(m.Program[pc])
	operand := m.Program[pc+1]
	before := m.Registers
	jumped := false

	switch op {

	case OpAdv, OpBdv, OpCdv:
		exp, err := m.combo(operand)
		if err != nil {
			return 0, false, err
		}
		v, err := divPow2(m.A, exp)
		if err != nil {
			return 0, false, fmt.Errorf("%s at pc %d: %w", op, pc, err)
		}
		switch op {
		case OpAdv:
			m.A = v
		case OpBdv:
			m.B = v
		case OpCdv:
			m.C = v
		}

	case OpBxl:
		m.B ^= int64(operand)

	case OpBst:
		v, err := m.combo(operand)
		if err != nil {
			return 0, false, err
		}
		m.B = v & 7

	case OpJnz:
		if m.A != 0 {
			m.PC = int(operand)
			jumped = true
		}

	case OpBxc:
		m.B ^= m.C

	case OpOut:
		v, err := m.combo(operand)
		if err != nil {
			return 0, false, err
		}
		out = uint8(v & 7)
		emitted = true

	default:
		return 0, false, fmt.Errorf("%w: opcode %d at pc %d", ErrValueRange, op, pc)
	}

	if !jumped {
		m.PC += 2
	}

	if m.Trace != nil {
		rec := TraceRecord{
			PC:      pc,
			Opcode:  op,
			Operand: operand,
			Before:  before,
			After:   m.Registers,
			Jumped:  jumped,
		}
		if emitted {
			rec.Output = &out
		}
		m.Trace(rec)
	}

	return out, emitted, nil
}

// Run executes until halt, yielding every emitted digit.
func (m *Machine) Run(yield func(uint8, error) bool) {
	for !m.Halted() {
		out, emitted, err := m.Step()
		if err != nil {
			yield(0, err)
			return
		}
		if emitted {
			if !yield(out, nil) {
				return
			}
		}
	}
}

func (m *Machine) Output() ([]uint8, error) {
	var output []uint8
	for out, err := range m.Run {
		if err != nil {
			return output, err
		}
		output = append(output, out)
	}
	return output, nil
}

func Run(regs Registers, prog Program) ([]uint8, error) {
	return New(regs, prog).Output()
}
