package machine

import (
	"fmt"
	"strconv"
	"strings"
)

// Program is a validated tape of 3-bit values read as (opcode, operand) pairs.
type Program []uint8

func NewProgram(values []uint8) (Program, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("%w: %d values", ErrOddLength, len(values))
	}
	for i, v := range values {
		if v > 7 {
			return nil, fmt.Errorf("%w: %d at index %d", ErrValueRange, v, i)
		}
	}
	for pc := 0; pc < len(values); pc += 2 {
		op := Opcode(values[pc])
		if op.Mode() == OperandCombo && values[pc+1] == 7 {
			return nil, fmt.Errorf("%w: %s at pc %d", ErrReservedOperand, op, pc)
		}
	}
	return Program(append([]uint8(nil), values...)), nil
}

func MustProgram(values ...uint8) Program {
	prog, err := NewProgram(values)
	if err != nil {
		panic(err)
	}
	return prog
}

func (p Program) String() string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

// Equal reports whether output is exactly the program tape.
func (p Program) Equal(output []uint8) bool {
	if len(p) != len(output) {
		return false
	}
	for i := range p {
		if p[i] != output[i] {
			return false
		}
	}
	return true
}

func (p Program) Disassemble() []string {
	lines := make([]string, 0, len(p)/2)
	for pc := 0; pc+1 < len(p); pc += 2 {
		op := Opcode(p[pc])
		lines = append(lines, fmt.Sprintf("%02d: %s %s", pc, op, formatOperand(op, p[pc+1])))
	}
	return lines
}

func formatOperand(op Opcode, operand uint8) string {
	switch op.Mode() {
	case OperandIgnored:
		return "-"
	case OperandLiteral:
		return strconv.Itoa(int(operand))
	}
	switch operand {
	case 4:
		return "A"
	case 5:
		return "B"
	case 6:
		return "C"
	case 7:
		return "?"
	}
	return strconv.Itoa(int(operand))
}
