package machine

type Opcode uint8

const (
	OpAdv Opcode = iota
	OpBxl
	OpBst
	OpJnz
	OpBxc
	OpOut
	OpBdv
	OpCdv
)

var opNames = [...]string{
	OpAdv: "adv",
	OpBxl: "bxl",
	OpBst: "bst",
	OpJnz: "jnz",
	OpBxc: "bxc",
	OpOut: "out",
	OpBdv: "bdv",
	OpCdv: "cdv",
}

func (o Opcode) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "invalid"
}

func (o Opcode) Valid() bool {
	return o <= OpCdv
}

type OperandMode uint8

const (
	OperandLiteral OperandMode = iota
	OperandCombo
	OperandIgnored
)

// Mode reports how the operand following o is interpreted.
func (o Opcode) Mode() OperandMode {
	switch o {
	case OpBxl, OpJnz:
		return OperandLiteral
	case OpBxc:
		return OperandIgnored
	}
	return OperandCombo
}
