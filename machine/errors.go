package machine

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedProgram = errors.New("malformed program")
	ErrOddLength        = fmt.Errorf("%w: odd length", ErrMalformedProgram)
	ErrValueRange       = fmt.Errorf("%w: value out of range", ErrMalformedProgram)
	ErrReservedOperand  = fmt.Errorf("%w: combo operand 7 is reserved", ErrMalformedProgram)

	ErrNegativeShift = errors.New("negative division exponent")
	ErrStepLimit     = errors.New("step limit exceeded")
	ErrNoOutput      = errors.New("iteration produced no output")
	ErrHalted        = errors.New("machine halted")
)
