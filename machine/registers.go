package machine

import "fmt"

type Registers struct {
	A int64
	B int64
	C int64
}

func (r Registers) String() string {
	return fmt.Sprintf("A=%d B=%d C=%d", r.A, r.B, r.C)
}

func (r *Registers) combo(operand uint8) (int64, error) {
	switch operand {
	case 0, 1, 2, 3:
		return int64(operand), nil
	case 4:
		return r.A, nil
	case 5:
		return r.B, nil
	case 6:
		return r.C, nil
	}
	return 0, ErrReservedOperand
}

// divPow2 divides a by 2^exp, truncating toward zero.
func divPow2(a, exp int64) (int64, error) {
	if exp < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeShift, exp)
	}
	if exp >= 64 {
		return 0, nil
	}
	if a >= 0 {
		return a >> exp, nil
	}
	// magnitude of math.MinInt64 still fits in uint64
	mag := uint64(-a) >> exp
	return -int64(mag), nil
}
