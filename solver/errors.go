package solver

import "errors"

var (
	ErrNoSolution   = errors.New("no quine exists for program")
	ErrOverflow     = errors.New("candidate exceeds register width")
	ErrVerification = errors.New("candidate does not reproduce program")
)
