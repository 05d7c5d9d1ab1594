package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reusee/chrono/machine"
)

var (
	ErrMissingRegister = errors.New("missing register")
	ErrMissingProgram  = errors.New("missing program")
)

type Input struct {
	Registers machine.Registers
	Program   machine.Program
}

// Parse reads the register block and program line:
//
//	Register A: 729
//	Register B: 0
//	Register C: 0
//
//	Program: 0,1,5,4,3,0
func Parse(r io.Reader) (input Input, err error) {
	registers := map[string]*int64{
		"Register A:": &input.Registers.A,
		"Register B:": &input.Registers.B,
		"Register C:": &input.Registers.C,
	}
	seen := make(map[string]bool)
	hasProgram := false

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "Program:"); ok {
			values, err := parseValues(rest)
			if err != nil {
				return input, fmt.Errorf("line %d: %w", lineNum, err)
			}
			input.Program, err = machine.NewProgram(values)
			if err != nil {
				return input, fmt.Errorf("line %d: %w", lineNum, err)
			}
			hasProgram = true
			continue
		}

		matched := false
		for prefix, target := range registers {
			rest, ok := strings.CutPrefix(line, prefix)
			if !ok {
				continue
			}
			v, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
			if err != nil {
				return input, fmt.Errorf("line %d: %w", lineNum, err)
			}
			*target = v
			seen[prefix] = true
			matched = true
			break
		}
		if !matched {
			return input, fmt.Errorf("line %d: unexpected %q", lineNum, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return input, err
	}

	for _, prefix := range []string{"Register A:", "Register B:", "Register C:"} {
		if !seen[prefix] {
			return input, fmt.Errorf("%w: %s", ErrMissingRegister, strings.TrimSuffix(prefix, ":"))
		}
	}
	if !hasProgram {
		return input, ErrMissingProgram
	}
	return input, nil
}

func ParseString(str string) (Input, error) {
	return Parse(strings.NewReader(str))
}

func parseValues(str string) ([]uint8, error) {
	var values []uint8
	for field := range strings.SplitSeq(str, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return nil, err
		}
		values = append(values, uint8(v))
	}
	return values, nil
}

// Format joins digits with commas.
func Format(digits []uint8) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}
