package bfvm

import "fmt"

// EOFPolicy decides what Input stores when the input stream is exhausted.
type EOFPolicy uint8

const (
	EOFZero      EOFPolicy = iota // store 0
	EOFUnchanged                  // leave the cell as is
	EOFMax                        // store 255
)

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	switch str {
	case "", "zero", "0":
		return EOFZero, nil
	case "unchanged", "keep":
		return EOFUnchanged, nil
	case "max", "255", "-1":
		return EOFMax, nil
	}
	return 0, fmt.Errorf("unknown eof policy: %q", str)
}

func (e EOFPolicy) String() string {
	switch e {
	case EOFZero:
		return "zero"
	case EOFUnchanged:
		return "unchanged"
	case EOFMax:
		return "max"
	}
	return fmt.Sprintf("EOFPolicy(%d)", uint8(e))
}

func (e EOFPolicy) apply(tape *Tape) {
	switch e {
	case EOFZero:
		tape.Write(0)
	case EOFMax:
		tape.Write(255)
	}
}
