package bfvm

import "fmt"

type Op uint8

const (
	OpMoveRight Op = iota + 1
	OpMoveLeft
	OpIncrement
	OpDecrement
	OpLoopOpen
	OpLoopClose
	OpOutput
	OpInput
)

var opSymbols = [...]byte{
	OpMoveRight: '>',
	OpMoveLeft:  '<',
	OpIncrement: '+',
	OpDecrement: '-',
	OpLoopOpen:  '[',
	OpLoopClose: ']',
	OpOutput:    '.',
	OpInput:     ',',
}

// OpOf maps a source byte to its instruction. Any other byte is a comment.
func OpOf(b byte) (Op, bool) {
	switch b {
	case '>':
		return OpMoveRight, true
	case '<':
		return OpMoveLeft, true
	case '+':
		return OpIncrement, true
	case '-':
		return OpDecrement, true
	case '[':
		return OpLoopOpen, true
	case ']':
		return OpLoopClose, true
	case '.':
		return OpOutput, true
	case ',':
		return OpInput, true
	}
	return 0, false
}

func (o Op) Symbol() byte {
	if int(o) < len(opSymbols) {
		return opSymbols[o]
	}
	return 0
}

func (o Op) String() string {
	if s := o.Symbol(); s != 0 {
		return string(s)
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}
