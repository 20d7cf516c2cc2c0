package bfvm

import (
	"errors"
	"io"
)

// Run executes the program from the current instruction pointer until it halts.
// Errors end the run; returning false from yield also stops it.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	ops := v.Program.Ops
	jumps := v.Program.Jumps
	tape := v.Tape

	for v.IP < len(ops) {
		ip := v.IP
		if v.MaxSteps > 0 && v.Steps >= v.MaxSteps {
			v.abort(yield, ip, ErrStepLimit)
			return
		}
		v.IP++
		v.Steps++

		switch ops[ip] {

		case OpMoveRight:
			if err := tape.MoveRight(); err != nil {
				v.abort(yield, ip, err)
				return
			}

		case OpMoveLeft:
			if err := tape.MoveLeft(); err != nil {
				v.abort(yield, ip, err)
				return
			}

		case OpIncrement:
			tape.Increment()

		case OpDecrement:
			tape.Decrement()

		case OpOutput:
			if err := v.out.WriteByte(tape.Read()); err != nil {
				v.abort(yield, ip, err)
				return
			}

		case OpInput:
			if err := v.input(); err != nil {
				v.abort(yield, ip, err)
				return
			}

		case OpLoopOpen:
			if tape.Read() == 0 {
				v.IP = jumps[ip] + 1
			}

		case OpLoopClose:
			if tape.Read() != 0 {
				v.IP = jumps[ip]
				if !yield(InterruptYield, nil) {
					v.out.Flush()
					return
				}
			}

		}
	}

	if err := v.out.Flush(); err != nil {
		yield(nil, err)
	}
}

func (v *VM) input() error {
	// prompts written so far must be visible before blocking on input
	if err := v.out.Flush(); err != nil {
		return err
	}
	b, err := v.in.ReadByte()
	if errors.Is(err, io.EOF) {
		v.EOF.apply(v.Tape)
		return nil
	}
	if err != nil {
		return err
	}
	v.Tape.Write(b)
	return nil
}

func (v *VM) abort(yield func(*Interrupt, error) bool, ip int, err error) {
	err = WithPos(err, v.Program.Source, v.Program.posOf(ip))
	if flushErr := v.out.Flush(); flushErr != nil {
		err = errors.Join(err, flushErr)
	}
	yield(nil, err)
}
