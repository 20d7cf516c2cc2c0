package bfvm

import (
	"bufio"
	"io"
	"os"
)

type Options struct {
	Stdin     io.Reader // if nil, default to os.Stdin
	Stdout    io.Writer // if nil, default to os.Stdout
	EOF       EOFPolicy
	TapeSize  int // initial cells, DefaultTapeSize if not positive
	TapeLimit int // max cells, unbounded if not positive
	MaxSteps  int // unlimited if not positive
}

type VM struct {
	Program  *Program
	Tape     *Tape
	IP       int
	Steps    int
	EOF      EOFPolicy
	MaxSteps int

	in  io.ByteReader
	out *bufio.Writer
}

func NewVM(program *Program, options Options) *VM {
	return newVM(
		program,
		NewTape(options.TapeSize, options.TapeLimit),
		byteReader(options.Stdin),
		bufio.NewWriter(writerOrStdout(options.Stdout)),
		options,
	)
}

func newVM(program *Program, tape *Tape, in io.ByteReader, out *bufio.Writer, options Options) *VM {
	return &VM{
		Program:  program,
		Tape:     tape,
		EOF:      options.EOF,
		MaxSteps: options.MaxSteps,
		in:       in,
		out:      out,
	}
}

func byteReader(r io.Reader) io.ByteReader {
	if r == nil {
		r = os.Stdin
	}
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func (v *VM) Halted() bool {
	return v.IP >= len(v.Program.Ops)
}

// Reset rewinds the instruction pointer and clears the tape.
func (v *VM) Reset() {
	v.IP = 0
	v.Steps = 0
	v.Tape.Reset()
}
