package bfvm

import (
	"bufio"
	"io"
	"iter"
)

// Session runs source fed in chunks against one tape. Loops left open by a
// chunk are held back until a later chunk closes them.
type Session struct {
	Name    string
	Tape    *Tape
	Steps   int
	options Options
	pending []byte
	in      io.ByteReader
	out     *bufio.Writer
}

func NewSession(name string, options Options) *Session {
	return &Session{
		Name:    name,
		Tape:    NewTape(options.TapeSize, options.TapeLimit),
		options: options,
		in:      byteReader(options.Stdin),
		out:     bufio.NewWriter(writerOrStdout(options.Stdout)),
	}
}

// Pending reports whether a loop is still waiting for its closing bracket.
func (s *Session) Pending() bool {
	return len(s.pending) > 0
}

// Feed appends src to the held back source and executes everything up to the
// last point where all loops are closed.
func (s *Session) Feed(src []byte) iter.Seq2[*Interrupt, error] {
	return func(yield func(*Interrupt, error) bool) {
		code := append(s.pending, src...)
		s.pending = nil

		depth := 0
		cut := 0
		for i, b := range code {
			switch b {
			case '[':
				if depth == 0 {
					cut = i
				}
				depth++
			case ']':
				if depth == 0 {
					// report the close at its position
					_, err := Load(s.Name, code)
					yield(nil, err)
					return
				}
				depth--
			}
		}
		if depth == 0 {
			cut = len(code)
		}
		if cut < len(code) {
			s.pending = append([]byte(nil), code[cut:]...)
		}

		program, err := Load(s.Name, code[:cut])
		if err != nil {
			yield(nil, err)
			return
		}
		if program.Len() == 0 {
			return
		}
		vm := newVM(program, s.Tape, s.in, s.out, s.options)
		defer func() {
			s.Steps += vm.Steps
		}()
		vm.Run(yield)
	}
}

// Close discards held back source, reporting it if a loop was left open.
func (s *Session) Close() error {
	if len(s.pending) == 0 {
		return nil
	}
	code := s.pending
	s.pending = nil
	_, err := Load(s.Name, code)
	return err
}
