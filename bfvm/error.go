package bfvm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnmatchedBracket = errors.New("unmatched bracket")
	ErrOutOfBounds      = errors.New("data pointer out of bounds")
	ErrStepLimit        = errors.New("step limit exceeded")
)

// BracketError reports the instruction index of a loop bracket without a counterpart.
type BracketError struct {
	Index int
	Op    Op
}

func (b *BracketError) Error() string {
	if b.Op == OpLoopOpen {
		return fmt.Sprintf("%s: '[' at instruction %d is never closed", ErrUnmatchedBracket, b.Index)
	}
	return fmt.Sprintf("%s: ']' at instruction %d has no opening '['", ErrUnmatchedBracket, b.Index)
}

func (b *BracketError) Unwrap() error {
	return ErrUnmatchedBracket
}

type Pos struct {
	Line   int
	Column int
}

type Source struct {
	Name  string
	Lines []string
}

func newSource(name string, src []byte) *Source {
	return &Source{
		Name:  name,
		Lines: strings.Split(string(src), "\n"),
	}
}

type PosError struct {
	Err    error
	Pos    Pos
	Source *Source
}

func (p *PosError) Error() string {
	if p.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", p.Err.Error(), p.Source.Name, p.Pos.Line, p.Pos.Column)

	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(p.Source.Lines) {
		line := strings.TrimSuffix(p.Source.Lines[idx], "\r")
		sb.WriteString(line)
		sb.WriteString("\n")

		col := p.Pos.Column - 1
		for i, r := range line {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runeWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p *PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, source *Source, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr *PosError
	if errors.As(err, &posErr) {
		return err
	}
	return &PosError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}

func runeWidth(r rune) int {
	if r < 0x20 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
