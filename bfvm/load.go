package bfvm

import (
	"errors"
	"fmt"
	"io"
)

// Load parses src into a Program. Bytes that are not one of the eight
// commands are comments and are dropped.
func Load(name string, src []byte) (*Program, error) {
	program := &Program{
		Name: name,
	}

	line, column := 1, 1
	for _, b := range src {
		if op, ok := OpOf(b); ok {
			program.Ops = append(program.Ops, op)
			program.Pos = append(program.Pos, Pos{
				Line:   line,
				Column: column,
			})
		}
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	program.Source = newSource(name, src)

	jumps, err := Match(program.Ops)
	if err != nil {
		var bracketErr *BracketError
		if errors.As(err, &bracketErr) {
			return nil, WithPos(err, program.Source, program.posOf(bracketErr.Index))
		}
		return nil, err
	}
	program.Jumps = jumps

	return program, nil
}

func LoadReader(name string, r io.Reader) (*Program, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return Load(name, src)
}
