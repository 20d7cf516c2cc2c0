package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
)

const (
	prompt             = "bf> "
	continuationPrompt = "... "
)

func runREPL(
	ctx context.Context,
	logger logs.Logger,
	newInteractive bfvm.NewInteractive,
) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".taibf_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	return repl(ctx, logger, rl, newInteractive)
}

// lineReader is the part of *readline.Instance the loop uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Stdout() io.Writer
	Stderr() io.Writer
}

func repl(
	ctx context.Context,
	logger logs.Logger,
	rl lineReader,
	newInteractive bfvm.NewInteractive,
) error {
	session := newInteractive("<repl>", &lineInput{rl: rl}, rl.Stdout())
	logger.InfoContext(ctx, "repl started")

	for {
		if session.Pending() {
			rl.SetPrompt(continuationPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if strings.EqualFold(strings.TrimSpace(line), "quit") {
			break
		}
		for _, err := range session.Feed([]byte(line + "\n")) {
			if err != nil {
				fmt.Fprint(rl.Stderr(), errorText(err))
			}
		}
		if strings.Contains(line, ".") && !session.Pending() {
			fmt.Fprintln(rl.Stdout())
		}
	}

	logger.InfoContext(ctx, "repl exited", "steps", session.Steps)
	return session.Close()
}

// lineInput feeds ',' from lines typed at the terminal, newline included.
type lineInput struct {
	rl      lineReader
	pending []byte
}

func (l *lineInput) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		l.rl.SetPrompt("")
		line, err := l.rl.Readline()
		if err != nil {
			return 0, io.EOF
		}
		l.pending = []byte(line + "\n")
	}
	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}
