package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
)

var (
	sourceFile = cmds.Var[string]("-file", "run the program in this file")
	sourceText = cmds.Var[string]("-e", "run this program text")
	replMode   = cmds.Switch("-repl", "start an interactive session")
	dumpFile   = cmds.Var[string]("-dump", "write the final machine state to this file")
	positional = cmds.Rest()
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cmds.PrintUsage()
		os.Exit(2)
	}

	src, err := pickSource(*sourceFile, *sourceText, *positional, *replMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cmds.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(bfvm.Module),
		modes.ForProduction(),
	)
	os.Exit(execute(scope, src, *dumpFile, os.Stderr))
}

func execute(scope dscope.Scope, src source, dumpPath string, stderr io.Writer) (exitCode int) {

	// settings decode config values, so bad files must be reported first
	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Err(); err != nil {
			fmt.Fprintf(stderr, "config: %v\n", err)
			exitCode = 1
		}
	})
	if exitCode != 0 {
		return
	}

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newMachine bfvm.NewMachine,
		newInteractive bfvm.NewInteractive,
	) {
		ctx, span := newSpan(context.Background(), "")

		var err error
		if src.repl {
			err = runREPL(ctx, logger, newInteractive)
		} else {
			err = runProgram(ctx, logger, newMachine, src, dumpPath)
		}
		if err != nil {
			logger.InfoContext(ctx, "run failed", "error", err)
			fmt.Fprint(stderr, errorText(err))
			fmt.Fprintf(stderr, "span: %s\n", span)
			exitCode = 1
		}
	})

	return
}

type source struct {
	name string
	path string
	text []byte
	repl bool
}

var errNoSource = errors.New("expecting a program file, -e <program> or -repl")

func pickSource(file string, text string, rest []string, repl bool) (ret source, err error) {
	n := 0
	if file != "" {
		n++
	}
	if text != "" {
		n++
	}
	n += len(rest)
	if repl {
		n++
	}
	if n == 0 {
		return ret, errNoSource
	}
	if n > 1 {
		return ret, fmt.Errorf("more than one program given")
	}

	switch {
	case repl:
		ret.repl = true
		ret.name = "<repl>"
	case text != "":
		ret.name = "<text>"
		ret.text = []byte(text)
	case file != "":
		ret.name = file
		ret.path = file
	default:
		ret.name = rest[0]
		ret.path = rest[0]
	}
	return ret, nil
}

func errorText(err error) string {
	str := err.Error()
	if len(str) == 0 || str[len(str)-1] != '\n' {
		str += "\n"
	}
	return str
}
