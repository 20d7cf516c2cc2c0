package bfvm

import (
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

func (Module) Options(
	eofMode bfconfigs.EOFMode,
	tapeSize bfconfigs.TapeSize,
	tapeLimit bfconfigs.TapeLimit,
	maxSteps bfconfigs.MaxSteps,
	logger logs.Logger,
) Options {
	policy, err := ParseEOFPolicy(string(eofMode))
	if err != nil {
		logger.Warn("bad eof policy, using zero", "error", err)
		policy = EOFZero
	}
	return Options{
		EOF:       policy,
		TapeSize:  int(tapeSize),
		TapeLimit: int(tapeLimit),
		MaxSteps:  int(maxSteps),
	}
}

type NewMachine func(program *Program) *VM

func (Module) NewMachine(
	options Options,
	logger logs.Logger,
) NewMachine {
	return func(program *Program) *VM {
		logger.Debug("new vm",
			"program", program.Name,
			"instructions", program.Len(),
			"eof", options.EOF,
			"tape_size", options.TapeSize,
			"tape_limit", options.TapeLimit,
			"max_steps", options.MaxSteps,
		)
		return NewVM(program, options)
	}
}

// NewInteractive creates a session; nil stdin or stdout use the configured or process streams.
type NewInteractive func(name string, stdin io.Reader, stdout io.Writer) *Session

func (Module) NewInteractive(
	options Options,
	logger logs.Logger,
) NewInteractive {
	return func(name string, stdin io.Reader, stdout io.Writer) *Session {
		opts := options
		if stdin != nil {
			opts.Stdin = stdin
		}
		if stdout != nil {
			opts.Stdout = stdout
		}
		logger.Debug("new session",
			"name", name,
			"eof", opts.EOF,
		)
		return NewSession(name, opts)
	}
}
