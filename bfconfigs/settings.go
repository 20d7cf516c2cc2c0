package bfconfigs

import (
	"fmt"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

type EOFMode string

var eofFlag string

func init() {
	cmds.Define("-eof", cmds.Func(func(mode string) error {
		switch mode {
		case "zero", "unchanged", "max":
			eofFlag = mode
			return nil
		}
		return fmt.Errorf("eof policy must be zero, unchanged or max, got %q", mode)
	}).Desc("value stored by ',' at end of input: zero, unchanged or max"))
}

func (Module) EOFMode(
	loader configs.Loader,
) EOFMode {
	return EOFMode(vars.FirstNonZero(
		eofFlag,
		configs.First[string](loader, "eof"),
		"zero",
	))
}

type TapeSize int

var tapeSizeFlag = cmds.Var[int]("-tape-size", "number of cells allocated up front")

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape_size"),
	))
}

type TapeLimit int

// a flag given as 0 still overrides the config file
var tapeLimitFlag = cmds.Var[*int]("-tape-limit", "maximum number of cells, 0 for unbounded")

func (Module) TapeLimit(
	loader configs.Loader,
) TapeLimit {
	if *tapeLimitFlag != nil {
		return TapeLimit(**tapeLimitFlag)
	}
	return TapeLimit(configs.First[int](loader, "tape_limit"))
}

type MaxSteps int

var maxStepsFlag = cmds.Var[*int]("-max-steps", "abort after this many instructions, 0 for unlimited")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	if *maxStepsFlag != nil {
		return MaxSteps(**maxStepsFlag)
	}
	return MaxSteps(configs.First[int](loader, "max_steps"))
}
