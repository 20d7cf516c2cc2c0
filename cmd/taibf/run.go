package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
)

func loadSource(src source) (*bfvm.Program, error) {
	if src.path == "" {
		return bfvm.Load(src.name, src.text)
	}
	content, err := os.ReadFile(src.path)
	if err != nil {
		return nil, err
	}
	return bfvm.Load(src.name, content)
}

func runProgram(
	ctx context.Context,
	logger logs.Logger,
	newMachine bfvm.NewMachine,
	src source,
	dumpPath string,
) (err error) {
	program, err := loadSource(src)
	if err != nil {
		return err
	}

	vm := newMachine(program)
	logger.InfoContext(ctx, "run",
		"program", program.Name,
		"instructions", program.Len(),
	)

	if dumpPath != "" {
		defer func() {
			if dumpErr := dump(vm, dumpPath); dumpErr != nil && err == nil {
				err = dumpErr
			}
		}()
	}

	for _, err := range vm.Run {
		if err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "halted",
		"steps", vm.Steps,
		"cells", len(vm.Tape.Cells),
	)
	return nil
}

func dump(vm *bfvm.VM, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	if err := vm.Snapshot(f); err != nil {
		f.Close()
		return fmt.Errorf("dump: %w", err)
	}
	return f.Close()
}
