package bfvm

import (
	"encoding/gob"
	"io"
)

type snapshot struct {
	Program *Program
	Tape    *Tape
	IP      int
	Steps   int
}

func (v *VM) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(snapshot{
		Program: v.Program,
		Tape:    v.Tape,
		IP:      v.IP,
		Steps:   v.Steps,
	}); err != nil {
		return err
	}
	return nil
}

// Restore replaces the execution state with a snapshot. I/O endpoints and
// options are kept.
func (v *VM) Restore(r io.Reader) error {
	var state snapshot
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&state); err != nil {
		return err
	}
	v.Program = state.Program
	v.Tape = state.Tape
	v.IP = state.IP
	v.Steps = state.Steps
	return nil
}
