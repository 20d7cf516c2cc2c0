package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
)

func TestPickSource(t *testing.T) {
	src, err := pickSource("", "+.", nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if string(src.text) != "+." || src.path != "" || src.name != "<text>" {
		t.Fatalf("got %+v", src)
	}

	src, err = pickSource("", "", []string{"hello.b"}, false)
	if err != nil {
		t.Fatal(err)
	}
	if src.path != "hello.b" || src.name != "hello.b" {
		t.Fatalf("got %+v", src)
	}

	src, err = pickSource("a.b", "", nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if src.path != "a.b" {
		t.Fatalf("got %+v", src)
	}

	src, err = pickSource("", "", nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if !src.repl {
		t.Fatal()
	}

	if _, err := pickSource("", "", nil, false); !errors.Is(err, errNoSource) {
		t.Fatalf("got %v", err)
	}
	if _, err := pickSource("a.b", "+", nil, false); err == nil {
		t.Fatal("should fail")
	}
	if _, err := pickSource("", "", []string{"a", "b"}, false); err == nil {
		t.Fatal("should fail")
	}
	if _, err := pickSource("", "+", nil, true); err == nil {
		t.Fatal("should fail")
	}
}

func testScope(t *testing.T, stdout *bytes.Buffer) dscope.Scope {
	return dscope.New(
		new(bfvm.Module),
		modes.ForTest(t),
	).Fork(
		func() bfvm.Options {
			return bfvm.Options{
				Stdin:  strings.NewReader(""),
				Stdout: stdout,
			}
		},
	)
}

func TestRunProgramFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "three.b")
	if err := os.WriteFile(path, []byte("three: +++ print: ."), 0644); err != nil {
		t.Fatal(err)
	}
	dumpPath := filepath.Join(dir, "dump")

	out := new(bytes.Buffer)
	testScope(t, out).Call(func(
		logger logs.Logger,
		newMachine bfvm.NewMachine,
	) {
		src, err := pickSource(path, "", nil, false)
		if err != nil {
			t.Fatal(err)
		}
		if err := runProgram(context.Background(), logger, newMachine, src, dumpPath); err != nil {
			t.Fatal(err)
		}
	})
	if !bytes.Equal(out.Bytes(), []byte{3}) {
		t.Fatalf("got %v", out.Bytes())
	}

	f, err := os.Open(dumpPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	empty, err := bfvm.Load("empty", nil)
	if err != nil {
		t.Fatal(err)
	}
	vm := bfvm.NewVM(empty, bfvm.Options{})
	if err := vm.Restore(f); err != nil {
		t.Fatal(err)
	}
	if !vm.Halted() || vm.Steps != 4 || vm.Tape.Read() != 3 {
		t.Fatalf("got %v %v", vm.Steps, vm.Tape.Read())
	}
}

func TestRunProgramErrors(t *testing.T) {
	out := new(bytes.Buffer)
	testScope(t, out).Call(func(
		logger logs.Logger,
		newMachine bfvm.NewMachine,
	) {
		ctx := context.Background()

		err := runProgram(ctx, logger, newMachine, source{
			name: "open",
			text: []byte("+[."),
		}, "")
		if !errors.Is(err, bfvm.ErrUnmatchedBracket) {
			t.Fatalf("got %v", err)
		}
		if out.Len() != 0 {
			t.Fatal("nothing should run")
		}

		err = runProgram(ctx, logger, newMachine, source{
			name: "left",
			text: []byte("+.<"),
		}, "")
		if !errors.Is(err, bfvm.ErrOutOfBounds) {
			t.Fatalf("got %v", err)
		}
		if !bytes.Equal(out.Bytes(), []byte{1}) {
			t.Fatalf("got %v", out.Bytes())
		}

		err = runProgram(ctx, logger, newMachine, source{
			name: "missing",
			path: filepath.Join(t.TempDir(), "missing.b"),
		}, "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestExecute(t *testing.T) {
	out := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	scope := testScope(t, out)

	if code := execute(scope, source{
		name: "ok",
		text: []byte("++."),
	}, "", stderr); code != 0 {
		t.Fatalf("got %v: %s", code, stderr)
	}
	if !bytes.Equal(out.Bytes(), []byte{2}) {
		t.Fatalf("got %v", out.Bytes())
	}

	if code := execute(scope, source{
		name: "left",
		text: []byte("<"),
	}, "", stderr); code != 1 {
		t.Fatalf("got %v", code)
	}
	msg := stderr.String()
	if !strings.Contains(msg, "data pointer out of bounds at left:1:1") {
		t.Fatalf("got %s", msg)
	}
	if !strings.Contains(msg, "span: ") {
		t.Fatalf("got %s", msg)
	}
}

func TestExecuteBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taibf.cue")
	if err := os.WriteFile(path, []byte("tape_size: ["), 0644); err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)
	scope := testScope(t, out).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{path}, "")
		},
	)

	stderr := new(bytes.Buffer)
	code := execute(scope, source{
		name: "text",
		text: []byte("+."),
	}, "", stderr)
	if code != 1 {
		t.Fatalf("got %v", code)
	}
	if !strings.HasPrefix(stderr.String(), "config: ") {
		t.Fatalf("got %s", stderr)
	}
	if out.Len() != 0 {
		t.Fatal("program should not run")
	}
}

func TestErrorText(t *testing.T) {
	if got := errorText(errors.New("foo")); got != "foo\n" {
		t.Fatalf("got %q", got)
	}
	if got := errorText(errors.New("foo\n")); got != "foo\n" {
		t.Fatalf("got %q", got)
	}
}
