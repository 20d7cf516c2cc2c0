package bfvm

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func feed(t *testing.T, session *Session, src string) error {
	t.Helper()
	var ret error
	for _, err := range session.Feed([]byte(src)) {
		if err != nil {
			ret = err
		}
	}
	return ret
}

func TestSessionSharedTape(t *testing.T) {
	out := new(bytes.Buffer)
	session := NewSession("session", Options{
		Stdout: out,
	})

	if err := feed(t, session, "++"); err != nil {
		t.Fatal(err)
	}
	if session.Tape.Read() != 2 {
		t.Fatalf("got %v", session.Tape.Read())
	}

	if err := feed(t, session, "[>+"); err != nil {
		t.Fatal(err)
	}
	if !session.Pending() {
		t.Fatal("should be pending")
	}
	if session.Tape.Ptr != 0 || session.Tape.Read() != 2 {
		t.Fatal("pending loop should not run")
	}

	if err := feed(t, session, "<-]>."); err != nil {
		t.Fatal(err)
	}
	if session.Pending() {
		t.Fatal("should not be pending")
	}
	if !bytes.Equal(out.Bytes(), []byte{2}) {
		t.Fatalf("got %v", out.Bytes())
	}
	if session.Steps != 16 {
		t.Fatalf("got %v", session.Steps)
	}
}

func TestSessionRunsClosedPrefix(t *testing.T) {
	out := new(bytes.Buffer)
	session := NewSession("session", Options{
		Stdout: out,
	})
	if err := feed(t, session, "+.[-"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), []byte{1}) {
		t.Fatalf("got %v", out.Bytes())
	}
	if !session.Pending() {
		t.Fatal()
	}
	if err := feed(t, session, "]."); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), []byte{1, 0}) {
		t.Fatalf("got %v", out.Bytes())
	}
}

func TestSessionUnmatchedClose(t *testing.T) {
	session := NewSession("session", Options{
		Stdout: new(bytes.Buffer),
	})
	if err := feed(t, session, "+++"); err != nil {
		t.Fatal(err)
	}
	err := feed(t, session, "+]")
	if !errors.Is(err, ErrUnmatchedBracket) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "session:1:2") {
		t.Fatalf("got %v", err)
	}
	// nothing from the bad chunk runs
	if session.Tape.Read() != 3 {
		t.Fatalf("got %v", session.Tape.Read())
	}
	if session.Pending() {
		t.Fatal()
	}
	if err := feed(t, session, "+"); err != nil {
		t.Fatal(err)
	}
	if session.Tape.Read() != 4 {
		t.Fatalf("got %v", session.Tape.Read())
	}
}

func TestSessionRuntimeError(t *testing.T) {
	session := NewSession("session", Options{
		Stdout: new(bytes.Buffer),
	})
	if err := feed(t, session, "+<"); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got %v", err)
	}
	// tape survives the failed chunk
	if session.Tape.Read() != 1 {
		t.Fatalf("got %v", session.Tape.Read())
	}
}

func TestSessionInput(t *testing.T) {
	out := new(bytes.Buffer)
	session := NewSession("session", Options{
		Stdin:  strings.NewReader("ab"),
		Stdout: out,
	})
	if err := feed(t, session, ",."); err != nil {
		t.Fatal(err)
	}
	if err := feed(t, session, ",."); err != nil {
		t.Fatal(err)
	}
	if out.String() != "ab" {
		t.Fatalf("got %q", out.String())
	}
}

func TestSessionClose(t *testing.T) {
	session := NewSession("session", Options{
		Stdout: new(bytes.Buffer),
	})
	if err := session.Close(); err != nil {
		t.Fatal(err)
	}
	if err := feed(t, session, "[+"); err != nil {
		t.Fatal(err)
	}
	err := session.Close()
	if !errors.Is(err, ErrUnmatchedBracket) {
		t.Fatalf("got %v", err)
	}
	if session.Pending() {
		t.Fatal()
	}
}
