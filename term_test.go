package console

import (
	"bytes"
	"errors"
	"testing"
)

// sinkTerm returns a terminal handle writing into an in-memory buffer
// instead of a process stream.
func sinkTerm(buffered bool) (*Term, *bytes.Buffer) {
	var sink bytes.Buffer
	t := &Term{target: TargetStdout, out: &sink}
	if buffered {
		t.buf = &bytes.Buffer{}
	}
	return t, &sink
}

func TestTermWrite(t *testing.T) {
	term, sink := sinkTerm(false)

	if err := term.WriteString("hello"); err != nil {
		t.Fatal(err)
	}
	if err := term.WriteLine(" world"); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "hello world\n" {
		t.Errorf("wrote %q, want %q", got, "hello world\n")
	}
}

func TestTermBuffered(t *testing.T) {
	term, sink := sinkTerm(true)

	if err := term.WriteLine("queued"); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "" {
		t.Errorf("buffered handle wrote %q before Flush", got)
	}
	if err := term.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "queued\n" {
		t.Errorf("after Flush wrote %q, want %q", got, "queued\n")
	}
	// A second flush has nothing left to write.
	if err := term.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "queued\n" {
		t.Errorf("second Flush wrote %q, want %q", got, "queued\n")
	}
}

func TestTermWriterBypassesBuffer(t *testing.T) {
	term, sink := sinkTerm(true)

	n, err := term.Write([]byte("raw"))
	if err != nil || n != 3 {
		t.Fatalf("Write = (%d, %v), want (3, nil)", n, err)
	}
	if got := sink.String(); got != "raw" {
		t.Errorf("wrote %q, want %q", got, "raw")
	}
}

func TestTermTarget(t *testing.T) {
	if got := Stdout().Target(); got != TargetStdout {
		t.Errorf("Stdout().Target() = %v, want %v", got, TargetStdout)
	}
	if got := Stderr().Target(); got != TargetStderr {
		t.Errorf("Stderr().Target() = %v, want %v", got, TargetStderr)
	}
}

func TestCursorSequences(t *testing.T) {
	tests := []struct {
		name     string
		op       func(*Term) error
		expected string
	}{
		{"up", func(tm *Term) error { return tm.MoveCursorUp(3) }, "\x1b[3A"},
		{"up zero", func(tm *Term) error { return tm.MoveCursorUp(0) }, ""},
		{"up negative", func(tm *Term) error { return tm.MoveCursorUp(-1) }, ""},
		{"down", func(tm *Term) error { return tm.MoveCursorDown(2) }, "\x1b[2B"},
		{"right", func(tm *Term) error { return tm.MoveCursorRight(4) }, "\x1b[4C"},
		{"left", func(tm *Term) error { return tm.MoveCursorLeft(1) }, "\x1b[1D"},
		{"to", func(tm *Term) error { return tm.MoveCursorTo(2, 5) }, "\x1b[6;3H"},
		{"to origin", func(tm *Term) error { return tm.MoveCursorTo(0, 0) }, "\x1b[1;1H"},
		{"clear line", (*Term).ClearLine, "\r\x1b[2K"},
		{"clear screen", (*Term).ClearScreen, "\r\x1b[2J\r\x1b[H"},
		{"clear to end", (*Term).ClearToEndOfScreen, "\x1b[0J"},
		{
			"clear last lines",
			func(tm *Term) error { return tm.ClearLastLines(2) },
			"\x1b[2A" + "\r\x1b[2K" + "\x1b[1B" + "\r\x1b[2K" + "\x1b[1B" + "\x1b[2A",
		},
		{"show cursor", (*Term).ShowCursor, "\x1b[?25h"},
		{"hide cursor", (*Term).HideCursor, "\x1b[?25l"},
		{"enter alternate screen", (*Term).EnterAlternateScreen, "\x1b[?1049h"},
		{"exit alternate screen", (*Term).ExitAlternateScreen, "\x1b[?1049l"},
		{"set title", func(tm *Term) error { return tm.SetTitle("hi") }, "\x1b]0;hi\x07"},
	}
	for _, tt := range tests {
		term, sink := sinkTerm(false)
		if err := tt.op(term); err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got := sink.String(); got != tt.expected {
			t.Errorf("%s: wrote %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestTermNotATerminal(t *testing.T) {
	term, _ := sinkTerm(false)

	if term.IsTerm() {
		t.Error("IsTerm() = true for an in-memory sink")
	}
	if _, _, ok := term.SizeChecked(); ok {
		t.Error("SizeChecked() ok = true for an in-memory sink")
	}
	rows, cols := term.Size()
	if rows != 24 || cols != 80 {
		t.Errorf("Size() = (%d, %d), want fallback (24, 80)", rows, cols)
	}
	if _, err := term.ReadKey(); !errors.Is(err, errNotATerminal) {
		t.Errorf("ReadKey() error = %v, want errNotATerminal", err)
	}
	line, err := term.ReadLine()
	if err != nil || line != "" {
		t.Errorf("ReadLine() = (%q, %v), want (%q, nil)", line, err, "")
	}
}
