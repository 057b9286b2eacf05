package console

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// defaultWidth is the column fallback when the size cannot be queried.
const defaultWidth = 80

// TermTarget selects the stream a terminal handle writes to.
type TermTarget int

const (
	TargetStdout TermTarget = iota
	TargetStderr
)

// errNotATerminal is returned by interactive reads when no terminal is
// attached.
var errNotATerminal = errors.New("not a terminal")

// Term abstracts a terminal stream. It writes to stdout or stderr, either
// directly or through an internal buffer that is emitted on Flush.
// Buffered handles are safe for concurrent writes.
type Term struct {
	target TermTarget
	out    io.Writer

	mu  sync.Mutex
	buf *bytes.Buffer // nil when unbuffered
}

// Stdout returns an unbuffered terminal handle for stdout.
func Stdout() *Term {
	return &Term{target: TargetStdout, out: os.Stdout}
}

// Stderr returns an unbuffered terminal handle for stderr.
func Stderr() *Term {
	return &Term{target: TargetStderr, out: os.Stderr}
}

// BufferedStdout returns a buffered terminal handle for stdout.
func BufferedStdout() *Term {
	return &Term{target: TargetStdout, out: os.Stdout, buf: &bytes.Buffer{}}
}

// BufferedStderr returns a buffered terminal handle for stderr.
func BufferedStderr() *Term {
	return &Term{target: TargetStderr, out: os.Stderr, buf: &bytes.Buffer{}}
}

// Target returns the stream this terminal writes to.
func (t *Term) Target() TermTarget {
	return t.target
}

// WriteString writes s to the terminal. Buffered handles hold the bytes
// until Flush.
func (t *Term) WriteString(s string) error {
	if t.buf != nil {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.buf.WriteString(s)
		return nil
	}
	return t.writeThrough([]byte(s))
}

// WriteLine writes s followed by a newline.
func (t *Term) WriteLine(s string) error {
	if t.buf != nil {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.buf.WriteString(s)
		t.buf.WriteByte('\n')
		return nil
	}
	return t.writeThrough(append([]byte(s), '\n'))
}

// Flush writes any buffered content through to the stream. Unbuffered
// handles flush on every write, making this a no-op.
func (t *Term) Flush() error {
	if t.buf == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.buf.Len() == 0 {
		return nil
	}
	err := t.writeThrough(t.buf.Bytes())
	t.buf.Reset()
	return err
}

func (t *Term) writeThrough(b []byte) error {
	_, err := t.out.Write(b)
	return err
}

// fd returns the file descriptor behind the stream, or -1 when the
// handle does not wrap a file.
func (t *Term) fd() int {
	if f, ok := t.out.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}

// IsTerm reports whether the handle is attached to a real terminal
// rather than a file or pipe.
func (t *Term) IsTerm() bool {
	fd := t.fd()
	return fd >= 0 && term.IsTerminal(fd)
}

// WantEmoji reports whether this terminal is expected to render emoji.
func (t *Term) WantEmoji() bool {
	return t.IsTerm() && wantsEmoji()
}

// UserAttended reports whether stdout is connected to a terminal instead
// of a file or pipe.
func UserAttended() bool {
	return Stdout().IsTerm()
}

// Size returns the terminal dimensions, falling back to 24x80 when they
// cannot be determined.
func (t *Term) Size() (rows, cols int) {
	if r, c, ok := t.SizeChecked(); ok {
		return r, c
	}
	return 24, defaultWidth
}

// SizeChecked returns the terminal dimensions, with ok false when the
// handle is not a terminal or the query fails.
func (t *Term) SizeChecked() (rows, cols int, ok bool) {
	fd := t.fd()
	if fd < 0 || !term.IsTerminal(fd) {
		return 0, 0, false
	}
	c, r, err := term.GetSize(fd)
	if err != nil || r <= 0 || c <= 0 {
		return 0, 0, false
	}
	return r, c, true
}

// ReadLine reads one line of input without the trailing newline. When no
// terminal is attached it returns an empty string.
func (t *Term) ReadLine() (string, error) {
	if !t.IsTerm() {
		return "", nil
	}
	rd := bufio.NewReader(os.Stdin)
	line, err := rd.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadSecureLine reads one line of input without echoing it, for
// passwords and similar secrets. When no terminal is attached it returns
// an empty string.
func (t *Term) ReadSecureLine() (string, error) {
	if !t.IsTerm() {
		return "", nil
	}
	rv, err := readSecure()
	if err != nil {
		return "", err
	}
	if err := t.WriteLine(""); err != nil {
		return "", err
	}
	return rv, nil
}

// ReadKey reads a single key without echoing it. The terminal is switched
// to raw mode for the duration of the read. Ctrl-C is reported as
// KeyCtrlC rather than interrupting the process.
func (t *Term) ReadKey() (Key, error) {
	if !t.IsTerm() {
		return Key{Code: KeyUnknown}, errNotATerminal
	}
	return readSingleKey()
}

// ReadChar blocks until a printable character or Enter is typed and
// returns it. Other keys are ignored.
func (t *Term) ReadChar() (rune, error) {
	for {
		k, err := t.ReadKey()
		if err != nil {
			return 0, err
		}
		switch k.Code {
		case KeyChar:
			return k.Char, nil
		case KeyEnter:
			return '\n', nil
		}
	}
}

// Write implements io.Writer, bypassing the internal buffer.
func (t *Term) Write(b []byte) (int, error) {
	if err := t.writeThrough(b); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Read implements io.Reader from stdin.
func (t *Term) Read(b []byte) (int, error) {
	return os.Stdin.Read(b)
}
