//go:build windows

package console

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// rawKeySource reads single bytes from the console. Windows has no
// non-blocking single-byte console read, so probes use a short grace
// period; a byte arriving after the deadline is kept for the next read
// instead of being dropped.
type rawKeySource struct {
	f       *os.File
	pending chan byte
}

func newRawKeySource(f *os.File) *rawKeySource {
	return &rawKeySource{f: f, pending: make(chan byte, 1)}
}

func (s *rawKeySource) readByte() (byte, error) {
	select {
	case b := <-s.pending:
		return b, nil
	default:
	}
	var buf [1]byte
	n, err := s.f.Read(buf[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return buf[0], nil
}

func (s *rawKeySource) probeByte() (byte, bool, error) {
	select {
	case b := <-s.pending:
		return b, true, nil
	default:
	}
	type result struct {
		b   byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		b, err := s.readByte()
		if err == nil {
			// Park the byte if the probe already timed out.
			select {
			case ch <- result{b: b}:
			default:
				s.pending <- b
			}
			return
		}
		ch <- result{err: err}
	}()
	select {
	case r := <-ch:
		if r.err != nil {
			return 0, false, r.err
		}
		return r.b, true, nil
	case <-time.After(10 * time.Millisecond):
		return 0, false, nil
	}
}

// readSingleKey switches the console to raw mode for the duration of one
// key read. Modern Windows terminals deliver VT escape sequences, so the
// shared decoder applies unchanged.
func readSingleKey() (Key, error) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return Key{}, err
	}
	defer term.Restore(fd, old)
	return decodeKey(newRawKeySource(os.Stdin))
}

// readSecure reads a line of input with echo disabled.
func readSecure() (string, error) {
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// wantsEmoji reports whether the console is expected to render emoji;
// true for Windows Terminal and ConEmu, which ship emoji-capable fonts.
func wantsEmoji() bool {
	return os.Getenv("WT_SESSION") != "" || os.Getenv("ConEmuANSI") == "ON"
}
