//go:build !windows

package console

import (
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ttyInput returns a file suitable for reading keystrokes: stdin when it
// is a terminal, otherwise the controlling tty. opened reports whether
// the caller must close the file.
func ttyInput() (f *os.File, opened bool, err error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, false, nil
	}
	f, err = os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}

// rawKeySource reads single bytes from a tty, using non-blocking probes
// for escape-sequence continuation bytes.
type rawKeySource struct {
	fd int
}

func (s *rawKeySource) readByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := unix.Read(s.fd, buf[:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return buf[0], nil
	}
}

func (s *rawKeySource) probeByte() (byte, bool, error) {
	if err := unix.SetNonblock(s.fd, true); err != nil {
		return 0, false, err
	}
	defer unix.SetNonblock(s.fd, false)
	var buf [1]byte
	n, err := unix.Read(s.fd, buf[:])
	if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// readSingleKey switches the tty to raw mode for the duration of one key
// read.
func readSingleKey() (Key, error) {
	f, opened, err := ttyInput()
	if err != nil {
		return Key{}, err
	}
	if opened {
		defer f.Close()
	}
	fd := int(f.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return Key{}, err
	}
	defer term.Restore(fd, old)
	return decodeKey(&rawKeySource{fd: fd})
}

// readSecure reads a line of input with echo disabled.
func readSecure() (string, error) {
	f, opened, err := ttyInput()
	if err != nil {
		return "", err
	}
	if opened {
		defer f.Close()
	}
	pw, err := term.ReadPassword(int(f.Fd()))
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// wantsEmoji reports whether the terminal is expected to render emoji:
// always on macOS, elsewhere when the locale is UTF-8.
func wantsEmoji() bool {
	if runtime.GOOS == "darwin" {
		return true
	}
	return strings.HasSuffix(strings.ToUpper(os.Getenv("LANG")), "UTF-8")
}
