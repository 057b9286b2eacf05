package console

import (
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/term"
)

// colorFlag is a process-wide styling switch with a lazily computed
// default. Setting it before the first read skips detection entirely.
type colorFlag struct {
	once sync.Once
	val  atomic.Bool
	file *os.File
}

func (f *colorFlag) get() bool {
	f.once.Do(func() {
		f.val.Store(isColorTerminal(f.file))
	})
	return f.val.Load()
}

func (f *colorFlag) set(v bool) {
	f.once.Do(func() {})
	f.val.Store(v)
}

var (
	stdoutColors = &colorFlag{file: os.Stdout}
	stderrColors = &colorFlag{file: os.Stderr}
)

// ColorsEnabled reports whether styles targeting stdout emit escape
// codes.
//
// The default honors the clicolors convention plus NO_COLOR:
//
//   - CLICOLOR_FORCE set and not "0": colors on, even when piped.
//   - NO_COLOR set, or CLICOLOR == "0": colors off.
//   - otherwise: on when stdout is a terminal and TERM is not "dumb".
func ColorsEnabled() bool {
	return stdoutColors.get()
}

// SetColorsEnabled overrides color detection for stdout.
func SetColorsEnabled(v bool) {
	stdoutColors.set(v)
}

// ColorsEnabledStderr reports whether styles targeting stderr emit escape
// codes. Detection works like ColorsEnabled but checks stderr.
func ColorsEnabledStderr() bool {
	return stderrColors.get()
}

// SetColorsEnabledStderr overrides color detection for stderr.
func SetColorsEnabledStderr(v bool) {
	stderrColors.set(v)
}

func isColorTerminal(f *os.File) bool {
	if force, ok := os.LookupEnv("CLICOLOR_FORCE"); ok && force != "0" {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	if !term.IsTerminal(int(f.Fd())) {
		return false
	}
	if runtime.GOOS == "windows" {
		// Anything still shipping as a console on Windows 10+ accepts VT
		// output once a terminal is attached.
		return true
	}
	t, ok := os.LookupEnv("TERM")
	return ok && t != "dumb"
}
