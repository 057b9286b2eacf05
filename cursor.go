package console

import (
	"fmt"
	"strconv"
)

// MoveCursorUp moves the cursor up n lines. n <= 0 writes nothing.
func (t *Term) MoveCursorUp(n int) error {
	if n <= 0 {
		return nil
	}
	return t.WriteString("\x1b[" + strconv.Itoa(n) + "A")
}

// MoveCursorDown moves the cursor down n lines. n <= 0 writes nothing.
func (t *Term) MoveCursorDown(n int) error {
	if n <= 0 {
		return nil
	}
	return t.WriteString("\x1b[" + strconv.Itoa(n) + "B")
}

// MoveCursorRight moves the cursor right n columns. n <= 0 writes
// nothing.
func (t *Term) MoveCursorRight(n int) error {
	if n <= 0 {
		return nil
	}
	return t.WriteString("\x1b[" + strconv.Itoa(n) + "C")
}

// MoveCursorLeft moves the cursor left n columns. n <= 0 writes nothing.
func (t *Term) MoveCursorLeft(n int) error {
	if n <= 0 {
		return nil
	}
	return t.WriteString("\x1b[" + strconv.Itoa(n) + "D")
}

// MoveCursorTo moves the cursor to the zero-based column x and row y.
func (t *Term) MoveCursorTo(x, y int) error {
	return t.WriteString(fmt.Sprintf("\x1b[%d;%dH", y+1, x+1))
}

// ClearLine erases the current line and returns the cursor to its start.
func (t *Term) ClearLine() error {
	return t.WriteString("\r\x1b[2K")
}

// ClearScreen erases the whole screen and homes the cursor.
func (t *Term) ClearScreen() error {
	return t.WriteString("\r\x1b[2J\r\x1b[H")
}

// ClearToEndOfScreen erases from the cursor to the end of the screen.
func (t *Term) ClearToEndOfScreen() error {
	return t.WriteString("\x1b[0J")
}

// ClearLastLines erases the last n lines and positions the cursor at the
// beginning of the first cleared line.
func (t *Term) ClearLastLines(n int) error {
	if err := t.MoveCursorUp(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := t.ClearLine(); err != nil {
			return err
		}
		if err := t.MoveCursorDown(1); err != nil {
			return err
		}
	}
	return t.MoveCursorUp(n)
}

// ShowCursor makes the cursor visible.
func (t *Term) ShowCursor() error {
	return t.WriteString("\x1b[?25h")
}

// HideCursor makes the cursor invisible.
func (t *Term) HideCursor() error {
	return t.WriteString("\x1b[?25l")
}

// EnterAlternateScreen switches to the alternate screen buffer.
func (t *Term) EnterAlternateScreen() error {
	return t.WriteString("\x1b[?1049h")
}

// ExitAlternateScreen switches back to the primary screen buffer.
func (t *Term) ExitAlternateScreen() error {
	return t.WriteString("\x1b[?1049l")
}

// SetTitle sets the terminal window title.
func (t *Term) SetTitle(title string) error {
	return t.WriteString("\x1b]0;" + title + "\x07")
}
