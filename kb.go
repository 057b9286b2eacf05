package console

import (
	"unicode/utf8"
)

// KeyCode identifies which key was read from the terminal.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	// KeyUnknownEscSeq is an escape followed by a sequence this package
	// does not recognize; Key.Seq holds the characters that were read.
	KeyUnknownEscSeq
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyHome
	KeyEnd
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyPageUp
	KeyPageDown
	// KeyChar is a printable character; Key.Char holds it.
	KeyChar
	KeyCtrlC
)

// Key is one decoded keyboard event.
type Key struct {
	Code KeyCode
	Char rune   // set for KeyChar
	Seq  []rune // set for KeyUnknownEscSeq
}

// keySource supplies raw bytes from a terminal in raw mode. readByte
// blocks for the next byte; probeByte returns ok=false when no byte is
// immediately available, which disambiguates a lone escape press from an
// escape sequence.
type keySource interface {
	readByte() (byte, error)
	probeByte() (byte, bool, error)
}

// decodeKey reads exactly one key from src. Ctrl-C decodes to KeyCtrlC;
// multi-byte UTF-8 input is assembled into a single KeyChar.
func decodeKey(src keySource) (Key, error) {
	b, err := src.readByte()
	if err != nil {
		return Key{}, err
	}
	switch {
	case b == 0x03:
		return Key{Code: KeyCtrlC}, nil
	case b == 0x1b:
		return decodeEscSeq(src)
	case b&0xe0 == 0xc0:
		return decodeUTF8(src, b, 2)
	case b&0xf0 == 0xe0:
		return decodeUTF8(src, b, 3)
	case b&0xf8 == 0xf0:
		return decodeUTF8(src, b, 4)
	}
	switch b {
	case '\n', '\r':
		return Key{Code: KeyEnter}, nil
	case 0x7f, 0x08:
		return Key{Code: KeyBackspace}, nil
	case '\t':
		return Key{Code: KeyTab}, nil
	case 0x01: // Control-A
		return Key{Code: KeyHome}, nil
	case 0x05: // Control-E
		return Key{Code: KeyEnd}, nil
	}
	return Key{Code: KeyChar, Char: rune(b)}, nil
}

// decodeUTF8 assembles a size-byte UTF-8 character whose first byte has
// already been read.
func decodeUTF8(src keySource, first byte, size int) (Key, error) {
	buf := make([]byte, 1, size)
	buf[0] = first
	for len(buf) < size {
		b, err := src.readByte()
		if err != nil {
			return Key{}, err
		}
		buf = append(buf, b)
	}
	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return Key{Code: KeyUnknown}, nil
	}
	return Key{Code: KeyChar, Char: r}, nil
}

// decodeEscSeq decodes the bytes following an escape. When nothing
// follows, the escape key itself was pressed.
func decodeEscSeq(src keySource) (Key, error) {
	c1, ok, err := src.probeByte()
	if err != nil {
		return Key{}, err
	}
	if !ok {
		return Key{Code: KeyEscape}, nil
	}
	if c1 != '[' {
		return Key{Code: KeyUnknownEscSeq, Seq: []rune{rune(c1)}}, nil
	}
	c2, ok, err := src.probeByte()
	if err != nil {
		return Key{}, err
	}
	if !ok {
		return Key{Code: KeyUnknownEscSeq, Seq: []rune{rune(c1)}}, nil
	}
	switch c2 {
	case 'A':
		return Key{Code: KeyArrowUp}, nil
	case 'B':
		return Key{Code: KeyArrowDown}, nil
	case 'C':
		return Key{Code: KeyArrowRight}, nil
	case 'D':
		return Key{Code: KeyArrowLeft}, nil
	case 'H':
		return Key{Code: KeyHome}, nil
	case 'F':
		return Key{Code: KeyEnd}, nil
	case 'Z':
		return Key{Code: KeyBackTab}, nil
	}
	c3, ok, err := src.probeByte()
	if err != nil {
		return Key{}, err
	}
	if !ok {
		return Key{Code: KeyUnknownEscSeq, Seq: []rune{rune(c1), rune(c2)}}, nil
	}
	if c3 == '~' {
		switch c2 {
		case '1': // tmux
			return Key{Code: KeyHome}, nil
		case '2':
			return Key{Code: KeyInsert}, nil
		case '3':
			return Key{Code: KeyDelete}, nil
		case '4': // tmux
			return Key{Code: KeyEnd}, nil
		case '5':
			return Key{Code: KeyPageUp}, nil
		case '6':
			return Key{Code: KeyPageDown}, nil
		case '7': // xrvt
			return Key{Code: KeyHome}, nil
		case '8': // xrvt
			return Key{Code: KeyEnd}, nil
		}
	}
	return Key{Code: KeyUnknownEscSeq, Seq: []rune{rune(c1), rune(c2), rune(c3)}}, nil
}
