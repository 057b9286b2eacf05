package console

import (
	"strings"
	"unicode/utf8"
)

const (
	// escRune is the escape lead byte starting an ANSI sequence.
	escRune = '\x1b'
	// csiRune is the single-byte C1 equivalent of ESC [.
	csiRune = '\u009b'
)

// ansiState is a state of the escape-sequence recognizer, a small
// deterministic automaton that replaces a regular expression on the hot
// path. It recognizes sequences of the form
//
//	lead  := ESC | U+009B
//	seq   := lead ( '(' | ')' ) designator
//	       | lead marker* group (';' group)* final
//
// where markers are drawn from "[()#;?" (a leading '(' or ')' always
// selects the designate-character-set form), groups are runs of digits,
// and final bytes come from "A-P R Z c f-n q r y = > <". Digit groups are
// nominally 1-4 digits long but the recognizer accepts unbounded runs; the
// looser behavior is intentional and locked in by tests.
type ansiState uint8

const (
	ansiStart ansiState = iota
	// ansiLead: the lead byte has been consumed.
	ansiLead
	// ansiMarkers: inside the parameter/private marker prefix.
	ansiMarkers
	// ansiDigits: inside a numeric parameter group. Final, since a digit
	// may itself terminate a sequence.
	ansiDigits
	// ansiGroupSep: just consumed a ';' separating digit groups.
	ansiGroupSep
	// ansiCharset: seen '(' or ')' directly after the lead, expecting a
	// character-set designator.
	ansiCharset
	// ansiEscFinal: consumed a final byte or designator. Final; nothing
	// can extend the sequence past it.
	ansiEscFinal
	// ansiTrap is absorbing: no input leads out of it.
	ansiTrap
)

func isAnsiMarker(r rune) bool {
	switch r {
	case '[', '(', ')', '#', ';', '?':
		return true
	}
	return false
}

func isAnsiFinalByte(r rune) bool {
	switch {
	case r >= 'A' && r <= 'P':
		return true
	case r == 'R' || r == 'Z' || r == 'c':
		return true
	case r >= 'f' && r <= 'n':
		return true
	case r == 'q' || r == 'r' || r == 'y':
		return true
	case r == '=' || r == '>' || r == '<':
		return true
	}
	return false
}

// isCharsetDesignator reports whether r designates a VT100 character set
// (UK, US-ASCII, DEC special graphics, alternate ROMs).
func isCharsetDesignator(r rune) bool {
	switch r {
	case 'A', 'B', '0', '1', '2':
		return true
	}
	return false
}

// transition is the total transition function: every rune maps every
// non-trap state to exactly one successor.
func (s ansiState) transition(r rune) ansiState {
	switch s {
	case ansiStart:
		if r == escRune || r == csiRune {
			return ansiLead
		}
	case ansiLead:
		switch {
		case r == '(' || r == ')':
			return ansiCharset
		case r == '[' || r == '#' || r == ';' || r == '?':
			return ansiMarkers
		case r >= '0' && r <= '9':
			return ansiDigits
		case isAnsiFinalByte(r):
			return ansiEscFinal
		}
	case ansiMarkers:
		switch {
		case isAnsiMarker(r):
			return ansiMarkers
		case r >= '0' && r <= '9':
			return ansiDigits
		case isAnsiFinalByte(r):
			return ansiEscFinal
		}
	case ansiDigits:
		switch {
		case r >= '0' && r <= '9':
			return ansiDigits
		case r == ';':
			return ansiGroupSep
		case isAnsiFinalByte(r):
			return ansiEscFinal
		}
	case ansiGroupSep:
		switch {
		case r >= '0' && r <= '9':
			return ansiDigits
		case r == ';':
			return ansiGroupSep
		case isAnsiFinalByte(r):
			return ansiEscFinal
		}
	case ansiCharset:
		if isCharsetDesignator(r) {
			return ansiEscFinal
		}
	}
	return ansiTrap
}

// isFinal reports whether the runes consumed so far form one complete
// escape sequence.
func (s ansiState) isFinal() bool {
	return s == ansiDigits || s == ansiEscFinal
}

func (s ansiState) isTrap() bool {
	return s == ansiTrap
}

// findEscapeSequence returns the byte span of the first escape sequence in
// s at or after from. Matching is greedy: the automaton runs until it
// traps or input ends, and the match extends to the last final state seen.
// A lead byte that never reaches a final state is not a match and scanning
// resumes one character later, so "\x1b\x1bf" matches only the trailing
// "\x1bf".
func findEscapeSequence(s string, from int) (start, end int, ok bool) {
	i := from
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != escRune && r != csiRune {
			i += size
			continue
		}
		st := ansiLead
		lastFinal := -1
		for j := i + size; j < len(s); {
			r2, size2 := utf8.DecodeRuneInString(s[j:])
			st = st.transition(r2)
			if st.isTrap() {
				break
			}
			j += size2
			if st.isFinal() {
				lastFinal = j
			}
		}
		if lastFinal >= 0 {
			return i, lastFinal, true
		}
		i += size
	}
	return 0, 0, false
}

// AnsiCodeIterator splits a string into alternating literal and
// escape-code segments. Concatenating every segment reproduces the input
// exactly; all segments are sub-slices of the original string and no empty
// literal segment is ever produced.
type AnsiCodeIterator struct {
	s           string
	pending     string
	pendingCode bool
	hasPending  bool
	lastIdx     int
	curIdx      int
	scanPos     int
}

// NewAnsiCodeIterator creates an iterator over the segments of s.
func NewAnsiCodeIterator(s string) *AnsiCodeIterator {
	return &AnsiCodeIterator{s: s}
}

// Next returns the next segment and whether it is an escape code. ok is
// false once the input is exhausted.
func (it *AnsiCodeIterator) Next() (seg string, isCode bool, ok bool) {
	if it.hasPending {
		it.hasPending = false
		it.curIdx += len(it.pending)
		return it.pending, it.pendingCode, true
	}
	if start, end, found := findEscapeSequence(it.s, it.scanPos); found {
		it.scanPos = end
		code := it.s[start:end]
		text := it.s[it.lastIdx:start]
		it.lastIdx = end
		if text == "" {
			it.curIdx = end
			return code, true, true
		}
		it.curIdx = start
		it.pending, it.pendingCode, it.hasPending = code, true, true
		return text, false, true
	}
	if it.lastIdx < len(it.s) {
		seg = it.s[it.lastIdx:]
		it.curIdx = len(it.s)
		it.lastIdx = len(it.s)
		return seg, false, true
	}
	return "", false, false
}

// CurrentSlice returns the prefix of the original string consumed so far.
func (it *AnsiCodeIterator) CurrentSlice() string {
	return it.s[:it.curIdx]
}

// RestSlice returns the suffix of the original string not yet consumed.
func (it *AnsiCodeIterator) RestSlice() string {
	return it.s[it.curIdx:]
}

// StripAnsi removes all recognized ANSI escape sequences from s. Malformed
// or incomplete sequences are ordinary text and stay in place. When s
// contains no escape sequences it is returned unchanged, without copying.
func StripAnsi(s string) string {
	start, end, ok := findEscapeSequence(s, 0)
	if !ok {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) - (end - start))
	b.WriteString(s[:start])
	pos := end
	for {
		s2, e2, ok2 := findEscapeSequence(s, pos)
		if !ok2 {
			b.WriteString(s[pos:])
			break
		}
		b.WriteString(s[pos:s2])
		pos = e2
	}
	return b.String()
}
