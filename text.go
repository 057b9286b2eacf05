package console

import (
	"strings"
)

// Alignment defines where padding is inserted by the pad operations.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// MeasureTextWidth returns the number of terminal columns s occupies,
// ignoring ANSI escape sequences.
func MeasureTextWidth(s string) int {
	return StringWidth(StripAnsi(s))
}

// SliceString returns the part of s covering the visible columns
// [start, end), surrounded by the literal head and tail markers.
//
// Escape codes contribute no width but are always preserved: codes seen
// before the first included character are collected and emitted before
// head, codes inside the range stay in place, and codes past the range
// close follow tail. A glyph whose width straddles either boundary is
// excluded entirely, never split. When the range spans the whole visible
// width and head and tail are empty, s is returned unchanged.
//
// Out-of-range columns are not an error; they simply select no text.
func SliceString(s, head string, start, end int, tail string) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	if head == "" && tail == "" && start == 0 && MeasureTextWidth(s) <= end {
		return s
	}

	var lead, body strings.Builder
	started := false
	wroteTail := false
	cur := 0
	it := NewAnsiCodeIterator(s)
	for {
		seg, isCode, ok := it.Next()
		if !ok {
			break
		}
		if isCode {
			if started {
				body.WriteString(seg)
			} else {
				lead.WriteString(seg)
			}
			continue
		}
		for _, r := range seg {
			w := runeWidth(r)
			switch {
			case !wroteTail && cur >= start && cur+w <= end:
				started = true
				body.WriteRune(r)
			case !wroteTail && started && cur+w > end:
				body.WriteString(tail)
				wroteTail = true
			}
			cur += w
		}
	}
	if !wroteTail {
		body.WriteString(tail)
	}
	if lead.Len() == 0 && head == "" {
		return body.String()
	}
	return lead.String() + head + body.String()
}

// TruncateString shortens s to at most width visible columns, appending
// tail in place of the removed text. Escape codes are preserved so that
// styling never leaks past the truncated result. If s already fits it is
// returned unchanged.
func TruncateString(s string, width int, tail string) string {
	if MeasureTextWidth(s) <= width {
		return s
	}
	end := width - MeasureTextWidth(tail)
	if end < 0 {
		end = 0
	}
	return SliceString(s, "", 0, end, tail)
}

// PadString pads s with spaces to fill width columns, honoring escape
// codes. Text wider than width is returned unchanged.
func PadString(s string, width int, align Alignment) string {
	return padString(s, width, align, false, "", ' ')
}

// PadStringWith pads s with the given pad rune instead of a space.
func PadStringWith(s string, width int, align Alignment, pad rune) string {
	return padString(s, width, align, false, "", pad)
}

// FitString forces s to exactly width columns: shorter text is padded
// with spaces, wider text is truncated with marker in place of the
// removed part.
func FitString(s string, width int, align Alignment, marker string) string {
	return padString(s, width, align, true, marker, ' ')
}

func padString(s string, width int, align Alignment, truncate bool, marker string, pad rune) string {
	cols := MeasureTextWidth(s)
	if cols >= width {
		if !truncate {
			return s
		}
		return TruncateString(s, width, marker)
	}

	diff := width - cols
	var left, right int
	switch align {
	case AlignLeft:
		right = diff
	case AlignRight:
		left = diff
	case AlignCenter:
		left = diff / 2
		right = diff - diff/2
	}

	var b strings.Builder
	b.Grow(len(s) + diff)
	for range left {
		b.WriteRune(pad)
	}
	b.WriteString(s)
	for range right {
		b.WriteRune(pad)
	}
	return b.String()
}
