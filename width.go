package console

import (
	"sync/atomic"
	"unicode/utf8"

	"github.com/unilibs/uniwidth"
)

// unicodeWidth selects between East-Asian-width-aware measurement and the
// naive one-column-per-rune fallback.
var unicodeWidth atomic.Bool

func init() {
	unicodeWidth.Store(true)
}

// SetUnicodeWidth toggles Unicode-aware width measurement. When disabled,
// every rune counts as one column regardless of its display width.
func SetUnicodeWidth(enabled bool) {
	unicodeWidth.Store(enabled)
}

// UnicodeWidth reports whether Unicode-aware width measurement is active.
func UnicodeWidth() bool {
	return unicodeWidth.Load()
}

// runeWidth returns the display width of r: 2 for wide characters (CJK,
// emoji, fullwidth forms), 1 for normal, 0 for zero-width (combining
// marks, control chars).
func runeWidth(r rune) int {
	if !unicodeWidth.Load() {
		return 1
	}
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total display width of a string (sum of rune
// widths). Escape sequences are not treated specially; use
// MeasureTextWidth for ANSI-styled text.
func StringWidth(s string) int {
	if !unicodeWidth.Load() {
		return utf8.RuneCountInString(s)
	}
	return uniwidth.StringWidth(s)
}
