package console

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a terminal color: one of the eight base colors or an entry of
// the 256-color palette created with Indexed.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

const indexedBase Color = 256

// Indexed returns the palette color with the given 256-color index.
func Indexed(i uint8) Color {
	return indexedBase + Color(i)
}

// indexed returns the palette index when c was created with Indexed.
func (c Color) indexed() (uint8, bool) {
	if c >= indexedBase {
		return uint8(c - indexedBase), true
	}
	return 0, false
}

// Attribute is a terminal style attribute, one SGR parameter.
type Attribute uint8

const (
	AttrBold Attribute = iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrBlinkFast
	AttrReverse
	AttrHidden
	AttrStrikethrough
	attrCount
)

// ansiCode returns the SGR parameter number for the attribute.
func (a Attribute) ansiCode() int {
	return int(a) + 1
}

// Style stores colors and attributes that can be applied to text. The
// zero value is an empty style targeting stdout. Builder methods return a
// modified copy, so styles can be shared and extended freely:
//
//	warn := console.NewStyle().Yellow().Bold()
//	fmt.Println(warn.Apply("careful"))
type Style struct {
	fg, bg       Color
	hasFg, hasBg bool
	fgBright     bool
	bgBright     bool
	attrs        uint16
	force        int8 // 0 auto, 1 on, -1 off
	target       TermTarget
}

// NewStyle returns an empty style.
func NewStyle() Style {
	return Style{}
}

// StyleFromDotted builds a style from a dotted description such as
// "red.on_blue.bold". Unknown terms are ignored.
func StyleFromDotted(s string) Style {
	rv := NewStyle()
	for _, part := range strings.Split(s, ".") {
		switch part {
		case "black":
			rv = rv.Black()
		case "red":
			rv = rv.Red()
		case "green":
			rv = rv.Green()
		case "yellow":
			rv = rv.Yellow()
		case "blue":
			rv = rv.Blue()
		case "magenta":
			rv = rv.Magenta()
		case "cyan":
			rv = rv.Cyan()
		case "white":
			rv = rv.White()
		case "on_black":
			rv = rv.OnBlack()
		case "on_red":
			rv = rv.OnRed()
		case "on_green":
			rv = rv.OnGreen()
		case "on_yellow":
			rv = rv.OnYellow()
		case "on_blue":
			rv = rv.OnBlue()
		case "on_magenta":
			rv = rv.OnMagenta()
		case "on_cyan":
			rv = rv.OnCyan()
		case "on_white":
			rv = rv.OnWhite()
		case "bright":
			rv = rv.Bright()
		case "on_bright":
			rv = rv.OnBright()
		case "bold":
			rv = rv.Bold()
		case "dim":
			rv = rv.Dim()
		case "italic":
			rv = rv.Italic()
		case "underlined":
			rv = rv.Underlined()
		case "blink":
			rv = rv.Blink()
		case "blink_fast":
			rv = rv.BlinkFast()
		case "reverse":
			rv = rv.Reverse()
		case "hidden":
			rv = rv.Hidden()
		case "strikethrough":
			rv = rv.Strikethrough()
		}
	}
	return rv
}

// Apply wraps a value with this style.
func (s Style) Apply(val any) Styled {
	return Styled{style: s, val: val}
}

// ForceStyling overrides the process-wide color detection for values
// styled with this style.
func (s Style) ForceStyling(v bool) Style {
	if v {
		s.force = 1
	} else {
		s.force = -1
	}
	return s
}

// ForStderr makes the style consult the stderr color flag instead of the
// stdout one.
func (s Style) ForStderr() Style {
	s.target = TargetStderr
	return s
}

// Fg sets the foreground color.
func (s Style) Fg(c Color) Style {
	s.fg = c
	s.hasFg = true
	return s
}

// Bg sets the background color.
func (s Style) Bg(c Color) Style {
	s.bg = c
	s.hasBg = true
	return s
}

// Attr adds an attribute.
func (s Style) Attr(a Attribute) Style {
	s.attrs |= 1 << a
	return s
}

// Bright renders the foreground color in its bright variant.
func (s Style) Bright() Style {
	s.fgBright = true
	return s
}

// OnBright renders the background color in its bright variant.
func (s Style) OnBright() Style {
	s.bgBright = true
	return s
}

func (s Style) Black() Style   { return s.Fg(Black) }
func (s Style) Red() Style     { return s.Fg(Red) }
func (s Style) Green() Style   { return s.Fg(Green) }
func (s Style) Yellow() Style  { return s.Fg(Yellow) }
func (s Style) Blue() Style    { return s.Fg(Blue) }
func (s Style) Magenta() Style { return s.Fg(Magenta) }
func (s Style) Cyan() Style    { return s.Fg(Cyan) }
func (s Style) White() Style   { return s.Fg(White) }

func (s Style) OnBlack() Style   { return s.Bg(Black) }
func (s Style) OnRed() Style     { return s.Bg(Red) }
func (s Style) OnGreen() Style   { return s.Bg(Green) }
func (s Style) OnYellow() Style  { return s.Bg(Yellow) }
func (s Style) OnBlue() Style    { return s.Bg(Blue) }
func (s Style) OnMagenta() Style { return s.Bg(Magenta) }
func (s Style) OnCyan() Style    { return s.Bg(Cyan) }
func (s Style) OnWhite() Style   { return s.Bg(White) }

func (s Style) Bold() Style          { return s.Attr(AttrBold) }
func (s Style) Dim() Style           { return s.Attr(AttrDim) }
func (s Style) Italic() Style        { return s.Attr(AttrItalic) }
func (s Style) Underlined() Style    { return s.Attr(AttrUnderline) }
func (s Style) Blink() Style         { return s.Attr(AttrBlink) }
func (s Style) BlinkFast() Style     { return s.Attr(AttrBlinkFast) }
func (s Style) Reverse() Style       { return s.Attr(AttrReverse) }
func (s Style) Hidden() Style        { return s.Attr(AttrHidden) }
func (s Style) Strikethrough() Style { return s.Attr(AttrStrikethrough) }

// enabled reports whether this style should emit escape codes.
func (s Style) enabled() bool {
	switch s.force {
	case 1:
		return true
	case -1:
		return false
	}
	if s.target == TargetStderr {
		return ColorsEnabledStderr()
	}
	return ColorsEnabled()
}

// Styled is a value wrapped with a style. Rendering it produces the value
// surrounded by escape codes when styling is enabled for the style's
// target stream, and the bare value otherwise.
type Styled struct {
	style Style
	val   any
}

// Stylize wraps a value for fluent styling:
//
//	fmt.Printf("Hello %s!\n", console.Stylize("World").Cyan())
func Stylize(val any) Styled {
	return Styled{val: val}
}

// ForceStyling overrides the process-wide color detection.
func (so Styled) ForceStyling(v bool) Styled {
	so.style = so.style.ForceStyling(v)
	return so
}

// ForStderr makes the styled value consult the stderr color flag.
func (so Styled) ForStderr() Styled {
	so.style = so.style.ForStderr()
	return so
}

// Fg sets the foreground color.
func (so Styled) Fg(c Color) Styled {
	so.style = so.style.Fg(c)
	return so
}

// Bg sets the background color.
func (so Styled) Bg(c Color) Styled {
	so.style = so.style.Bg(c)
	return so
}

// Attr adds an attribute.
func (so Styled) Attr(a Attribute) Styled {
	so.style = so.style.Attr(a)
	return so
}

// Bright renders the foreground color in its bright variant.
func (so Styled) Bright() Styled {
	so.style = so.style.Bright()
	return so
}

// OnBright renders the background color in its bright variant.
func (so Styled) OnBright() Styled {
	so.style = so.style.OnBright()
	return so
}

func (so Styled) Black() Styled   { return so.Fg(Black) }
func (so Styled) Red() Styled     { return so.Fg(Red) }
func (so Styled) Green() Styled   { return so.Fg(Green) }
func (so Styled) Yellow() Styled  { return so.Fg(Yellow) }
func (so Styled) Blue() Styled    { return so.Fg(Blue) }
func (so Styled) Magenta() Styled { return so.Fg(Magenta) }
func (so Styled) Cyan() Styled    { return so.Fg(Cyan) }
func (so Styled) White() Styled   { return so.Fg(White) }

func (so Styled) OnBlack() Styled   { return so.Bg(Black) }
func (so Styled) OnRed() Styled     { return so.Bg(Red) }
func (so Styled) OnGreen() Styled   { return so.Bg(Green) }
func (so Styled) OnYellow() Styled  { return so.Bg(Yellow) }
func (so Styled) OnBlue() Styled    { return so.Bg(Blue) }
func (so Styled) OnMagenta() Styled { return so.Bg(Magenta) }
func (so Styled) OnCyan() Styled    { return so.Bg(Cyan) }
func (so Styled) OnWhite() Styled   { return so.Bg(White) }

func (so Styled) Bold() Styled          { return so.Attr(AttrBold) }
func (so Styled) Dim() Styled           { return so.Attr(AttrDim) }
func (so Styled) Italic() Styled        { return so.Attr(AttrItalic) }
func (so Styled) Underlined() Styled    { return so.Attr(AttrUnderline) }
func (so Styled) Blink() Styled         { return so.Attr(AttrBlink) }
func (so Styled) BlinkFast() Styled     { return so.Attr(AttrBlinkFast) }
func (so Styled) Reverse() Styled       { return so.Attr(AttrReverse) }
func (so Styled) Hidden() Styled        { return so.Attr(AttrHidden) }
func (so Styled) Strikethrough() Styled { return so.Attr(AttrStrikethrough) }

// String renders the value with its escape codes. The foreground code
// comes first, then the background, then attributes in SGR order, and a
// single reset closes the sequence when anything was emitted.
func (so Styled) String() string {
	var b strings.Builder
	reset := false
	if so.style.enabled() {
		st := so.style
		if st.hasFg {
			if idx, ok := st.fg.indexed(); ok {
				b.WriteString("\x1b[38;5;")
				b.WriteString(strconv.Itoa(int(idx)))
				b.WriteByte('m')
			} else if st.fgBright {
				b.WriteString("\x1b[")
				b.WriteString(strconv.Itoa(int(st.fg) + 90))
				b.WriteByte('m')
			} else {
				b.WriteString("\x1b[")
				b.WriteString(strconv.Itoa(int(st.fg) + 30))
				b.WriteByte('m')
			}
			reset = true
		}
		if st.hasBg {
			if idx, ok := st.bg.indexed(); ok {
				b.WriteString("\x1b[48;5;")
				b.WriteString(strconv.Itoa(int(idx)))
				b.WriteByte('m')
			} else if st.bgBright {
				b.WriteString("\x1b[")
				b.WriteString(strconv.Itoa(int(st.bg) + 100))
				b.WriteByte('m')
			} else {
				b.WriteString("\x1b[")
				b.WriteString(strconv.Itoa(int(st.bg) + 40))
				b.WriteByte('m')
			}
			reset = true
		}
		for a := Attribute(0); a < attrCount; a++ {
			if st.attrs&(1<<a) != 0 {
				b.WriteString("\x1b[")
				b.WriteString(strconv.Itoa(a.ansiCode()))
				b.WriteByte('m')
				reset = true
			}
		}
	}
	b.WriteString(fmt.Sprint(so.val))
	if reset {
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

// Emoji renders an emoji on terminals expected to display it and a plain
// fallback everywhere else:
//
//	fmt.Printf("[4/4] %s Done!\n", console.NewEmoji("✨", ":-)"))
type Emoji struct {
	Emoji    string
	Fallback string
}

// NewEmoji creates an emoji with a fallback.
func NewEmoji(emoji, fallback string) Emoji {
	return Emoji{Emoji: emoji, Fallback: fallback}
}

func (e Emoji) String() string {
	if wantsEmoji() {
		return e.Emoji
	}
	return e.Fallback
}
