// Package console provides terminal handling, ANSI-aware text layout, and
// styled output for command line applications.
//
// The package works with strings that may contain ANSI escape sequences and
// never requires a real terminal to do so, making it useful for:
//   - Truncating and padding colored output to a column budget
//   - Measuring the display width of styled strings
//   - Stripping escape sequences for logging or plain-text output
//   - Building interactive prompts with styled text and key input
//
// # Quick Start
//
// Style a value and print it; colors are dropped automatically when the
// stream is not a terminal:
//
//	fmt.Println(console.Stylize("Hello World!").Cyan())
//
// Lay out colored text without breaking its escape sequences:
//
//	s := console.Stylize("a long colored label").Red().String()
//	fmt.Println(console.TruncateString(s, 10, "..."))
//
// # Architecture
//
// The package is organized around these core pieces:
//
//   - [AnsiCodeIterator]: Splits a string into literal text and escape codes
//   - [SliceString], [TruncateString], [PadString]: ANSI-aware layout
//   - [Style] and [Styled]: Composable colors and attributes
//   - [Term]: A handle to stdout or stderr with cursor control and key input
//
// # Escape Sequence Scanning
//
// [AnsiCodeIterator] walks a string and yields segments, each flagged as
// text or as a recognized escape sequence. Concatenating the segments in
// order reproduces the input exactly:
//
//	it := console.NewAnsiCodeIterator("Hello \x1b[31mWorld\x1b[0m!")
//	for {
//	    seg, isCode, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Printf("%q code=%v\n", seg, isCode)
//	}
//
// [StripAnsi] removes all recognized sequences, and [MeasureTextWidth]
// returns the display width of the remaining text, counting East Asian
// wide characters as two columns.
//
// # Layout
//
// [SliceString] extracts a range of display columns while keeping every
// escape sequence in the output, so styling stays intact across the cut.
// [TruncateString] shortens a string to a width budget with an optional
// tail such as "...", and [PadString], [PadStringWith], and [FitString]
// align text within a column budget:
//
//	console.PadString("foo", 7, console.AlignCenter) // "  foo  "
//	console.TruncateString("foo bar", 5, "")         // "foo b"
//
// Characters wider than one column are never split: a wide character that
// would straddle a boundary is excluded whole.
//
// # Styles
//
// [Style] is an immutable value; each method returns a copy with one more
// color or attribute set. Apply it to any value to get a [Styled] that
// renders the escape sequences around the value's default formatting:
//
//	warn := console.NewStyle().Yellow().Bold()
//	fmt.Println(warn.Apply("careful"))
//
// Styles serialize only when the target stream accepts colors; see
// [ColorsEnabled] and [SetColorsEnabled]. A style can be forced on or off
// with [Style.ForceStyling], and [StyleFromDotted] parses specs like
// "red.on_blue.bold" from configuration.
//
// The 256-color palette is available through [Indexed], and
// [IndexedFromRGB] maps an arbitrary RGB value to the nearest palette
// entry.
//
// # Terminal Handles
//
// [Stdout] and [Stderr] return handles to the process streams. They
// expose cursor movement, line and screen clearing, the alternate screen,
// window titles, and size queries:
//
//	term := console.Stdout()
//	term.WriteLine("working...")
//	term.ClearLastLines(1)
//
// [BufferedStdout] and [BufferedStderr] hold writes until [Term.Flush],
// which keeps multi-line redraws atomic.
//
// # Key Input
//
// [Term.ReadKey] switches the terminal to raw mode for a single
// keystroke, decoding arrow keys, navigation keys, and UTF-8 input:
//
//	switch key, _ := term.ReadKey(); key.Code {
//	case console.KeyArrowUp:
//	    // ...
//	case console.KeyChar:
//	    fmt.Println("typed", string(key.Char))
//	}
//
// [Term.ReadLine] and [Term.ReadSecureLine] read whole lines, the latter
// with echo disabled for passwords.
package console
