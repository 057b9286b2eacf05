package console

import (
	"testing"
)

func TestSetColorsEnabled(t *testing.T) {
	SetColorsEnabled(true)
	if !ColorsEnabled() {
		t.Error("ColorsEnabled() = false after SetColorsEnabled(true)")
	}
	SetColorsEnabled(false)
	if ColorsEnabled() {
		t.Error("ColorsEnabled() = true after SetColorsEnabled(false)")
	}

	SetColorsEnabledStderr(true)
	if !ColorsEnabledStderr() {
		t.Error("ColorsEnabledStderr() = false after SetColorsEnabledStderr(true)")
	}
	SetColorsEnabledStderr(false)
	if ColorsEnabledStderr() {
		t.Error("ColorsEnabledStderr() = true after SetColorsEnabledStderr(false)")
	}
}

func TestStyledHonorsColorFlags(t *testing.T) {
	SetColorsEnabled(true)
	defer SetColorsEnabled(false)
	if got := Stylize("x").Red().String(); got != "\x1b[31mx\x1b[0m" {
		t.Errorf("with colors on, String() = %q", got)
	}

	SetColorsEnabled(false)
	if got := Stylize("x").Red().String(); got != "x" {
		t.Errorf("with colors off, String() = %q", got)
	}

	SetColorsEnabledStderr(true)
	defer SetColorsEnabledStderr(false)
	if got := Stylize("x").Red().ForStderr().String(); got != "\x1b[31mx\x1b[0m" {
		t.Errorf("with stderr colors on, String() = %q", got)
	}
}
