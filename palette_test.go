package console

import (
	"image/color"
	"testing"
)

func TestDefaultPalette(t *testing.T) {
	tests := []struct {
		index    int
		expected color.RGBA
	}{
		{0, color.RGBA{0, 0, 0, 255}},
		{1, color.RGBA{205, 49, 49, 255}},
		{15, color.RGBA{255, 255, 255, 255}},
		// Color cube: 16 + 36r + 6g + b, channel value 51 per step.
		{16, color.RGBA{0, 0, 0, 255}},
		{196, color.RGBA{255, 0, 0, 255}},
		{231, color.RGBA{255, 255, 255, 255}},
		// Grayscale ramp: 8 + 10 per step.
		{232, color.RGBA{8, 8, 8, 255}},
		{255, color.RGBA{238, 238, 238, 255}},
	}
	for _, tt := range tests {
		if got := DefaultPalette[tt.index]; got != tt.expected {
			t.Errorf("DefaultPalette[%d] = %v, want %v", tt.index, got, tt.expected)
		}
	}
}

func TestIndexedFromRGB(t *testing.T) {
	tests := []struct {
		r, g, b  uint8
		expected Color
	}{
		// Exact palette entries map to themselves; ties go to the lowest
		// index, so pure black picks entry 0 over cube entry 16.
		{255, 0, 0, Indexed(196)},
		{0, 0, 0, Indexed(0)},
		{238, 238, 238, Indexed(255)},
		{205, 49, 49, Indexed(1)},
		{254, 1, 0, Indexed(196)},
	}
	for _, tt := range tests {
		if got := IndexedFromRGB(tt.r, tt.g, tt.b); got != tt.expected {
			t.Errorf("IndexedFromRGB(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.expected)
		}
	}
}
