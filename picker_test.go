package main

import "testing"

func TestNewBrushPickerStartsOnCurrentBrush(t *testing.T) {
	p := newBrushPicker('#')
	if got := p.Selected(); got != '#' {
		t.Fatalf("picker start: got %q, want %q", got, '#')
	}

	// Unknown brush falls back to the top-left cell.
	p = newBrushPicker('€')
	if got := p.Selected(); got != brushPalette[0][0] {
		t.Fatalf("picker fallback: got %q, want %q", got, brushPalette[0][0])
	}
}

func TestPickerCursorStaysInPalette(t *testing.T) {
	p := brushPicker{}
	for i := 0; i < 100; i++ {
		p.moveCursor(-1, -1)
	}
	if p.row != 0 || p.col != 0 {
		t.Fatalf("cursor after far up-left: got (%d,%d), want (0,0)", p.row, p.col)
	}

	for i := 0; i < 100; i++ {
		p.moveCursor(1, 1)
	}
	wantRow := len(brushPalette) - 1
	wantCol := len(brushPalette[0]) - 1
	if p.row != wantRow || p.col != wantCol {
		t.Fatalf("cursor after far down-right: got (%d,%d), want (%d,%d)", p.row, p.col, wantRow, wantCol)
	}
}

func TestPickerRenderShape(t *testing.T) {
	p := newBrushPicker(defaultBrush)
	lines := p.render()

	if len(lines) != len(brushPalette)+2 {
		t.Fatalf("rendered line count: got %d, want %d", len(lines), len(brushPalette)+2)
	}
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != width {
			t.Fatalf("line %d width: got %d, want %d", i, n, width)
		}
	}
}
