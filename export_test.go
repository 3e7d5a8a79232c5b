package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveVisualTXT(t *testing.T) {
	m := newTestModel()
	m.engine.Grid().Set(0, 0, '#')
	m.engine.Grid().Set(79, 23, '#')

	path := filepath.Join(t.TempDir(), "drawing.txt")
	if err := m.saveVisualTXT(path); err != nil {
		t.Fatalf("saveVisualTXT: unexpected error %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	want := m.engine.ExportText() + "\n"
	if string(data) != want {
		t.Fatalf("exported text mismatch\ngot %d bytes, want %d bytes", len(data), len(want))
	}
}

func TestExportPNG(t *testing.T) {
	grid := NewGrid()
	grid.Set(10, 10, '#')

	path := filepath.Join(t.TempDir(), "drawing.png")
	if err := exportPNG(grid, path); err != nil {
		t.Fatalf("exportPNG: unexpected error %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != gridWidth*8 || bounds.Dy() != gridHeight*16 {
		t.Fatalf("image size: got %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), gridWidth*8, gridHeight*16)
	}
}

func TestCleanClipboardText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"crlf", "a\r\nb", "a\nb"},
		{"bare cr", "a\rb", "a\nb"},
		{"tab", "a\tb", "a b"},
		{"control chars stripped", "a\x00\x1bb", "ab"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanClipboardText(tc.in); got != tc.want {
				t.Fatalf("cleanClipboardText(%q): got %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
