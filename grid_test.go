package main

import (
	"errors"
	"strings"
	"testing"
)

func TestGridSetGetLocality(t *testing.T) {
	g := NewGrid()
	if err := g.Set(3, 5, '#'); err != nil {
		t.Fatalf("Set(3,5): unexpected error %v", err)
	}

	r, err := g.Get(3, 5)
	if err != nil {
		t.Fatalf("Get(3,5): unexpected error %v", err)
	}
	if r != '#' {
		t.Fatalf("Get(3,5): got %q, want %q", r, '#')
	}

	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			if x == 3 && y == 5 {
				continue
			}
			r, _ := g.Get(x, y)
			if r != blankChar {
				t.Fatalf("cell (%d,%d) changed: got %q, want blank", x, y, r)
			}
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid()
	cases := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", gridWidth, 0},
		{"y at height", 0, gridHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := g.Get(tc.x, tc.y); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("Get(%d,%d): got %v, want ErrOutOfBounds", tc.x, tc.y, err)
			}
			if err := g.Set(tc.x, tc.y, '#'); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("Set(%d,%d): got %v, want ErrOutOfBounds", tc.x, tc.y, err)
			}
		})
	}
}

func TestGridSnapshotIndependence(t *testing.T) {
	g := NewGrid()
	g.Set(1, 1, 'a')

	snap := g.Snapshot()

	g.Set(1, 1, 'b')
	g.Set(2, 2, 'c')
	if r, _ := snap.Get(1, 1); r != 'a' {
		t.Fatalf("snapshot cell (1,1) after live mutation: got %q, want %q", r, 'a')
	}
	if r, _ := snap.Get(2, 2); r != blankChar {
		t.Fatalf("snapshot cell (2,2) after live mutation: got %q, want blank", r)
	}

	snap.Set(3, 3, 'd')
	if r, _ := g.Get(3, 3); r != blankChar {
		t.Fatalf("live cell (3,3) after snapshot mutation: got %q, want blank", r)
	}
}

func TestGridReplace(t *testing.T) {
	g := NewGrid()
	other := NewGrid()
	other.Set(7, 7, 'z')

	g.Replace(other)
	if r, _ := g.Get(7, 7); r != 'z' {
		t.Fatalf("cell (7,7) after Replace: got %q, want %q", r, 'z')
	}

	// Replace copies; the source stays independent.
	other.Set(7, 7, 'w')
	if r, _ := g.Get(7, 7); r != 'z' {
		t.Fatalf("cell (7,7) after mutating source: got %q, want %q", r, 'z')
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid()
	g.Set(0, 0, 'a')
	g.Set(gridWidth-1, gridHeight-1, 'z')

	lines := strings.Split(g.String(), "\n")
	if len(lines) != gridHeight {
		t.Fatalf("line count: got %d, want %d", len(lines), gridHeight)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != gridWidth {
			t.Fatalf("line %d width: got %d, want %d (no trimming allowed)", i, n, gridWidth)
		}
	}
	if []rune(lines[0])[0] != 'a' {
		t.Fatalf("first cell: got %q, want %q", []rune(lines[0])[0], 'a')
	}
	if []rune(lines[gridHeight-1])[gridWidth-1] != 'z' {
		t.Fatalf("last cell: got %q, want %q", []rune(lines[gridHeight-1])[gridWidth-1], 'z')
	}
}

func TestGridDirtyFlag(t *testing.T) {
	g := NewGrid()
	if g.Dirty() {
		t.Fatalf("fresh grid must not be dirty")
	}
	g.Set(0, 0, '#')
	if !g.Dirty() {
		t.Fatalf("grid must be dirty after Set")
	}
	g.MarkClean()
	if g.Dirty() {
		t.Fatalf("grid must be clean after MarkClean")
	}
	g.Replace(NewGrid())
	if !g.Dirty() {
		t.Fatalf("grid must be dirty after Replace")
	}
}
