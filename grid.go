package main

import (
	"errors"
	"strings"
)

// ErrOutOfBounds is returned for any coordinate outside the canvas.
// The event source is responsible for never forwarding such coordinates;
// the grid refuses them rather than clamping, since silent clamping would
// distort shape geometry at the edges.
var ErrOutOfBounds = errors.New("coordinate outside canvas")

// Grid is the 80x24 character buffer behind the canvas. Every cell holds
// exactly one printable rune or a space. Each canvas owns its own Grid;
// there is no shared default buffer.
type Grid struct {
	cells [][]rune
	dirty bool
}

func NewGrid() *Grid {
	cells := make([][]rune, gridHeight)
	for y := range cells {
		cells[y] = make([]rune, gridWidth)
		for x := range cells[y] {
			cells[y][x] = blankChar
		}
	}
	return &Grid{cells: cells}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < gridWidth && y >= 0 && y < gridHeight
}

func (g *Grid) Get(x, y int) (rune, error) {
	if !g.inBounds(x, y) {
		return 0, ErrOutOfBounds
	}
	return g.cells[y][x], nil
}

func (g *Grid) Set(x, y int, r rune) error {
	if !g.inBounds(x, y) {
		return ErrOutOfBounds
	}
	g.cells[y][x] = r
	g.dirty = true
	return nil
}

// Snapshot returns a fully independent copy. Shape previews redraw over a
// fixed press-time base, so the copy must not alias the live buffer.
func (g *Grid) Snapshot() *Grid {
	cells := make([][]rune, gridHeight)
	for y := range cells {
		cells[y] = make([]rune, gridWidth)
		copy(cells[y], g.cells[y])
	}
	return &Grid{cells: cells}
}

// Replace overwrites the whole buffer with the contents of other.
func (g *Grid) Replace(other *Grid) {
	for y := range g.cells {
		copy(g.cells[y], other.cells[y])
	}
	g.dirty = true
}

// Dirty reports whether the grid changed since the last MarkClean. The
// presentation layer polls this to decide when to redraw.
func (g *Grid) Dirty() bool {
	return g.dirty
}

func (g *Grid) MarkClean() {
	g.dirty = false
}

// String serializes the grid as 24 lines of exactly 80 runes joined by
// newlines. No trailing-space trimming: every row keeps its full width.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((gridWidth + 1) * gridHeight)
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, r := range row {
			b.WriteRune(r)
		}
	}
	return b.String()
}
