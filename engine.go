package main

type point struct {
	X, Y int
}

// PendingText is a text insertion spawned by pressing with the Text tool.
// The shell accumulates the typed string and hands it back through
// CommitText; MaxLen caps the string so it never crosses the right edge.
type PendingText struct {
	X, Y   int
	MaxLen int
}

// Engine interprets pointer gestures into grid mutations. It is
// single-threaded: every method is an immediate transformation driven by
// one inbound event, with no queuing or background work.
type Engine struct {
	grid  *Grid
	tool  Tool
	brush rune

	// Gesture state. The tool and the line-bend modifier are captured
	// once at press time; switching tools or modifiers mid-drag does not
	// change a gesture already in progress.
	active          bool
	gestureTool     Tool
	startX, startY  int
	horizontalFirst bool
	base            *Grid
	touched         []point

	pending *PendingText
}

func NewEngine(grid *Grid) *Engine {
	return &Engine{
		grid:  grid,
		tool:  ToolPencil,
		brush: defaultBrush,
	}
}

func (e *Engine) Grid() *Grid {
	return e.grid
}

func (e *Engine) Tool() Tool {
	return e.tool
}

// SetTool changes the active tool for the next gesture. A gesture already
// in progress keeps the tool it captured at press time.
func (e *Engine) SetTool(t Tool) {
	e.tool = t
}

func (e *Engine) Brush() rune {
	return e.brush
}

// SetBrush takes effect immediately, including for the remaining moves of
// an in-progress pencil stroke.
func (e *Engine) SetBrush(r rune) {
	e.brush = r
}

func (e *Engine) PendingText() *PendingText {
	return e.pending
}

// Active reports whether a gesture is in progress.
func (e *Engine) Active() bool {
	return e.active
}

// Press starts a gesture at (x, y). The modifier picks the Line tool's
// bend orientation; some pointer backends only report modifier state on
// press, so it is read here and nowhere else.
func (e *Engine) Press(x, y int, modifier bool) error {
	if !e.grid.inBounds(x, y) {
		return ErrOutOfBounds
	}

	e.active = true
	e.gestureTool = e.tool
	e.startX, e.startY = x, y
	e.horizontalFirst = modifier
	e.base = e.grid.Snapshot()
	e.touched = e.touched[:0]

	switch e.gestureTool {
	case ToolPencil:
		e.grid.Set(x, y, e.brush)
	case ToolEraser:
		e.grid.Set(x, y, blankChar)
	case ToolRectangle, ToolLine:
		// Zero-size shape, nothing to draw yet.
	case ToolText:
		e.pending = &PendingText{X: x, Y: y, MaxLen: gridWidth - x}
	}
	return nil
}

// Move extends the active gesture to (x, y). Without an active gesture it
// is a no-op: a Leave-then-Move ordering race is plausible from real
// pointer backends and must not kill the session.
func (e *Engine) Move(x, y int) error {
	if !e.active {
		return nil
	}
	if !e.grid.inBounds(x, y) {
		return ErrOutOfBounds
	}

	switch e.gestureTool {
	case ToolPencil:
		// Only the sampled coordinate is painted. A fast drag can skip
		// cells; no interpolation between samples.
		e.grid.Set(x, y, e.brush)
	case ToolEraser:
		e.grid.Set(x, y, blankChar)
	case ToolRectangle:
		e.restorePreview()
		e.rasterRectangle(x, y)
	case ToolLine:
		e.restorePreview()
		e.rasterLine(x, y)
	case ToolText:
		// The pending insertion is anchored at the press cell; dragging
		// does not move it.
	}
	return nil
}

// Release ends the gesture. The last preview frame is the final result.
func (e *Engine) Release() {
	e.active = false
	e.base = nil
	e.touched = e.touched[:0]
}

// Leave is delivered when the pointer exits the canvas mid-drag and is
// treated exactly like Release, so a stroke never stays live while the
// pointer is elsewhere.
func (e *Engine) Leave() {
	e.Release()
}

// CommitText stamps the pending insertion's finished string into the live
// grid, one rune per column rightward from the anchor, no wrapping. With
// no pending insertion it is a no-op.
func (e *Engine) CommitText(text string) {
	p := e.pending
	e.pending = nil
	if p == nil {
		return
	}
	runes := []rune(text)
	if len(runes) > p.MaxLen {
		runes = runes[:p.MaxLen]
	}
	for i, r := range runes {
		e.grid.Set(p.X+i, p.Y, r)
	}
}

// CancelText discards the pending insertion without stamping anything.
func (e *Engine) CancelText() {
	e.pending = nil
}

func (e *Engine) ExportText() string {
	return e.grid.String()
}

// paint writes a preview cell and records it so the next frame can undo it.
func (e *Engine) paint(x, y int, r rune) {
	e.grid.Set(x, y, r)
	e.touched = append(e.touched, point{x, y})
}

// restorePreview rolls back the cells the previous preview frame touched
// to their press-time values. Restoring only the touched cells keeps a
// move at O(shape perimeter) instead of copying the whole buffer, while
// preserving redraw-from-base semantics: previews never accumulate.
func (e *Engine) restorePreview() {
	for _, p := range e.touched {
		e.grid.Set(p.X, p.Y, e.base.cells[p.Y][p.X])
	}
	e.touched = e.touched[:0]
}

func (e *Engine) rasterRectangle(x1, y1 int) {
	sx, ex := minMax(e.startX, x1)
	sy, ey := minMax(e.startY, y1)

	if sx != ex {
		for x := sx; x <= ex; x++ {
			e.paint(x, sy, hLineChar)
			if ey != sy {
				e.paint(x, ey, hLineChar)
			}
		}
	}
	if sy != ey {
		for y := sy; y <= ey; y++ {
			e.paint(sx, y, vLineChar)
			if ex != sx {
				e.paint(ex, y, vLineChar)
			}
		}
	}
	// Corners only when both spans are non-degenerate; a single row or
	// column stays a plain segment.
	if sx != ex && sy != ey {
		e.paint(sx, sy, cornerTopLeft)
		e.paint(ex, sy, cornerTopRight)
		e.paint(sx, ey, cornerBottomLeft)
		e.paint(ex, ey, cornerBottomRight)
	}
}

// rasterLine draws an elbow line between the anchor and (x1, y1). With
// horizontalFirst the horizontal run sits on the anchor row and the bend
// lands on the endpoint column; otherwise mirrored.
func (e *Engine) rasterLine(x1, y1 int) {
	x0, y0 := e.startX, e.startY
	sx, ex := minMax(x0, x1)
	sy, ey := minMax(y0, y1)

	if e.horizontalFirst {
		if sx != ex {
			for x := sx; x <= ex; x++ {
				e.paint(x, y0, hLineChar)
			}
		}
		if sy != ey {
			for y := sy; y <= ey; y++ {
				e.paint(x1, y, vLineChar)
			}
		}
		if sx != ex && sy != ey {
			e.paint(x1, y0, elbowGlyph(true, x1 > x0, y1 > y0))
		}
	} else {
		if sy != ey {
			for y := sy; y <= ey; y++ {
				e.paint(x0, y, vLineChar)
			}
		}
		if sx != ex {
			for x := sx; x <= ex; x++ {
				e.paint(x, y1, hLineChar)
			}
		}
		if sx != ex && sy != ey {
			e.paint(x0, y1, elbowGlyph(false, x1 > x0, y1 > y0))
		}
	}
}

// elbowGlyph picks the bend character for the drag-direction quadrant.
// The glyph must open toward both segments meeting at the bend.
func elbowGlyph(horizontalFirst, right, down bool) rune {
	if horizontalFirst {
		switch {
		case right && down:
			return cornerTopRight
		case right && !down:
			return cornerBottomRight
		case !right && down:
			return cornerTopLeft
		default:
			return cornerBottomLeft
		}
	}
	switch {
	case right && down:
		return cornerBottomLeft
	case right && !down:
		return cornerTopLeft
	case !right && down:
		return cornerBottomRight
	default:
		return cornerTopRight
	}
}

func minMax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
