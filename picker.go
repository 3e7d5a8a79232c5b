package main

// brushPalette is the character table shown by the brush picker. Rows are
// grouped: box-drawing and arrows first, then punctuation, then letters
// and digits.
var brushPalette = [][]rune{
	{'┌', '┐', '└', '┘', '◀', '▶', '▲', '▼', '│', '─'},
	{'┬', '┴', '┤', '├', '┼', '+', '>', '<', '^', 'v'},
	{'.', ',', ':', ';', '!', '?', '"', '\'', '-', '_'},
	{'`', '=', '*', '&', '/', '\\', '|', '~', '@', '#'},
	{'$', '%', '(', ')', '[', ']', '{', '}', 'a', 'b'},
	{'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l'},
	{'m', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v'},
	{'w', 'x', 'y', 'z', 'A', 'B', 'C', 'D', 'E', 'F'},
	{'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P'},
	{'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z'},
	{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
}

type brushPicker struct {
	row, col int
}

// newBrushPicker opens the picker with the cursor on the current brush
// character, or at the top-left if the brush is not in the palette.
func newBrushPicker(current rune) brushPicker {
	for r, row := range brushPalette {
		for c, char := range row {
			if char == current {
				return brushPicker{row: r, col: c}
			}
		}
	}
	return brushPicker{}
}

func (p *brushPicker) moveCursor(dx, dy int) {
	p.col += dx
	p.row += dy
	if p.row < 0 {
		p.row = 0
	}
	if p.row >= len(brushPalette) {
		p.row = len(brushPalette) - 1
	}
	if p.col < 0 {
		p.col = 0
	}
	if p.col >= len(brushPalette[p.row]) {
		p.col = len(brushPalette[p.row]) - 1
	}
}

func (p *brushPicker) Selected() rune {
	return brushPalette[p.row][p.col]
}

// render returns the picker as plain rune rows (bordered, cursor cell
// bracketed) so it can be spliced into the canvas without escape codes
// confusing the column math.
func (p *brushPicker) render() []string {
	innerWidth := len(brushPalette[0])*3 + 1
	lines := make([]string, 0, len(brushPalette)+2)

	top := make([]rune, 0, innerWidth+2)
	top = append(top, cornerTopLeft)
	for i := 0; i < innerWidth; i++ {
		top = append(top, hLineChar)
	}
	top = append(top, cornerTopRight)
	lines = append(lines, string(top))

	for r, row := range brushPalette {
		line := make([]rune, 0, innerWidth+2)
		line = append(line, vLineChar, ' ')
		for c, char := range row {
			if r == p.row && c == p.col {
				line = append(line, '[', char, ']')
			} else {
				line = append(line, ' ', char, ' ')
			}
		}
		line = append(line, vLineChar)
		lines = append(lines, string(line))
	}

	bottom := make([]rune, 0, innerWidth+2)
	bottom = append(bottom, cornerBottomLeft)
	for i := 0; i < innerWidth; i++ {
		bottom = append(bottom, hLineChar)
	}
	bottom = append(bottom, cornerBottomRight)
	lines = append(lines, string(bottom))

	return lines
}
