package main

const (
	gridWidth  = 80
	gridHeight = 24
)

type Tool int

const (
	ToolPencil Tool = iota
	ToolEraser
	ToolRectangle
	ToolLine
	ToolText
)

func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "Pencil"
	case ToolEraser:
		return "Eraser"
	case ToolRectangle:
		return "Rectangle"
	case ToolLine:
		return "Line"
	case ToolText:
		return "Text"
	}
	return "Unknown"
}

type Mode int

const (
	ModeDraw Mode = iota
	ModeTextInput
	ModeBrushPicker
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSaveTXT FileOperation = iota
	FileOpSavePNG
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmClear
	ConfirmOverwriteFile
)

const (
	blankChar    = ' '
	defaultBrush = 'x'
)

// Box-drawing glyphs shared by the rectangle and line rasterizers.
const (
	hLineChar         = '─'
	vLineChar         = '│'
	cornerTopLeft     = '┌'
	cornerTopRight    = '┐'
	cornerBottomLeft  = '└'
	cornerBottomRight = '┘'
)
