package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// Screen layout: toolbox on the left, bordered canvas next to it, status
// line underneath. The canvas content starts one column past the toolbox
// (left border) and one row down (top border); mouse coordinates are
// translated against this origin before they reach the engine.
const (
	toolboxWidth  = 16
	canvasOriginX = toolboxWidth + 1
	canvasOriginY = 1
)

var (
	toolboxStyle      = lipgloss.NewStyle().Width(toolboxWidth).Padding(0, 1)
	toolboxTitleStyle = lipgloss.NewStyle().Bold(true)
	toolStyle         = lipgloss.NewStyle()
	activeToolStyle   = lipgloss.NewStyle().Reverse(true).Bold(true)
	canvasStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	statusStyle       = lipgloss.NewStyle().Faint(true)
)

type model struct {
	width  int
	height int

	engine *Engine
	mode   Mode

	picker    brushPicker
	textInput string

	filename      string
	fileOp        FileOperation
	confirmAction ConfirmAction

	errorMessage   string
	successMessage string

	config *Config
}

func initialModel() model {
	config := loadConfig()
	engine := NewEngine(NewGrid())
	engine.SetBrush(config.Brush)
	return model{
		engine: engine,
		mode:   ModeDraw,
		config: config,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch m.mode {
	case ModeDraw:
		return m.handleDrawKey(msg)
	case ModeTextInput:
		return m.handleTextInputKey(msg)
	case ModeBrushPicker:
		return m.handlePickerKey(msg)
	case ModeFileInput:
		return m.handleFileInputKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

func (m model) handleDrawKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "p":
		m.engine.SetTool(ToolPencil)
	case "e":
		m.engine.SetTool(ToolEraser)
	case "r":
		m.engine.SetTool(ToolRectangle)
	case "l":
		m.engine.SetTool(ToolLine)
	case "t":
		m.engine.SetTool(ToolText)
	case "b":
		m.picker = newBrushPicker(m.engine.Brush())
		m.mode = ModeBrushPicker
	case "c":
		if err := m.copyCanvasToClipboard(); err != nil {
			m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		} else {
			m.successMessage = "Canvas copied to clipboard"
		}
	case "s":
		m.mode = ModeFileInput
		m.fileOp = FileOpSaveTXT
		m.filename = "drawing.txt"
	case "i":
		m.mode = ModeFileInput
		m.fileOp = FileOpSavePNG
		m.filename = "drawing.png"
	case "n":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClear
		} else {
			m.clearCanvas()
		}
	}
	return m, nil
}

func (m model) handleTextInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.engine.PendingText()
	if pending == nil {
		m.mode = ModeDraw
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.engine.CancelText()
		m.textInput = ""
		m.mode = ModeDraw
	case "enter":
		m.commitTextInput()
	case "backspace":
		if len(m.textInput) > 0 {
			runes := []rune(m.textInput)
			m.textInput = string(runes[:len(runes)-1])
		}
	case "ctrl+v":
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = fmt.Sprintf("clipboard: %v", err)
			return m, nil
		}
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			text = text[:idx]
		}
		m.textInput = truncateRunes(m.textInput+text, pending.MaxLen)
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			input := string(msg.Runes)
			if msg.Type == tea.KeySpace {
				input = " "
			}
			m.textInput = truncateRunes(m.textInput+input, pending.MaxLen)
		}
	}
	return m, nil
}

func (m *model) commitTextInput() {
	m.engine.CommitText(m.textInput)
	m.textInput = ""
	m.mode = ModeDraw
}

func (m model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeDraw
	case "enter":
		m.engine.SetBrush(m.picker.Selected())
		m.mode = ModeDraw
	case "up", "k":
		m.picker.moveCursor(0, -1)
	case "down", "j":
		m.picker.moveCursor(0, 1)
	case "left", "h":
		m.picker.moveCursor(-1, 0)
	case "right", "l":
		m.picker.moveCursor(1, 0)
	}
	return m, nil
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeDraw
		m.filename = ""
	case "enter":
		if m.filename == "" {
			m.errorMessage = "filename required"
			return m, nil
		}
		path := m.config.GetSavePath(m.filename)
		if m.config.Confirmations {
			if _, err := os.Stat(path); err == nil {
				m.mode = ModeConfirm
				m.confirmAction = ConfirmOverwriteFile
				return m, nil
			}
		}
		m.performSave()
	case "backspace":
		if len(m.filename) > 0 {
			runes := []rune(m.filename)
			m.filename = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.filename += string(msg.Runes)
		}
	}
	return m, nil
}

func (m *model) performSave() {
	path := m.config.GetSavePath(m.filename)
	var err error
	switch m.fileOp {
	case FileOpSaveTXT:
		err = m.saveVisualTXT(path)
	case FileOpSavePNG:
		err = m.savePNG(path)
	}
	if err != nil {
		m.errorMessage = err.Error()
	} else {
		m.successMessage = fmt.Sprintf("Saved %s", path)
	}
	m.mode = ModeDraw
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmClear:
			m.clearCanvas()
			m.mode = ModeDraw
		case ConfirmOverwriteFile:
			m.performSave()
		}
	case "n", "N", "esc":
		m.mode = ModeDraw
	}
	return m, nil
}

func (m *model) clearCanvas() {
	m.engine.Grid().Replace(NewGrid())
	m.successMessage = "Canvas cleared"
}

// handleMouse translates screen coordinates into canvas cells and drives
// the engine's gesture events. Coordinates outside the canvas are never
// forwarded; a drag that crosses the border delivers Leave instead.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cx := msg.X - canvasOriginX
	cy := msg.Y - canvasOriginY
	inside := cx >= 0 && cx < gridWidth && cy >= 0 && cy < gridHeight

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		// Clicking elsewhere while typing is a focus loss: the pending
		// insertion commits before the new press is interpreted.
		if m.mode == ModeTextInput {
			m.commitTextInput()
		}
		if m.mode != ModeDraw || !inside {
			return m, nil
		}
		m.errorMessage = ""
		m.successMessage = ""
		if err := m.engine.Press(cx, cy, msg.Alt); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		if m.engine.PendingText() != nil {
			m.mode = ModeTextInput
			m.textInput = ""
		}
	case tea.MouseActionMotion:
		if m.mode != ModeDraw || !m.engine.Active() {
			return m, nil
		}
		if !inside {
			m.engine.Leave()
			return m, nil
		}
		if err := m.engine.Move(cx, cy); err != nil {
			m.errorMessage = err.Error()
		}
	case tea.MouseActionRelease:
		m.engine.Release()
	}
	return m, nil
}

func (m model) View() string {
	canvas := m.canvasLines()

	if m.mode == ModeTextInput {
		canvas = m.overlayTextPreview(canvas)
	}
	if m.mode == ModeBrushPicker {
		canvas = overlay(canvas, m.picker.render(), 2, 1)
	}

	toolbox := m.renderToolbox()
	board := canvasStyle.Render(strings.Join(canvas, "\n"))
	content := lipgloss.JoinHorizontal(lipgloss.Top, toolbox, board)

	m.engine.Grid().MarkClean()
	return content + "\n" + statusStyle.Render(m.statusLine())
}

func (m model) canvasLines() []string {
	return strings.Split(m.engine.Grid().String(), "\n")
}

// overlayTextPreview shows the in-progress text at its anchor with a
// block cursor. The engine stamps nothing until commit; this transient
// display is presentation-only.
func (m model) overlayTextPreview(canvas []string) []string {
	pending := m.engine.PendingText()
	if pending == nil {
		return canvas
	}
	preview := []rune(m.textInput)
	if len(preview) < pending.MaxLen {
		preview = append(preview, '█')
	}
	return overlay(canvas, []string{string(preview)}, pending.X, pending.Y)
}

// overlay splices a block of rune rows into canvas rows at (x, y),
// clipped to the canvas.
func overlay(canvas []string, block []string, x, y int) []string {
	out := make([]string, len(canvas))
	copy(out, canvas)
	for i, blockLine := range block {
		row := y + i
		if row < 0 || row >= len(out) {
			continue
		}
		line := []rune(out[row])
		for j, r := range []rune(blockLine) {
			col := x + j
			if col < 0 || col >= len(line) {
				continue
			}
			line[col] = r
		}
		out[row] = string(line)
	}
	return out
}

func (m model) renderToolbox() string {
	tools := []Tool{ToolPencil, ToolEraser, ToolRectangle, ToolLine, ToolText}
	keys := []string{"p", "e", "r", "l", "t"}

	var b strings.Builder
	b.WriteString(toolboxTitleStyle.Render("scrawl"))
	b.WriteString("\n\n")
	for i, tool := range tools {
		label := fmt.Sprintf("%s %s", keys[i], tool)
		if tool == ToolPencil {
			label = fmt.Sprintf("%s %s (%c)", keys[i], tool, m.engine.Brush())
		}
		if tool == m.engine.Tool() {
			b.WriteString(activeToolStyle.Render(label))
		} else {
			b.WriteString(toolStyle.Render(label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("b brush\n")
	b.WriteString("c copy\n")
	b.WriteString("s save txt\n")
	b.WriteString("i save png\n")
	b.WriteString("n clear\n")
	b.WriteString("q quit")
	return toolboxStyle.Render(b.String())
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeTextInput:
		return fmt.Sprintf("Mode: TEXT | %s█ | Enter=place, Ctrl+V=paste, Esc=cancel", m.textInput)
	case ModeBrushPicker:
		return fmt.Sprintf("Mode: BRUSH | Current: %c | arrows=move, Enter=select, Esc=cancel", m.picker.Selected())
	case ModeFileInput:
		var opStr string
		switch m.fileOp {
		case FileOpSaveTXT:
			opStr = "Save TXT"
		case FileOpSavePNG:
			opStr = "Export PNG"
		}
		if m.errorMessage != "" {
			return fmt.Sprintf("Mode: FILE | ERROR: %s | %s filename: %s | Enter=retry, Esc=cancel", m.errorMessage, opStr, m.filename)
		}
		return fmt.Sprintf("Mode: FILE | %s filename: %s | Enter=confirm, Esc=cancel", opStr, m.filename)
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit scrawl? (y/n)"
		case ConfirmClear:
			message = "Clear the canvas? Unsaved changes will be lost. (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
		}
		return fmt.Sprintf("Mode: CONFIRM | %s", message)
	default:
		status := fmt.Sprintf("Tool: %s", m.engine.Tool())
		if m.engine.Tool() == ToolPencil {
			status += fmt.Sprintf(" (%c)", m.engine.Brush())
		}
		if m.engine.Tool() == ToolLine {
			status += " | hold Alt: bend horizontal-first"
		}
		if m.successMessage != "" {
			status += fmt.Sprintf(" | %s", m.successMessage)
		}
		if m.errorMessage != "" {
			status += fmt.Sprintf(" | ERROR: %s", m.errorMessage)
		} else if m.successMessage == "" {
			status += " | drag to draw | q to quit"
		}
		return status
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
