package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

func (m *model) saveVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, m.engine.ExportText()); err != nil {
		return err
	}
	return nil
}

func (m *model) savePNG(filename string) error {
	return exportPNG(m.engine.Grid(), filename)
}

func exportPNG(grid *Grid, filename string) error {
	// Character cell dimensions (pixels per character)
	charWidth := 8.0
	charHeight := 16.0

	imageWidth := int(float64(gridWidth) * charWidth)
	imageHeight := int(float64(gridHeight) * charHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}

	fontSize := 12.0
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			r, err := grid.Get(x, y)
			if err != nil || r == blankChar {
				continue
			}
			px := float64(x) * charWidth
			py := float64(y+1) * charHeight
			dc.DrawString(string(r), px, py)
		}
	}

	return dc.SavePNG(filename)
}

func (m *model) copyCanvasToClipboard() error {
	return clipboard.WriteAll(m.engine.ExportText())
}

func readClipboardText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return cleanClipboardText(text), nil
}

// cleanClipboardText strips control characters and normalizes line breaks
// so pasted text is safe to stamp into grid cells.
func cleanClipboardText(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	normalized := result.String()
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = strings.ReplaceAll(normalized, "\t", " ")
	return normalized
}
