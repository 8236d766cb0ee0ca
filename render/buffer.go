package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen is the subset of tcell.Screen the renderer writes to
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

var emptyCell = Cell{Rune: ' ', Style: tcell.StyleDefault.Background(RgbBackground)}

// RenderBuffer is a cell compositor flushed to the screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) Width() int  { return b.width }
func (b *RenderBuffer) Height() int { return b.height }

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set overwrites a cell, out of bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at (x, y), empty when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetString writes s from (x, y) advancing by display width, returns the columns used
func (b *RenderBuffer) SetString(x, y int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		b.Set(col, y, r, style)
		col += max(runewidth.RuneWidth(r), 1)
	}
	return col - x
}

// RowString returns row y as text, for tests and debug dumps
func (b *RenderBuffer) RowString(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x := range b.width {
		runes[x] = b.cells[y*b.width+x].Rune
	}
	return string(runes)
}

// Fill sets every cell of the rectangle
func (b *RenderBuffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, style)
		}
	}
}

// FlushToScreen copies every cell to the screen
func (b *RenderBuffer) FlushToScreen(s Screen) {
	for y := range b.height {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			s.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
