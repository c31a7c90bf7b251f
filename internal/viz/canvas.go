package viz

import "strings"

// Braille cells pack 2x4 sub-pixels per terminal cell, unicode offset
// 0x2800:
//
//	1 4
//	2 5
//	3 6
//	7 8
var dotMask = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille sub-pixel drawing surface of Width x Height terminal
// cells.
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	return c
}

// Set turns on the sub-pixel at (x, y). The drawable area is (Width*2) x
// (Height*4) sub-pixels; out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= dotMask[y%4][x%2]
}

// Clear resets every cell.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
