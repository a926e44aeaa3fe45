package artraster

import (
	"image"
	"strings"

	"github.com/sparques/artraster/extract"
)

// TextGrid is text split into rows of runes. Rows keep their own length;
// reading past the end of a short row yields a space.
type TextGrid struct {
	rows [][]rune
	cols int
}

// NewTextGrid splits text into rows with extract.Lines.
func NewTextGrid(text string) *TextGrid {
	return GridFromLines(extract.Lines(text))
}

func GridFromLines(lines []string) *TextGrid {
	g := &TextGrid{rows: make([][]rune, len(lines))}
	for i, l := range lines {
		g.rows[i] = []rune(l)
		g.cols = max(g.cols, len(g.rows[i]))
	}
	return g
}

func (g *TextGrid) Rows() int    { return len(g.rows) }
func (g *TextGrid) Columns() int { return g.cols }

// Size is the grid size in cells: X columns by Y rows.
func (g *TextGrid) Size() image.Point {
	return image.Pt(g.cols, len(g.rows))
}

// Empty is true when there is nothing to draw: no rows or no columns.
func (g *TextGrid) Empty() bool {
	return g.cols == 0 || len(g.rows) == 0
}

// At returns the rune in column x of row y, or a space past the end of the row.
func (g *TextGrid) At(x, y int) rune {
	if y < 0 || y >= len(g.rows) || x < 0 || x >= len(g.rows[y]) {
		return ' '
	}
	return g.rows[y][x]
}

func (g *TextGrid) String() string {
	var sb strings.Builder
	for i, row := range g.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
