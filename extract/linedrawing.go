package extract

import (
	"strings"
	"unicode/utf8"
)

// Art captured from VT100-era terminals draws boxes with the DEC Special
// Graphics set: plain ASCII letters shown as line segments while the
// alternate set is selected. decGraphics maps those letters to the Unicode
// code points that look the same.
var decGraphics = map[rune]rune{
	'`': '◆',
	'a': '▒',
	'f': '°',
	'g': '±',
	'h': '░',
	'j': '┘',
	'k': '┐',
	'l': '┌',
	'm': '└',
	'n': '┼',
	'o': '⎺',
	'p': '⎻',
	'q': '─',
	'r': '⎼',
	's': '⎽',
	't': '├',
	'u': '┤',
	'v': '┴',
	'w': '┬',
	'x': '│',
	'y': '≤',
	'z': '≥',
	'{': 'π',
	'|': '≠',
	'}': '£',
	'~': '·',
	'0': '█',
}

const (
	shiftOut = '\x0e' // SO, invoke the alternate set
	shiftIn  = '\x0f' // SI, back to ASCII
)

const (
	designateGraphics = "\x1b(0"
	designateASCII    = "\x1b(B"
)

// LineDrawing replaces DEC Special Graphics runs with Unicode. A run starts
// at SO or ESC ( 0 and ends at SI or ESC ( B; the control sequences
// themselves are dropped. A line break does not end a run. Text without
// those sequences is returned unchanged.
func LineDrawing(text string) string {
	if !strings.ContainsAny(text, string([]rune{shiftOut, shiftIn, '\x1b'})) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	alt := false
	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], designateGraphics):
			alt = true
			i += len(designateGraphics)
			continue
		case strings.HasPrefix(text[i:], designateASCII):
			alt = false
			i += len(designateASCII)
			continue
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		switch r {
		case shiftOut:
			alt = true
			continue
		case shiftIn:
			alt = false
			continue
		}
		if alt {
			if g, ok := decGraphics[r]; ok {
				r = g
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
