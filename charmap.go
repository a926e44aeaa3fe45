package artraster

import "maps"

// CharacterMap assigns every rune a brightness between 0 and 255. It is
// built once and only read afterwards, so one map can serve any number of
// concurrent renders.
type CharacterMap struct {
	table map[rune]uint8
}

// DefaultCharacterMap is the stock brightness table.
var DefaultCharacterMap = &CharacterMap{table: defaultBrightness()}

// NewCharacterMap copies the default table and applies overrides on top.
func NewCharacterMap(overrides map[rune]uint8) *CharacterMap {
	table := maps.Clone(DefaultCharacterMap.table)
	maps.Copy(table, overrides)
	return &CharacterMap{table: table}
}

// Brightness is total: runes missing from the table fall back to their code
// point modulo 256.
func (cm *CharacterMap) Brightness(r rune) uint8 {
	if v, ok := cm.table[r]; ok {
		return v
	}
	return uint8(min(255, uint32(r)%256))
}

// Has reports whether r has an explicit entry.
func (cm *CharacterMap) Has(r rune) bool {
	_, ok := cm.table[r]
	return ok
}

const (
	alnumBrightness = 180
	boxBrightness   = 200
	denseStep       = 10
)

var whitespace = []rune{' ', '\t', '\n', '\r', '\v', '\f', '\u00a0'}

// dense glyphs get 255, 245, 235, ... in this order.
var dense = []rune{'@', '#', '$', '%', '&', '*', '+', '=', '~', '█', '▓', '▒', '░'}

var punctuation = map[rune]uint8{
	'.': 40, ',': 40, '\'': 30, '`': 30,
	':': 60, '"': 60, ';': 70, '-': 70, '_': 70,
	'^': 50, '!': 90, '(': 90, ')': 90, '<': 90, '>': 90,
	'|': 100, '/': 100, '\\': 100,
	'[': 110, ']': 110, '{': 110, '}': 110,
	'?': 120,
}

func defaultBrightness() map[rune]uint8 {
	table := make(map[rune]uint8, 256)
	for r := 'A'; r <= 'Z'; r++ {
		table[r] = alnumBrightness
		table[r+'a'-'A'] = alnumBrightness
	}
	for r := '0'; r <= '9'; r++ {
		table[r] = alnumBrightness
	}
	// U+2500..U+257F, the box drawing block
	for r := '─'; r <= '╿'; r++ {
		table[r] = boxBrightness
	}
	maps.Copy(table, punctuation)
	for i, r := range dense {
		table[r] = uint8(255 - i*denseStep)
	}
	for _, r := range whitespace {
		table[r] = 0
	}
	return table
}
