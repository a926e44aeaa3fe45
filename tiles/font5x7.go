package tiles

import "fmt"

const (
	GlyphWidth  = 5
	GlyphHeight = 7
)

// Font5x7 is the default glyph table: ASCII letters, digits, punctuation,
// the light and double box-drawing set and the shade blocks. It is frozen
// at init; build a new table and Merge it to extend it.
var Font5x7 = NewGlyphTable(GlyphWidth, GlyphHeight)

// Default draws with Font5x7, falling back to the light box-drawing glyphs
// for their heavy and rounded variants. Frozen at init.
var Default = NewRemap(Font5x7)

var boxAliases = map[rune]rune{
	'━': '─', '┃': '│',
	'┏': '┌', '┓': '┐', '┗': '└', '┛': '┘',
	'╭': '┌', '╮': '┐', '╰': '└', '╯': '┘',
	'┣': '├', '┫': '┤', '┳': '┬', '┻': '┴', '╋': '┼',
}

func init() {
	for r, rows := range font5x7 {
		if err := Font5x7.Add(r, rows...); err != nil {
			panic(fmt.Sprintf("font5x7: %v", err))
		}
	}
	for from, to := range boxAliases {
		if err := Default.Alias(from, to); err != nil {
			panic(fmt.Sprintf("font5x7: %v", err))
		}
	}
	Default.Freeze()
}

var font5x7 = map[rune][]string{
	'A': {".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'B': {"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####."},
	'C': {".###.", "#...#", "#....", "#....", "#....", "#...#", ".###."},
	'D': {"###..", "#..#.", "#...#", "#...#", "#...#", "#..#.", "###.."},
	'E': {"#####", "#....", "#....", "####.", "#....", "#....", "#####"},
	'F': {"#####", "#....", "#....", "####.", "#....", "#....", "#...."},
	'G': {".###.", "#...#", "#....", "#.###", "#...#", "#...#", ".####"},
	'H': {"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'I': {".###.", "..#..", "..#..", "..#..", "..#..", "..#..", ".###."},
	'J': {"..###", "...#.", "...#.", "...#.", "...#.", "#..#.", ".##.."},
	'K': {"#...#", "#..#.", "#.#..", "##...", "#.#..", "#..#.", "#...#"},
	'L': {"#....", "#....", "#....", "#....", "#....", "#....", "#####"},
	'M': {"#...#", "##.##", "#.#.#", "#.#.#", "#...#", "#...#", "#...#"},
	'N': {"#...#", "#...#", "##..#", "#.#.#", "#..##", "#...#", "#...#"},
	'O': {".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'P': {"####.", "#...#", "#...#", "####.", "#....", "#....", "#...."},
	'Q': {".###.", "#...#", "#...#", "#...#", "#.#.#", "#..#.", ".##.#"},
	'R': {"####.", "#...#", "#...#", "####.", "#.#..", "#..#.", "#...#"},
	'S': {".####", "#....", "#....", ".###.", "....#", "....#", "####."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'V': {"#...#", "#...#", "#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W': {"#...#", "#...#", "#...#", "#.#.#", "#.#.#", "#.#.#", ".#.#."},
	'X': {"#...#", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "#...#"},
	'Y': {"#...#", "#...#", ".#.#.", "..#..", "..#..", "..#..", "..#.."},
	'Z': {"#####", "....#", "...#.", "..#..", ".#...", "#....", "#####"},

	'a': {".....", ".....", ".###.", "....#", ".####", "#...#", ".####"},
	'b': {"#....", "#....", "#.##.", "##..#", "#...#", "#...#", "####."},
	'c': {".....", ".....", ".###.", "#....", "#....", "#...#", ".###."},
	'd': {"....#", "....#", ".##.#", "#..##", "#...#", "#...#", ".####"},
	'e': {".....", ".....", ".###.", "#...#", "#####", "#....", ".###."},
	'f': {"..##.", ".#..#", ".#...", "###..", ".#...", ".#...", ".#..."},
	'g': {".....", ".####", "#...#", "#...#", ".####", "....#", ".###."},
	'h': {"#....", "#....", "#.##.", "##..#", "#...#", "#...#", "#...#"},
	'i': {"..#..", ".....", ".##..", "..#..", "..#..", "..#..", ".###."},
	'j': {"...#.", ".....", "..##.", "...#.", "...#.", "#..#.", ".##.."},
	'k': {"#....", "#....", "#..#.", "#.#..", "##...", "#.#..", "#..#."},
	'l': {".##..", "..#..", "..#..", "..#..", "..#..", "..#..", ".###."},
	'm': {".....", ".....", "##.#.", "#.#.#", "#.#.#", "#...#", "#...#"},
	'n': {".....", ".....", "#.##.", "##..#", "#...#", "#...#", "#...#"},
	'o': {".....", ".....", ".###.", "#...#", "#...#", "#...#", ".###."},
	'p': {".....", ".....", "####.", "#...#", "####.", "#....", "#...."},
	'q': {".....", ".....", ".##.#", "#..##", ".####", "....#", "....#"},
	'r': {".....", ".....", "#.##.", "##..#", "#....", "#....", "#...."},
	's': {".....", ".....", ".###.", "#....", ".###.", "....#", "####."},
	't': {".#...", ".#...", "###..", ".#...", ".#...", ".#..#", "..##."},
	'u': {".....", ".....", "#...#", "#...#", "#...#", "#..##", ".##.#"},
	'v': {".....", ".....", "#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'w': {".....", ".....", "#...#", "#...#", "#.#.#", "#.#.#", ".#.#."},
	'x': {".....", ".....", "#...#", ".#.#.", "..#..", ".#.#.", "#...#"},
	'y': {".....", ".....", "#...#", "#...#", ".####", "....#", ".###."},
	'z': {".....", ".....", "#####", "...#.", "..#..", ".#...", "#####"},

	'0': {".###.", "#...#", "#..##", "#.#.#", "##..#", "#...#", ".###."},
	'1': {"..#..", ".##..", "..#..", "..#..", "..#..", "..#..", ".###."},
	'2': {".###.", "#...#", "....#", "...#.", "..#..", ".#...", "#####"},
	'3': {"#####", "...#.", "..#..", "...#.", "....#", "#...#", ".###."},
	'4': {"...#.", "..##.", ".#.#.", "#..#.", "#####", "...#.", "...#."},
	'5': {"#####", "#....", "####.", "....#", "....#", "#...#", ".###."},
	'6': {"..##.", ".#...", "#....", "####.", "#...#", "#...#", ".###."},
	'7': {"#####", "....#", "...#.", "..#..", ".#...", ".#...", ".#..."},
	'8': {".###.", "#...#", "#...#", ".###.", "#...#", "#...#", ".###."},
	'9': {".###.", "#...#", "#...#", ".####", "....#", "...#.", ".##.."},

	'.':  {".....", ".....", ".....", ".....", ".....", ".....", "..#.."},
	',':  {".....", ".....", ".....", ".....", "..#..", "..#..", ".#..."},
	'!':  {"..#..", "..#..", "..#..", "..#..", "..#..", ".....", "..#.."},
	'?':  {".###.", "#...#", "....#", "...#.", "..#..", ".....", "..#.."},
	':':  {".....", ".....", "..#..", ".....", ".....", "..#..", "....."},
	';':  {".....", ".....", "..#..", ".....", "..#..", "..#..", ".#..."},
	'\'': {"..#..", "..#..", ".....", ".....", ".....", ".....", "....."},
	'"':  {".#.#.", ".#.#.", ".....", ".....", ".....", ".....", "....."},
	'`':  {".#...", "..#..", ".....", ".....", ".....", ".....", "....."},
	'-':  {".....", ".....", ".....", "#####", ".....", ".....", "....."},
	'_':  {".....", ".....", ".....", ".....", ".....", ".....", "#####"},
	'+':  {".....", "..#..", "..#..", "#####", "..#..", "..#..", "....."},
	'=':  {".....", ".....", "#####", ".....", "#####", ".....", "....."},
	'*':  {".....", "..#..", "#.#.#", ".###.", "#.#.#", "..#..", "....."},
	'/':  {".....", "....#", "...#.", "..#..", ".#...", "#....", "....."},
	'\\': {".....", "#....", ".#...", "..#..", "...#.", "....#", "....."},
	'|':  {"..#..", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'(':  {"...#.", "..#..", ".#...", ".#...", ".#...", "..#..", "...#."},
	')':  {".#...", "..#..", "...#.", "...#.", "...#.", "..#..", ".#..."},
	'[':  {".###.", ".#...", ".#...", ".#...", ".#...", ".#...", ".###."},
	']':  {".###.", "...#.", "...#.", "...#.", "...#.", "...#.", ".###."},
	'{':  {"...#.", "..#..", "..#..", ".#...", "..#..", "..#..", "...#."},
	'}':  {".#...", "..#..", "..#..", "...#.", "..#..", "..#..", ".#..."},
	'<':  {"...#.", "..#..", ".#...", "#....", ".#...", "..#..", "...#."},
	'>':  {".#...", "..#..", "...#.", "....#", "...#.", "..#..", ".#..."},
	'#':  {".#.#.", ".#.#.", "#####", ".#.#.", "#####", ".#.#.", ".#.#."},
	'@':  {".###.", "#...#", "....#", ".##.#", "#.#.#", "#.#.#", ".###."},
	'$':  {"..#..", ".####", "#.#..", ".###.", "..#.#", "####.", "..#.."},
	'%':  {"##...", "##..#", "...#.", "..#..", ".#...", "#..##", "...##"},
	'&':  {".##..", "#..#.", "#.#..", ".#...", "#.#.#", "#..#.", ".##.#"},
	'^':  {"..#..", ".#.#.", "#...#", ".....", ".....", ".....", "....."},
	'~':  {".....", ".....", ".#...", "#.#.#", "...#.", ".....", "....."},

	'─': {".....", ".....", ".....", "#####", ".....", ".....", "....."},
	'│': {"..#..", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'┌': {".....", ".....", ".....", "..###", "..#..", "..#..", "..#.."},
	'┐': {".....", ".....", ".....", "###..", "..#..", "..#..", "..#.."},
	'└': {"..#..", "..#..", "..#..", "..###", ".....", ".....", "....."},
	'┘': {"..#..", "..#..", "..#..", "###..", ".....", ".....", "....."},
	'├': {"..#..", "..#..", "..#..", "..###", "..#..", "..#..", "..#.."},
	'┤': {"..#..", "..#..", "..#..", "###..", "..#..", "..#..", "..#.."},
	'┬': {".....", ".....", ".....", "#####", "..#..", "..#..", "..#.."},
	'┴': {"..#..", "..#..", "..#..", "#####", ".....", ".....", "....."},
	'┼': {"..#..", "..#..", "..#..", "#####", "..#..", "..#..", "..#.."},
	'═': {".....", ".....", "#####", ".....", "#####", ".....", "....."},
	'║': {".#.#.", ".#.#.", ".#.#.", ".#.#.", ".#.#.", ".#.#.", ".#.#."},
	'╔': {".....", ".....", ".####", ".#...", ".#.##", ".#.#.", ".#.#."},
	'╗': {".....", ".....", "####.", "...#.", "##.#.", ".#.#.", ".#.#."},
	'╚': {".#.#.", ".#.#.", ".#.##", ".#...", ".####", ".....", "....."},
	'╝': {".#.#.", ".#.#.", "##.#.", "...#.", "####.", ".....", "....."},

	'█': {"#####", "#####", "#####", "#####", "#####", "#####", "#####"},
	'▓': {"#####", ".#.#.", "#####", ".#.#.", "#####", ".#.#.", "#####"},
	'▒': {"#.#.#", ".#.#.", "#.#.#", ".#.#.", "#.#.#", ".#.#.", "#.#.#"},
	'░': {"#.#.#", ".....", "#.#.#", ".....", "#.#.#", ".....", "#.#.#"},
}
