package artraster

import "image"

// IntensityRenderer paints each character as a solid square whose color
// comes from the character's brightness and the configured Mode.
type IntensityRenderer struct {
	conf Config
	cmap *CharacterMap
}

// NewIntensityRenderer validates conf. A nil cm uses DefaultCharacterMap.
func NewIntensityRenderer(conf Config, cm *CharacterMap) (*IntensityRenderer, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if cm == nil {
		cm = DefaultCharacterMap
	}
	return &IntensityRenderer{conf: conf, cmap: cm}, nil
}

func (ir *IntensityRenderer) Config() Config { return ir.conf }

func (ir *IntensityRenderer) Render(text string) (*Surface, error) {
	return ir.RenderGrid(NewTextGrid(text))
}

func (ir *IntensityRenderer) RenderGrid(g *TextGrid) (*Surface, error) {
	return render(ir, g)
}

// Size is columns*Block by rows*Block.
func (ir *IntensityRenderer) Size(g *TextGrid) image.Point {
	return g.Size().Mul(ir.conf.Block())
}

func (ir *IntensityRenderer) Draw(dst Canvas, origin image.Point, g *TextGrid) {
	dst = Offset(dst, origin)
	block := ir.conf.Block()
	cell := image.Rect(0, 0, block, block)
	fg, bg, mode := ir.conf.Foreground, ir.conf.Background, ir.conf.Mode

	dst.FillRect(image.Rectangle{Max: ir.Size(g)}, bg)
	for y := range g.Rows() {
		for x := range g.Columns() {
			r := g.At(x, y)
			dst.FillRect(cellRect(cell, x, y), mode.Fill(r, ir.cmap.Brightness(r), fg, bg))
		}
	}
}
