package canvas

import (
	"image"
	"image/color"
	"strings"
)

// Braille cells are 2 pixels wide and 4 pixels high.
const (
	CellWidth  = 2
	CellHeight = 4
)

// brailleDots maps a pixel offset inside a cell to its dot bit.
var brailleDots = [CellHeight][CellWidth]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille converts img into rows of braille characters, one character per
// 2x4 pixel cell. A pixel is set when its luminance is at least threshold
// (0-0xffff).
func Braille(img image.Image, threshold uint32) string {
	b := img.Bounds()
	cols := (b.Dx() + CellWidth - 1) / CellWidth
	rows := (b.Dy() + CellHeight - 1) / CellHeight

	var sb strings.Builder
	sb.Grow(rows * (cols*3 + 1))
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			r := rune(0x2800)
			for dy := 0; dy < CellHeight; dy++ {
				for dx := 0; dx < CellWidth; dx++ {
					x := b.Min.X + col*CellWidth + dx
					y := b.Min.Y + row*CellHeight + dy
					if x >= b.Max.X || y >= b.Max.Y {
						continue
					}
					if luminance(img.At(x, y)) >= threshold {
						r |= brailleDots[dy][dx]
					}
				}
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func luminance(c color.Color) uint32 {
	return color.Gray16Model.Convert(c).(color.Gray16).Y
}
