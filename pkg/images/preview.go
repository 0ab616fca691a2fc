package images

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Preview renders img as width terminal cells per row using upper half
// blocks, two pixel rows per line. The aspect ratio is kept.
func Preview(img image.Image, width int) string {
	b := img.Bounds()
	if width <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}
	if width > b.Dx() {
		width = b.Dx()
	}

	rows := b.Dy() * width / b.Dx()
	if rows < 2 {
		rows = 2
	}
	if rows%2 == 1 {
		rows++
	}

	var sb strings.Builder
	for y := 0; y < rows; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			top := sample(img, x, y, width, rows)
			bottom := sample(img, x, y+1, width, rows)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render("▀"))
		}
	}
	return sb.String()
}

// sample maps cell coordinates onto the source with nearest neighbour
func sample(img image.Image, x, y, width, rows int) lipgloss.Color {
	b := img.Bounds()
	sx := b.Min.X + x*b.Dx()/width
	sy := b.Min.Y + y*b.Dy()/rows
	r, g, bl, _ := img.At(sx, sy).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8))
}
