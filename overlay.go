package stlview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	titleMargin    = 6
	baseFontHeight = 13 // basicfont.Face7x13
)

var titleFace = text.NewGoXFace(basicfont.Face7x13)

// titlePosition returns the top left corner and scale that centre a title of
// the given unscaled width on the upper edge of a screen.
func titlePosition(screenWidth int, textWidth, fontSize float64) (x, y, scale float64) {
	scale = 1
	if fontSize > 0 {
		scale = fontSize / baseFontHeight
	}
	x = (float64(screenWidth) - textWidth*scale) / 2
	if x < 0 {
		x = 0
	}
	return x, titleMargin, scale
}

func drawTitle(screen *ebiten.Image, title string, fontSize float64, clr color.Color) {
	if title == "" {
		return
	}
	w, _ := text.Measure(title, titleFace, 0)
	x, y, scale := titlePosition(screen.Bounds().Dx(), w, fontSize)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, title, titleFace, op)
}

// statsLine is the text of the --stats overlay.
func statsLine(fps float64, faces int, distance float64, xLen, yLen, zLen float64) string {
	return fmt.Sprintf("FPS: %0.2f  Triangles: %d  Size: %.2f x %.2f x %.2f  Distance: %.2f",
		fps, faces, xLen, yLen, zLen, distance)
}

func drawStats(screen *ebiten.Image, msg string) {
	ebitenutil.DebugPrintAt(screen, msg, 4, screen.Bounds().Dy()-18)
}
