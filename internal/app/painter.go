//go:build ebiten

package app

import (
	"lgca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads packed RGB frames into a single reused ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w*h pixel frame.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the RGB frame and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, rgb []byte, scale int) {
	if len(rgb) != gp.w*gp.h*3 {
		return
	}
	render.ExpandRGBA(gp.buf, rgb)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
