package render

import (
	"fmt"

	"lgca/internal/sim"
)

// FrameSize returns the pixel dimensions of a frame rendered from g at the
// given downscale.
func FrameSize(g *sim.Grid, downscale int) (w, h int) {
	return g.W / downscale, g.H / downscale
}

// Frame renders the grid into a packed row-major RGB8 buffer, one pixel per
// downscale x downscale block.
func Frame(g *sim.Grid, downscale int, coloring sim.Coloring) []byte {
	w, h := FrameSize(g, downscale)
	buf := make([]byte, w*h*3)
	FrameInto(buf, g, downscale, coloring)
	return buf
}

// FrameInto renders into a caller-owned buffer of exactly width*height*3
// bytes. The pixel for block (bx, by) sits at (by*width + bx)*3, so the
// buffer matches the width/height handed to the image encoder. The grid
// dimensions must be multiples of downscale.
func FrameInto(buf []byte, g *sim.Grid, downscale int, coloring sim.Coloring) {
	w, h := FrameSize(g, downscale)
	if g.W%downscale != 0 || g.H%downscale != 0 {
		panic(fmt.Sprintf("render: downscale %d does not divide %dx%d grid", downscale, g.W, g.H))
	}
	if len(buf) != w*h*3 {
		panic(fmt.Sprintf("render: frame buffer is %d bytes, want %d", len(buf), w*h*3))
	}
	for by := 0; by < h; by++ {
		for bx := 0; bx < w; bx++ {
			block := BlockAt(g, bx, by, downscale)
			var px RGB8
			switch coloring {
			case sim.ColoringDensity:
				px = DensityColor(block, downscale)
			default:
				px = VelocityColor(block, downscale)
			}
			i := (by*w + bx) * 3
			buf[i+0] = px.R
			buf[i+1] = px.G
			buf[i+2] = px.B
		}
	}
}

// ExpandRGBA widens a packed RGB buffer into opaque RGBA pixels in dst.
// dst must hold 4 bytes for every 3 bytes of rgb.
func ExpandRGBA(dst, rgb []byte) {
	n := len(rgb) / 3
	for i := 0; i < n; i++ {
		dst[i*4+0] = rgb[i*3+0]
		dst[i*4+1] = rgb[i*3+1]
		dst[i*4+2] = rgb[i*3+2]
		dst[i*4+3] = 0xff
	}
}
