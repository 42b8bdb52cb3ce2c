// Package encode persists rendered frames. The simulation core hands over a
// raw RGB buffer with its dimensions; everything about file formats stays
// on this side of the boundary.
package encode

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// FrameEncoder writes one RGB8 frame of the given size to dest.
type FrameEncoder interface {
	Encode(rgb []byte, width, height int, dest string) error
}

// PNG encodes frames as 8-bit-per-channel PNG files.
type PNG struct{}

// Encode writes the buffer to dest. The buffer must hold exactly
// width*height*3 bytes in row-major order.
func (PNG) Encode(rgb []byte, width, height int, dest string) error {
	if len(rgb) != width*height*3 {
		return fmt.Errorf("encode: frame buffer is %d bytes, want %d for %dx%d", len(rgb), width*height*3, width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4+0] = rgb[i*3+0]
		img.Pix[i*4+1] = rgb[i*3+1]
		img.Pix[i*4+2] = rgb[i*3+2]
		img.Pix[i*4+3] = 0xff
	}
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", dest, err)
	}
	return f.Close()
}
