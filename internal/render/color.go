package render

import "math"

// RGB8 is one output pixel.
type RGB8 struct {
	R, G, B uint8
}

// BoundaryColor is the fixed color for any block touching a wall cell.
// Walls must render solid, never blended with the surrounding gas.
var BoundaryColor = RGB8{}

// DensityColor maps a block's total occupancy to grayscale. The intensity
// is 63*total/(size*size) in integer math, so a fully occupied block (four
// particles per cell) lands at 252.
func DensityColor(b Block, size int) RGB8 {
	if b.Boundary > 0 {
		return BoundaryColor
	}
	v := uint8(63 * b.Total() / (size * size))
	return RGB8{v, v, v}
}

// VelocityColor maps a block's net transport to HSV: the flow direction
// picks the hue, the speed drives saturation and value. The cube root
// stretches slow flow into a visible dynamic range.
func VelocityColor(b Block, size int) RGB8 {
	if b.Boundary > 0 {
		return BoundaryColor
	}
	area := float64(size * size)
	fx := float64(b.Right-b.Left) / area
	fy := float64(b.Up-b.Down) / area
	speed := math.Cbrt(math.Sqrt(fx*fx+fy*fy) / math.Sqrt2)
	angle := math.Atan2(fx, fy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	hue := angle * 180 / math.Pi
	return hsv(hue, speed, speed)
}

// hsv converts hue in [0, 360) and saturation/value in [0, 1] to RGB8 using
// the six 60-degree sectors.
func hsv(h, s, v float64) RGB8 {
	c := s * v
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	case hp < 6:
		r, g, b = c, 0, x
	}
	m := v - c
	return RGB8{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
	}
}
