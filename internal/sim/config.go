package sim

import "fmt"

// Coloring selects how the analysis pass maps blocks to pixels.
type Coloring int

const (
	// ColoringDensity renders particle density in grayscale.
	ColoringDensity Coloring = iota
	// ColoringVelocity renders transport direction as hue, magnitude as
	// saturation and value.
	ColoringVelocity
)

// String returns the flag-friendly name of the policy.
func (c Coloring) String() string {
	switch c {
	case ColoringDensity:
		return "density"
	case ColoringVelocity:
		return "velocity"
	}
	return fmt.Sprintf("Coloring(%d)", int(c))
}

// ParseColoring maps a flag value to a Coloring.
func ParseColoring(s string) (Coloring, error) {
	switch s {
	case "density":
		return ColoringDensity, nil
	case "velocity":
		return ColoringVelocity, nil
	}
	return 0, fmt.Errorf("unknown coloring %q (want density or velocity)", s)
}

// Config describes one simulation run. Treat it as immutable once validated.
type Config struct {
	Width  int
	Height int
	// Downscale is the block edge length for the analysis pass; one image
	// pixel covers Downscale x Downscale cells. It must divide both grid
	// dimensions.
	Downscale  int
	Iterations int
	// FrameSkip is the step interval between rendered frames.
	FrameSkip int
	Coloring  Coloring
	Seed      int64
	// Workers bounds the goroutines used per update step; values below 2
	// run the step on the calling goroutine.
	Workers int

	// EdgeBoundary closes the domain into a box of wall cells.
	EdgeBoundary bool
	// InitialFill is the whole-domain background occupation probability
	// applied once at reset.
	InitialFill float64
	// InitialRegions are extra one-time fills applied at reset, after the
	// background fill.
	InitialRegions []Source
	// Sources are reapplied before every step.
	Sources []Source
}

// DefaultConfig returns the standard configuration: a closed box with a
// thin background gas and a dense square seed in the middle.
func DefaultConfig() Config {
	return Config{
		Width:        512,
		Height:       512,
		Downscale:    4,
		Iterations:   1000,
		FrameSkip:    20,
		Coloring:     ColoringVelocity,
		Seed:         42,
		EdgeBoundary: true,
		InitialFill:  0.25,
		InitialRegions: []Source{
			{X: 192, Y: 192, W: 128, H: 128, Density: 1.0},
		},
	}
}

// Validate reports the first contract violation in the configuration.
// Violations are misconfigured simulations, never runtime conditions, so
// callers should treat an error as fatal.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions %dx%d must be positive", c.Width, c.Height)
	}
	if c.Downscale <= 0 {
		return fmt.Errorf("downscale %d must be positive", c.Downscale)
	}
	if c.Width%c.Downscale != 0 || c.Height%c.Downscale != 0 {
		return fmt.Errorf("downscale %d must divide grid dimensions %dx%d", c.Downscale, c.Width, c.Height)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations %d must not be negative", c.Iterations)
	}
	if c.FrameSkip <= 0 {
		return fmt.Errorf("frameskip %d must be positive", c.FrameSkip)
	}
	if c.Coloring != ColoringDensity && c.Coloring != ColoringVelocity {
		return fmt.Errorf("invalid coloring %d", int(c.Coloring))
	}
	if c.InitialFill < 0 || c.InitialFill > 1 {
		return fmt.Errorf("initial fill %v outside [0, 1]", c.InitialFill)
	}
	for _, s := range c.InitialRegions {
		if err := c.checkSource(s); err != nil {
			return fmt.Errorf("initial region: %w", err)
		}
	}
	for _, s := range c.Sources {
		if err := c.checkSource(s); err != nil {
			return fmt.Errorf("source: %w", err)
		}
	}
	return nil
}

func (c Config) checkSource(s Source) error {
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("region %dx%d must be positive", s.W, s.H)
	}
	if s.X < 0 || s.Y < 0 || s.X+s.W > c.Width || s.Y+s.H > c.Height {
		return fmt.Errorf("region (%d, %d) %dx%d outside %dx%d grid", s.X, s.Y, s.W, s.H, c.Width, c.Height)
	}
	if s.Density < 0 || s.Density > 1 {
		return fmt.Errorf("density %v outside [0, 1]", s.Density)
	}
	return nil
}
