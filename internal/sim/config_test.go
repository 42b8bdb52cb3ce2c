package sim

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -8 }},
		{"zero downscale", func(c *Config) { c.Downscale = 0 }},
		{"downscale not dividing width", func(c *Config) { c.Downscale = 5 }},
		{"negative iterations", func(c *Config) { c.Iterations = -1 }},
		{"zero frameskip", func(c *Config) { c.FrameSkip = 0 }},
		{"invalid coloring", func(c *Config) { c.Coloring = Coloring(9) }},
		{"fill above one", func(c *Config) { c.InitialFill = 1.5 }},
		{"fill below zero", func(c *Config) { c.InitialFill = -0.1 }},
		{"source out of range", func(c *Config) {
			c.Sources = []Source{{X: 500, Y: 0, W: 64, H: 64, Density: 0.5}}
		}},
		{"source empty rect", func(c *Config) {
			c.Sources = []Source{{X: 0, Y: 0, W: 0, H: 4, Density: 0.5}}
		}},
		{"source density above one", func(c *Config) {
			c.Sources = []Source{{X: 0, Y: 0, W: 4, H: 4, Density: 1.1}}
		}},
		{"initial region out of range", func(c *Config) {
			c.InitialRegions = []Source{{X: -1, Y: 0, W: 4, H: 4, Density: 0.5}}
		}},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: Validate accepted the config", tc.name)
		}
	}
}

func TestParseColoring(t *testing.T) {
	if c, err := ParseColoring("density"); err != nil || c != ColoringDensity {
		t.Fatalf("density parsed to %v, %v", c, err)
	}
	if c, err := ParseColoring("velocity"); err != nil || c != ColoringVelocity {
		t.Fatalf("velocity parsed to %v, %v", c, err)
	}
	if _, err := ParseColoring("plasma"); err == nil {
		t.Fatal("unknown policy accepted")
	}
}
