package renderer

import "testing"

func TestLerpColor(t *testing.T) {
	tests := []struct {
		name    string
		t       float64
		r, g, b uint8
	}{
		{"t=0 is first color", 0, 128, 0, 128},
		{"t=1 is second color", 1, 0, 255, 255},
		{"t=0.5 is midpoint", 0.5, 64, 127, 191},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := LerpColor(NeonPurple, NeonCyan, tt.t)
			if c.R != tt.r || c.G != tt.g || c.B != tt.b {
				t.Errorf("LerpColor(purple, cyan, %v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.t, c.R, c.G, c.B, tt.r, tt.g, tt.b)
			}
			if c.A != 255 {
				t.Errorf("alpha = %d, want 255", c.A)
			}
		})
	}
}
