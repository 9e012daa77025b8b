package utils

import (
	"image/color"
	"testing"
)

func TestBlendRGBA(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	tests := []struct {
		name string
		t    float64
		want uint8
	}{
		{"t=0 返回起点", 0, 0},
		{"t=1 返回终点", 1, 255},
		{"中点", 0.5, 128},
		{"超出范围截断", 3, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlendRGBA(black, white, tt.t)
			if diff := int(got.R) - int(tt.want); diff < -1 || diff > 1 {
				t.Errorf("BlendRGBA(t=%v).R = %d, want ~%d", tt.t, got.R, tt.want)
			}
			if got.A != 255 {
				t.Errorf("alpha = %d, want 255", got.A)
			}
		})
	}
}

func TestLighten(t *testing.T) {
	base := color.RGBA{R: 240, G: 230, B: 210, A: 255}

	if got := Lighten(base, 0); got != base {
		t.Errorf("Lighten(0) = %+v, want %+v", got, base)
	}

	lighter := Lighten(base, 0.35)
	if lighter.R < base.R || lighter.G <= base.G || lighter.B <= base.B {
		t.Errorf("Lighten(0.35) = %+v, expected lighter than %+v", lighter, base)
	}
}
