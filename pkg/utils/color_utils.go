package utils

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// BlendRGBA 在 a 与 b 之间按 t 进行 RGB 线性混合
// 结果保持 a 的 alpha；t 被截断到 [0, 1]
func BlendRGBA(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendRgb(cb, Clamp01(t)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: a.A}
}

// Lighten 将颜色向白色混合 t
func Lighten(c color.RGBA, t float64) color.RGBA {
	return BlendRGBA(c, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, t)
}
