package systems

import (
	"github.com/decker502/thiep2010/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// FigureRenderSystem 人物与花朵渲染系统
// 人物姿态固定，只有持花手臂和花瓣随时间变化
type FigureRenderSystem struct {
	theme  *CardTheme
	anchor types.Point
}

// NewFigureRenderSystem 创建人物渲染系统
//
// 参数:
//   - theme: 共享主题
//   - anchor: 人物脚踝位置
func NewFigureRenderSystem(theme *CardTheme, anchor types.Point) *FigureRenderSystem {
	return &FigureRenderSystem{theme: theme, anchor: anchor}
}

// Draw 绘制 elapsed 时刻的人物
func (s *FigureRenderSystem) Draw(screen *ebiten.Image, elapsed float64) {
	p := s.theme.Palette
	fig := FigurePose(s.anchor, elapsed)

	strokeCircle(screen, fig.Head, outlineWidth, p.Figure)
	strokeSegment(screen, fig.Body, outlineWidth, p.Figure)
	for _, leg := range fig.Legs {
		strokeSegment(screen, leg, outlineWidth, p.Figure)
	}
	strokeSegment(screen, fig.LeftArm, outlineWidth, p.Figure)
	strokeSegment(screen, fig.RightArm, outlineWidth, p.Figure)

	// 花瓣两色交替
	for i, petal := range fig.Petals {
		clr := p.PetalA
		if i%2 == 1 {
			clr = p.PetalB
		}
		fillCircle(screen, petal, clr)
	}
	fillCircle(screen, fig.Flower, p.FlowerCenter)
	strokeSegment(screen, fig.Stem, stemWidth, p.Stem)

	// 领结
	fillCircle(screen, fig.Bow, p.Accent)
}
