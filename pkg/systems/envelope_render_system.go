package systems

import (
	"github.com/decker502/thiep2010/pkg/config"
	"github.com/decker502/thiep2010/pkg/types"
	"github.com/decker502/thiep2010/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// EnvelopeRenderSystem 信封渲染系统
//
// 绘制顺序：
//  1. 信封主体（悬停时提亮）
//  2. 翻盖三角形，顶点随打开进度上移
//  3. 边框
//  4. 升起的信纸（打开进度超过阈值后）
//  5. 信封文字
type EnvelopeRenderSystem struct {
	theme *CardTheme
	body  types.Rect
}

// NewEnvelopeRenderSystem 创建信封渲染系统
func NewEnvelopeRenderSystem(theme *CardTheme, body types.Rect) *EnvelopeRenderSystem {
	return &EnvelopeRenderSystem{theme: theme, body: body}
}

// Draw 按打开进度和悬停进度绘制信封
//
// 参数:
//   - amount: 打开进度 [0, 1]
//   - hover: 悬停高亮进度 [0, 1]
func (s *EnvelopeRenderSystem) Draw(screen *ebiten.Image, amount, hover float64) {
	p := s.theme.Palette
	env := EnvelopeShape(s.body, amount)

	base := utils.Lighten(p.EnvelopeBase, utils.EaseInOutQuad(hover)*config.EnvelopeHoverTint)
	fillRoundedRect(screen, env.Body, config.EnvelopeCornerRadius, base)

	flap := trianglePath(env.Flap)
	fillPath(screen, flap, p.EnvelopeFlap)

	strokeRoundedRect(screen, env.Body, config.EnvelopeCornerRadius, outlineWidth, p.EnvelopeBorder)
	strokePath(screen, flap, outlineWidth, p.FlapBorder)

	if env.PaperVisible {
		fillRoundedRect(screen, env.Paper, paperRadius, p.Paper)
		strokeSegment(screen, env.PaperRule, outlineWidth, p.PaperLine)
		fillCircle(screen, env.PaperHeart, p.Accent)
	}

	label := s.theme.Texts.EnvelopeLabel
	w, h := textSize(label, s.theme.Fonts.Small)
	drawTextAt(screen, label, s.theme.Fonts.Small, EnvelopeLabelPosition(s.body, amount, w, h), p.EnvelopeLabel)
}
