package systems

import (
	"github.com/decker502/thiep2010/pkg/config"
	"github.com/decker502/thiep2010/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// BackdropRenderSystem 背景渲染系统
//
// 职责：
//   - 背景色、标题、左上角装饰圆点（DrawBackground，最先绘制）
//   - 打开提示和截图提示（DrawHints，在信封之后绘制）
type BackdropRenderSystem struct {
	theme *CardTheme
}

// NewBackdropRenderSystem 创建背景渲染系统
func NewBackdropRenderSystem(theme *CardTheme) *BackdropRenderSystem {
	return &BackdropRenderSystem{theme: theme}
}

// DrawBackground 绘制背景、标题和装饰
func (s *BackdropRenderSystem) DrawBackground(screen *ebiten.Image) {
	p := s.theme.Palette
	screen.Fill(p.Background)

	drawTextAt(screen, s.theme.Texts.Title, s.theme.Fonts.Title, config.TitlePosition, p.Accent)

	for _, mark := range HeartMarks() {
		fillCircle(screen, mark, p.Hearts)
	}
}

// DrawHints 绘制操作提示
func (s *BackdropRenderSystem) DrawHints(screen *ebiten.Image) {
	p := s.theme.Palette
	small := s.theme.Fonts.Small

	hintW, _ := textSize(s.theme.Texts.OpenHint, small)
	drawTextAt(screen, s.theme.Texts.OpenHint, small, OpenHintPosition(config.EnvelopeRect, hintW), p.OpenHint)

	// 移动端没有键盘，不显示截图提示
	if !utils.IsMobile() {
		drawTextAt(screen, s.theme.Texts.SaveHint, small, SaveHintPosition(), p.SaveHint)
	}
}
