package systems

import (
	"github.com/decker502/thiep2010/pkg/config"
	"github.com/decker502/thiep2010/pkg/types"
	"github.com/decker502/thiep2010/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 消息框尺寸细节
const (
	messageTitleTop    = 12
	closeButtonRadius  = 8
	messageBorderWidth = 2
)

// MessageOverlayRenderSystem 消息框渲染系统
//
// 职责：
//   - 全屏半透明遮罩
//   - 居中消息框（标题、自动换行正文）
//   - 关闭按钮（点击判定由 game.Step 使用同一个 config.CloseButtonRect）
type MessageOverlayRenderSystem struct {
	theme *CardTheme

	// 正文排版只依赖文案和字体，首次绘制时计算
	lines []utils.TextLine
	laid  bool
}

// NewMessageOverlayRenderSystem 创建消息框渲染系统
func NewMessageOverlayRenderSystem(theme *CardTheme) *MessageOverlayRenderSystem {
	return &MessageOverlayRenderSystem{theme: theme}
}

// Draw 绘制遮罩和消息框
func (s *MessageOverlayRenderSystem) Draw(screen *ebiten.Image) {
	p := s.theme.Palette
	fonts := s.theme.Fonts

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, p.Overlay, false)

	box := config.MessageBoxRect()
	fillRoundedRect(screen, box, config.MessageBoxRadius, p.MessageBox)
	strokeRoundedRect(screen, box, config.MessageBoxRadius, messageBorderWidth, p.MessageBorder)

	// 标题水平居中
	titleW, _ := textSize(s.theme.Texts.MessageTitle, fonts.Title)
	titlePos := types.Point{X: box.CenterX() - titleW/2, Y: box.Top() + messageTitleTop}
	drawTextAt(screen, s.theme.Texts.MessageTitle, fonts.Title, titlePos, p.Accent)

	for _, line := range s.messageLines() {
		drawTextAt(screen, line.Text, fonts.Body, types.Point{X: line.X, Y: line.Y}, p.Text)
	}

	btn := config.CloseButtonRect()
	fillRoundedRect(screen, btn, closeButtonRadius, p.Accent)
	labelW, labelH := textSize(s.theme.Texts.CloseLabel, fonts.Body)
	drawTextAt(screen, s.theme.Texts.CloseLabel, fonts.Body, CenteredIn(btn, labelW, labelH), p.ButtonText)
}

// messageLines 返回排版后的正文行
func (s *MessageOverlayRenderSystem) messageLines() []utils.TextLine {
	if s.laid {
		return s.lines
	}
	s.laid = true

	face := s.theme.Fonts.Body
	if face == nil {
		return nil
	}

	content := config.MessageContentRect()
	s.lines = utils.LayoutWrappedText(
		s.theme.Texts.Message,
		content.X, content.Y, content.W, content.H,
		utils.FaceMeasure(face),
		utils.LineHeight(face),
		config.TextLineSpacing,
		config.TextMargin,
	)
	return s.lines
}
