package systems

import (
	"github.com/decker502/thiep2010/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CardFonts 卡片使用的三档字体
type CardFonts struct {
	Title text.Face // 标题（粗体）
	Body  text.Face // 消息正文、按钮
	Small text.Face // 提示、信封文字
}

// CardTheme 渲染系统共享的文案、配色和字体
type CardTheme struct {
	Texts   *config.CardConfig
	Palette config.ResolvedPalette
	Fonts   CardFonts
}
