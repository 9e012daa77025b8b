package config

import "github.com/decker502/thiep2010/pkg/types"

// 布局配置
// 所有坐标均为逻辑画面坐标（1000x640，左上角为原点）

// 信封
var (
	// EnvelopeRect 信封主体矩形，同时也是点击区域
	// 位于画面右侧、垂直居中
	EnvelopeRect = types.Rect{X: ScreenWidth - 260, Y: ScreenHeight/2 - 70, W: 220, H: 140}

	// EnvelopeCornerRadius 信封圆角半径
	EnvelopeCornerRadius = 8.0
)

// 人物
var (
	// FigureAnchor 火柴人的基准点（"脚踝"位置，身体从这里向上绘制）
	FigureAnchor = types.Point{X: 240, Y: 380}
)

// 标题与装饰
var (
	// TitlePosition 标题左上角
	TitlePosition = types.Point{X: 40, Y: 30}

	// HeartsOrigin 标题下方装饰心形的起点
	HeartsOrigin = types.Point{X: 40, Y: 80}
)

const (
	// HeartCount 装饰心形数量
	HeartCount = 6

	// HeartSpacing 装饰心形水平间距
	HeartSpacing = 28.0

	// SaveHintMarginBottom 保存提示距底部的距离
	SaveHintMarginBottom = 36.0
)

// 消息框
const (
	// MessageBoxWidth 消息框宽度
	MessageBoxWidth = 720.0

	// MessageBoxHeight 消息框高度
	MessageBoxHeight = 240.0

	// MessageBoxRadius 消息框圆角
	MessageBoxRadius = 12.0

	// CloseButtonWidth 关闭按钮宽度
	CloseButtonWidth = 100.0

	// CloseButtonHeight 关闭按钮高度
	CloseButtonHeight = 34.0

	// CloseButtonMarginBottom 关闭按钮顶部距消息框底部的距离
	CloseButtonMarginBottom = 46.0

	// TextMargin 换行时从可用宽度中扣除的边距（左右各一半）
	TextMargin = 16.0

	// TextLineSpacing 行间距
	TextLineSpacing = 6.0
)

// MessageBoxRect 返回居中的消息框矩形
func MessageBoxRect() types.Rect {
	return types.Rect{
		X: (ScreenWidth - MessageBoxWidth) / 2,
		Y: (ScreenHeight - MessageBoxHeight) / 2,
		W: MessageBoxWidth,
		H: MessageBoxHeight,
	}
}

// MessageContentRect 返回消息正文的排版区域
// 顶部留给标题，底部留给关闭按钮
func MessageContentRect() types.Rect {
	box := MessageBoxRect()
	return types.Rect{
		X: box.X + 20,
		Y: box.Y + 64,
		W: box.W - 40,
		H: box.H - 110,
	}
}

// CloseButtonRect 返回关闭按钮矩形（水平居中于消息框）
func CloseButtonRect() types.Rect {
	box := MessageBoxRect()
	return types.Rect{
		X: box.CenterX() - CloseButtonWidth/2,
		Y: box.Bottom() - CloseButtonMarginBottom,
		W: CloseButtonWidth,
		H: CloseButtonHeight,
	}
}
