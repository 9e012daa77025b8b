package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 返回一行文本渲染后的宽度（像素）
type MeasureFunc func(s string) float64

// TextLine 排版后的一行文本及其左上角坐标
type TextLine struct {
	Text string
	X, Y float64
}

// FaceMeasure 返回基于字体的宽度测量函数
func FaceMeasure(face text.Face) MeasureFunc {
	return func(s string) float64 {
		return measureTextWidth(s, face)
	}
}

// WrapWords 按单词贪心换行
//
// 参数:
//   - textStr: 要换行的文本（按空白切分为单词）
//   - maxWidth: 每行最大宽度
//   - measure: 宽度测量函数
//
// 返回:
//   - []string: 换行后的文本行
//
// 换行规则:
//   - 单词依次加入当前行，加入后宽度仍不超过 maxWidth 则继续
//   - 超出时当前行结束，单词移到新行
//   - 单个单词本身超宽时独占一行（不在单词内部断开）
func WrapWords(textStr string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(textStr)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, w := range words {
		candidate := w
		if current != "" {
			candidate = current + " " + w
		}

		if measure(candidate) <= maxWidth || current == "" {
			current = candidate
			continue
		}

		lines = append(lines, current)
		current = w
	}
	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

// FitLines 返回高度为 boxHeight 的区域内能容纳的行数
// 从顶部开始逐行放置，下一行底部越过区域底部时停止（静默截断）
func FitLines(lineCount int, lineHeight, spacing, boxHeight float64) int {
	y := 0.0
	for i := 0; i < lineCount; i++ {
		if y+lineHeight > boxHeight {
			return i
		}
		y += lineHeight + spacing
	}
	return lineCount
}

// LayoutWrappedText 在矩形内排版多行文本
//
// 可用宽度为 w - margin，文本左侧缩进 margin/2；
// 行高 lineHeight，行距 spacing，超出矩形高度的行被丢弃。
func LayoutWrappedText(textStr string, x, y, w, h float64, measure MeasureFunc, lineHeight, spacing, margin float64) []TextLine {
	lines := WrapWords(textStr, w-margin, measure)
	n := FitLines(len(lines), lineHeight, spacing, h)

	out := make([]TextLine, 0, n)
	cy := y
	for _, line := range lines[:n] {
		out = append(out, TextLine{Text: line, X: x + margin/2, Y: cy})
		cy += lineHeight + spacing
	}
	return out
}

// LineHeight 返回字体的行高（ascent + descent）
func LineHeight(face text.Face) float64 {
	if face == nil {
		return 0
	}
	m := face.Metrics()
	return m.HAscent + m.HDescent
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font text.Face) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	// 使用 Measure 方法测量文本尺寸
	width, _ := text.Measure(textStr, font, 0)
	return width
}
