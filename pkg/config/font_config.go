package config

// 字体配置
// 优先尝试系统中带完整越南语字形的字体，找不到时回退到内置的 Roboto，最后是 Go 字体
const (
	// FallbackFontPath 内置回退字体（嵌入资源路径），覆盖全部越南语字母
	FallbackFontPath = "data/fonts/Roboto-Regular.ttf"

	// TitleFontSize 标题字号
	TitleFontSize = 36.0

	// BodyFontSize 正文字号
	BodyFontSize = 20.0

	// SmallFontSize 提示文字字号
	SmallFontSize = 16.0
)

// RegularFontCandidates 常规字体候选路径（按顺序尝试）
var RegularFontCandidates = []string{
	"C:\\Windows\\Fonts\\segoeui.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

// BoldFontCandidates 粗体字体候选路径（按顺序尝试）
var BoldFontCandidates = []string{
	"C:\\Windows\\Fonts\\segoeuib.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
}
