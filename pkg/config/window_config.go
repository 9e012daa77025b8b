package config

import "time"

// 窗口与主循环配置
// 画面使用固定的逻辑分辨率，Ebitengine 负责缩放到实际窗口
const (
	// ScreenWidth 逻辑画面宽度
	ScreenWidth = 1000

	// ScreenHeight 逻辑画面高度
	ScreenHeight = 640

	// FPS 主循环目标帧率（Ebitengine TPS）
	FPS = 60

	// WindowTitle 窗口标题，启动时设置一次
	WindowTitle = "Thiệp 20/10 - Người que tặng hoa"

	// MaxFrameDelta 单帧 dt 上限（秒）
	// 窗口被拖动或挂起时 Update 会停顿，避免恢复后动画跳变
	MaxFrameDelta = 0.25
)

// 外部文件
const (
	// OpenSoundFile 打开信封时播放的可选音效（相对工作目录）
	OpenSoundFile = "open_sound.wav"

	// ScreenshotPrefix 截图文件名前缀
	ScreenshotPrefix = "qua-2010"

	// ScreenshotExt 截图文件扩展名
	ScreenshotExt = ".png"

	// ScreenshotTimeLayout 截图文件名中的时间格式（精确到秒）
	ScreenshotTimeLayout = "20060102-150405"

	// CardConfigPath 嵌入的卡片配置路径
	CardConfigPath = "data/card.yaml"
)

// FrameInterval 返回目标帧间隔
func FrameInterval() time.Duration {
	return time.Second / FPS
}
