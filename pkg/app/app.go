// Package app 提供贺卡应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/thiep2010/pkg/config"
	"github.com/decker502/thiep2010/pkg/embedded"
	"github.com/decker502/thiep2010/pkg/game"
	"github.com/decker502/thiep2010/pkg/scenes"
	"github.com/decker502/thiep2010/pkg/systems"
	"github.com/decker502/thiep2010/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SoundPath 打开信封的音效路径，为空时使用 config.OpenSoundFile
	SoundPath string
	// ScreenshotDir 截图保存目录，为空时使用 utils.ScreenshotDir()
	ScreenshotDir string
}

// App 是贺卡应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	cardScene    *scenes.CardScene
	audioManager *game.AudioManager
	screenshots  *game.ScreenshotExporter

	// 帧计时
	lastUpdate time.Time
	now        func() time.Time

	// readInput 读取本帧输入，默认 utils.GetInputState
	readInput func() utils.InputState
	// saveScreen 保存当前画面并返回文件路径，默认写入 screenshots
	saveScreen func(screen *ebiten.Image) (string, error)

	// 本帧按下了截图键，在 Draw 结束后保存
	pendingScreenshot bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化贺卡应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载卡片配置
	data, err := embedded.ReadFile(config.CardConfigPath)
	if err != nil {
		return nil, fmt.Errorf("卡片配置读取失败: %w", err)
	}
	cardConfig, err := config.LoadCardConfig(data)
	if err != nil {
		return nil, fmt.Errorf("卡片配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s: title=%q", config.CardConfigPath, cardConfig.Title)

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)

	fonts, err := loadFonts(resourceManager)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	// 音效是可选的，失败时静音
	soundPath := cfg.SoundPath
	if soundPath == "" {
		soundPath = config.OpenSoundFile
	}
	audioManager := game.NewAudioManager(resourceManager, soundPath)
	log.Printf("[App] AudioManager initialized (sound=%v)", audioManager.HasOpenSound())

	theme := &systems.CardTheme{
		Texts:   cardConfig,
		Palette: cardConfig.Colors(),
		Fonts:   fonts,
	}
	cardScene := scenes.NewCardScene(theme, audioManager)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(cardScene)

	screenshotDir := cfg.ScreenshotDir
	if screenshotDir == "" {
		screenshotDir, err = utils.ScreenshotDir()
		if err != nil {
			log.Printf("[Screenshot] Warning: %v, using working directory", err)
			screenshotDir = "."
		}
	}

	a := &App{
		sceneManager: sceneManager,
		cardScene:    cardScene,
		audioManager: audioManager,
		screenshots:  game.NewScreenshotExporter(screenshotDir),
		now:          time.Now,
		readInput:    utils.GetInputState,
	}
	a.saveScreen = a.writeScreenshot
	return a, nil
}

// loadFonts 加载三档字体
// 系统字体之后依次回退到内置的 Roboto（越南语字形）和 Go 字体（♥ 等符号）
func loadFonts(rm *game.ResourceManager) (systems.CardFonts, error) {
	roboto, err := embedded.ReadFile(config.FallbackFontPath)
	if err != nil {
		return systems.CardFonts{}, fmt.Errorf("%w: %w", game.ErrAssetLoad, err)
	}
	bundled := game.FontData{Name: config.FallbackFontPath, Data: roboto}

	title, err := rm.LoadFace(config.BoldFontCandidates,
		[]game.FontData{bundled, {Name: "gobold", Data: gobold.TTF}}, config.TitleFontSize)
	if err != nil {
		return systems.CardFonts{}, err
	}
	regular := []game.FontData{bundled, {Name: "goregular", Data: goregular.TTF}}
	body, err := rm.LoadFace(config.RegularFontCandidates, regular, config.BodyFontSize)
	if err != nil {
		return systems.CardFonts{}, err
	}
	small, err := rm.LoadFace(config.RegularFontCandidates, regular, config.SmallFontSize)
	if err != nil {
		return systems.CardFonts{}, err
	}
	return systems.CardFonts{Title: title, Body: body, Small: small}, nil
}

// Update 更新贺卡逻辑
// 每个 tick 调用一次（config.FPS 次/秒）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	keys := a.readInput()

	// Escape 退出，RunGame 随后正常返回
	if keys.QuitPressed {
		log.Printf("[App] Escape pressed, quitting")
		return ebiten.Termination
	}

	if keys.SavePressed {
		a.pendingScreenshot = true
	}

	// F11 切换全屏
	if keys.FullscreenPressed {
		a.toggleFullscreen()
	}

	now := a.now()
	deltaTime := frameDelta(a.lastUpdate, now)
	a.lastUpdate = now

	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// frameDelta 返回两次 Update 之间的秒数
// 第一帧使用标称帧间隔；时钟回拨按 0 处理；长时间停顿截断到 MaxFrameDelta
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() {
		return config.FrameInterval().Seconds()
	}
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > config.MaxFrameDelta {
		return config.MaxFrameDelta
	}
	return dt
}

// Draw 绘制贺卡画面
// 每帧调用一次；按下截图键的那一帧在绘制完成后保存画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)

	if a.pendingScreenshot {
		a.pendingScreenshot = false
		a.saveScreenshot(screen)
	}
}

// saveScreenshot 保存当前画面，失败只记录日志
func (a *App) saveScreenshot(screen *ebiten.Image) {
	path, err := a.saveScreen(screen)
	if err != nil {
		log.Printf("[Screenshot] Failed: %v", err)
		return
	}
	log.Printf("[Screenshot] Saved screenshot: %s", path)
}

// writeScreenshot 读取画面像素并写入截图目录
func (a *App) writeScreenshot(screen *ebiten.Image) (string, error) {
	return a.screenshots.Save(game.CaptureImage(screen))
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// CardScene 返回贺卡场景（验证工具使用）
func (a *App) CardScene() *scenes.CardScene {
	return a.cardScene
}

// Close 释放音频资源
// RunGame 返回后调用
func (a *App) Close() {
	if a.audioManager != nil {
		a.audioManager.Close()
	}
	log.Printf("[App] Closed")
}
