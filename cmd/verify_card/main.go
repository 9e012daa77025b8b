// Package main provides a verification tool for the greeting card.
//
// It runs the full card (same App as the product binary) with a debug line showing the
// envelope phase and animation values, and can drive the envelope automatically.
//
// Usage:
//
//	go run cmd/verify_card/main.go [flags]
//
// Flags:
//
//	--autoplay           Click the envelope, wait, close the message, repeat
//	--hold <seconds>     How long autoplay keeps the message open (default: 2)
//	--sound <path>       Open sound to load (default: open_sound.wav)
//	--check              Validate data/card.yaml and exit
//	--verbose            Enable verbose logging
//
// Controls:
//
//	Click     - Open the envelope / close the message
//	S         - Save screenshot
//	F11       - Toggle fullscreen
//	ESC       - Quit
//
// The card config is read from data/card.yaml on disk (not the embedded copy), so edits
// show up on the next run without rebuilding.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/thiep2010/pkg/app"
	"github.com/decker502/thiep2010/pkg/config"
	"github.com/decker502/thiep2010/pkg/embedded"
	"github.com/decker502/thiep2010/pkg/game"
	"github.com/decker502/thiep2010/pkg/scenes"
	"github.com/decker502/thiep2010/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	autoplayFlag = flag.Bool("autoplay", false, "Drive the envelope automatically")
	holdFlag     = flag.Float64("hold", 2, "Seconds autoplay keeps the message open")
	soundFlag    = flag.String("sound", config.OpenSoundFile, "Open sound file")
	checkFlag    = flag.Bool("check", false, "Validate data/card.yaml and exit")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
)

// autoplayIdle 自动演示在两次打开之间等待的秒数
const autoplayIdle = 1.0

// CardVerifyGame wraps the card App with a debug overlay
type CardVerifyGame struct {
	*app.App
	scene *scenes.CardScene
}

// Draw draws the card, then the debug line
func (g *CardVerifyGame) Draw(screen *ebiten.Image) {
	g.App.Draw(screen)

	s := g.scene.State()
	ev := g.scene.LastEvents()
	msg := fmt.Sprintf("phase=%s amount=%.2f hover=%.2f bob=%+.2f t=%.1fs fps=%.0f",
		s.Phase, s.OpenAmount, s.Hover, s.FlowerBob, s.Elapsed, ebiten.ActualFPS())
	if ev.OpenTriggered || ev.MessageShown || ev.MessageClosed {
		msg += fmt.Sprintf("  events=%+v", ev)
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, config.ScreenHeight-16)
}

// autoplay 返回一个按时间点击信封和关闭按钮的输入源
//
// 流程：空闲 autoplayIdle 秒 → 点击信封 → 消息显示 hold 秒 → 点击关闭 → 信封收回后重复
func autoplay(scene *scenes.CardScene, hold float64) scenes.InputSource {
	envelope := config.EnvelopeRect.Center()
	closeButton := config.CloseButtonRect().Center()

	var waitedSince float64
	lastPhase := scene.State().Phase

	return func() game.FrameInput {
		s := scene.State()
		if s.Phase != lastPhase {
			lastPhase = s.Phase
			waitedSince = s.Elapsed
		}
		waited := s.Elapsed - waitedSince

		in := game.FrameInput{X: envelope.X, Y: envelope.Y}
		switch {
		case s.Phase == types.EnvelopeClosed && waited >= autoplayIdle:
			in.Clicked = true
			log.Printf("[Autoplay] Clicking envelope")
		case s.ShowMessage():
			in.X, in.Y = closeButton.X, closeButton.Y
			if waited >= hold {
				in.Clicked = true
				log.Printf("[Autoplay] Clicking close button")
			}
		}
		return in
	}
}

func main() {
	flag.Parse()

	if *checkFlag {
		cfg, err := config.LoadCardConfigFile(config.CardConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %s - %v\n", config.CardConfigPath, err)
			os.Exit(1)
		}
		fmt.Printf("OK: %s - title=%q, message=%d runes\n", config.CardConfigPath, cfg.Title, len([]rune(cfg.Message)))
		return
	}

	// 从磁盘读取 data/（在仓库根目录运行）
	embedded.Init(os.DirFS("."))

	cardApp, err := app.NewApp(app.Config{
		Verbose:   *verboseFlag,
		SoundPath: *soundFlag,
	})
	if err != nil {
		log.Fatalf("Failed to create card: %v", err)
	}

	scene := cardApp.CardScene()
	if *autoplayFlag {
		scene.SetInputSource(autoplay(scene, *holdFlag))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " [verify]")
	ebiten.SetTPS(config.FPS)

	err = ebiten.RunGame(&CardVerifyGame{App: cardApp, scene: scene})
	cardApp.Close()
	if err != nil {
		log.Fatal(err)
	}
}
