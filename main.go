package main

import (
	"log"

	"github.com/decker502/thiep2010/pkg/app"
	"github.com/decker502/thiep2010/pkg/config"
	"github.com/decker502/thiep2010/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	// 打开信封的音效和截图失败只会记录日志，保持详细输出
	cardApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("贺卡初始化失败: %v", err)
	}

	// Set window properties
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.FPS)

	// Start the loop; Escape returns ebiten.Termination, which RunGame reports as nil
	err = ebiten.RunGame(cardApp)
	cardApp.Close()
	if err != nil {
		log.Fatal(err)
	}
}
