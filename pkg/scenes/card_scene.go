package scenes

import (
	"log"

	"github.com/decker502/thiep2010/pkg/config"
	"github.com/decker502/thiep2010/pkg/game"
	"github.com/decker502/thiep2010/pkg/systems"
	"github.com/decker502/thiep2010/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSource 每帧提供一次指针输入
type InputSource func() game.FrameInput

// CardScene 贺卡场景：人物、花朵、信封和消息框
//
// 动画状态全部保存在 game.CardState 中，每帧交给 game.Step 推进；
// 场景只负责读取输入、执行副作用（音效）和调用渲染系统。
type CardScene struct {
	state        game.CardState
	audioManager *game.AudioManager
	input        InputSource

	// 最近一帧的事件（调试与验证工具使用）
	lastEvents game.FrameEvents

	backdrop *systems.BackdropRenderSystem
	figure   *systems.FigureRenderSystem
	envelope *systems.EnvelopeRenderSystem
	overlay  *systems.MessageOverlayRenderSystem
}

var _ Scene = (*CardScene)(nil)

// NewCardScene 创建贺卡场景
//
// 参数:
//   - theme: 文案、配色和字体
//   - am: 音效管理器，可以为 nil（静音）
func NewCardScene(theme *systems.CardTheme, am *game.AudioManager) *CardScene {
	return &CardScene{
		state:        game.NewCardState(),
		audioManager: am,
		input:        PointerInput,
		backdrop:     systems.NewBackdropRenderSystem(theme),
		figure:       systems.NewFigureRenderSystem(theme, config.FigureAnchor),
		envelope:     systems.NewEnvelopeRenderSystem(theme, config.EnvelopeRect),
		overlay:      systems.NewMessageOverlayRenderSystem(theme),
	}
}

// PointerInput 从鼠标或触摸读取本帧输入
func PointerInput() game.FrameInput {
	in := utils.GetInputState()
	return game.FrameInput{
		Clicked: in.JustPressed,
		X:       float64(in.X),
		Y:       float64(in.Y),
	}
}

// SetInputSource 替换输入来源（自动演示和测试使用）
func (s *CardScene) SetInputSource(src InputSource) {
	if src == nil {
		src = PointerInput
	}
	s.input = src
}

// State 返回当前动画状态
func (s *CardScene) State() game.CardState {
	return s.state
}

// LastEvents 返回最近一帧产生的事件
func (s *CardScene) LastEvents() game.FrameEvents {
	return s.lastEvents
}

// Update 推进一帧
func (s *CardScene) Update(deltaTime float64) {
	in := s.input()

	var ev game.FrameEvents
	s.state, ev = game.Step(s.state, in, deltaTime)
	s.lastEvents = ev

	if ev.OpenTriggered {
		log.Printf("[CardScene] Envelope clicked at (%.0f, %.0f)", in.X, in.Y)
		if s.audioManager != nil {
			s.audioManager.PlayOpenSound()
		}
	}
	if ev.MessageShown {
		log.Printf("[CardScene] Message shown")
	}
	if ev.MessageClosed {
		log.Printf("[CardScene] Message closed, envelope retracting")
	}

	ebiten.SetCursorShape(cursorShapeFor(s.state, in))
}

// cursorShapeFor 指针位于可点击区域时显示手形光标
func cursorShapeFor(state game.CardState, in game.FrameInput) ebiten.CursorShapeType {
	if state.ShowMessage() {
		if config.CloseButtonRect().Contains(in.X, in.Y) {
			return ebiten.CursorShapePointer
		}
		return ebiten.CursorShapeDefault
	}
	if config.EnvelopeRect.Contains(in.X, in.Y) {
		return ebiten.CursorShapePointer
	}
	return ebiten.CursorShapeDefault
}

// Draw 绘制场景
// 顺序：背景 → 人物 → 信封 → 提示 → 消息框
func (s *CardScene) Draw(screen *ebiten.Image) {
	s.backdrop.DrawBackground(screen)
	s.figure.Draw(screen, s.state.Elapsed)
	s.envelope.Draw(screen, s.state.OpenAmount, s.state.Hover)
	s.backdrop.DrawHints(screen)

	if s.state.ShowMessage() {
		s.overlay.Draw(screen)
	}
}
