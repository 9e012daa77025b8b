// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 统一处理鼠标和触摸输入，并记录本帧关心的按键
type InputState struct {
	// 是否有点击/触摸事件刚刚发生（边沿触发，每次按下只出现一帧）
	JustPressed bool
	// 指针位置（点击位置或悬停位置）
	X, Y int
	// 是否有活动的触摸
	IsTouching bool

	// QuitPressed Escape 刚按下
	QuitPressed bool
	// SavePressed 截图键 S 刚按下
	SavePressed bool
	// FullscreenPressed F11 刚按下
	FullscreenPressed bool
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := pointerState()

	state.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	state.SavePressed = inpututil.IsKeyJustPressed(ebiten.KeyS)
	state.FullscreenPressed = inpututil.IsKeyJustPressed(ebiten.KeyF11)

	return state
}

// pointerState 读取指针状态
func pointerState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		// 有新的触摸事件
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 检查是否有活动的触摸（用于悬停检测）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
		state.X, state.Y = ebiten.CursorPosition()
		return state
	}

	// 获取鼠标位置用于悬停检测
	state.X, state.Y = ebiten.CursorPosition()
	return state
}
