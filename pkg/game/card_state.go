package game

import (
	"math"

	"github.com/decker502/thiep2010/pkg/config"
	"github.com/decker502/thiep2010/pkg/types"
	"github.com/decker502/thiep2010/pkg/utils"
)

// CardState 卡片的全部动画状态
//
// 每帧由 Step 以值传入、返回新值，没有其他写入者。
// 信封开合由 Phase 显式表示：
//
//	Closed  --点击信封-->    Opening
//	Closing --点击信封-->    Opening（打开优先于收回）
//	Opening --openAmount=1-> Open
//	Open    --点击关闭按钮-> Closing
//	Closing --openAmount=0-> Closed
type CardState struct {
	// Phase 信封阶段
	Phase types.EnvelopePhase

	// FlowerBob 花朵摆动值（三角波，|FlowerBob| 约不超过 FlowerBobThreshold）
	FlowerBob float64
	// FlowerDir 摆动方向，+1 或 -1
	FlowerDir float64

	// OpenAmount 信封打开进度，0 关闭，1 完全打开
	OpenAmount float64

	// Elapsed 累计运行时间（秒），驱动手臂摆动和花瓣旋转
	Elapsed float64

	// Hover 信封悬停高亮进度 [0, 1]
	Hover float64
}

// FrameInput 单帧输入
type FrameInput struct {
	// Clicked 本帧是否发生了主键点击（或触摸）
	Clicked bool
	// X, Y 指针位置
	X, Y float64
}

// FrameEvents Step 在本帧产生的事件，供场景执行副作用（如播放音效）
type FrameEvents struct {
	// OpenTriggered 本帧点击了信封
	OpenTriggered bool
	// MessageShown 本帧信封完全打开，消息开始显示
	MessageShown bool
	// MessageClosed 本帧点击了关闭按钮
	MessageClosed bool
}

// NewCardState 返回初始状态：信封关闭，花朵向正方向摆动
func NewCardState() CardState {
	return CardState{
		Phase:     types.EnvelopeClosed,
		FlowerDir: 1,
	}
}

// EnvelopeOpening 信封是否处于打开动画中
func (s CardState) EnvelopeOpening() bool {
	return s.Phase == types.EnvelopeOpening
}

// ShowMessage 是否显示消息框
func (s CardState) ShowMessage() bool {
	return s.Phase == types.EnvelopeOpen
}

// Step 推进一帧
//
// 参数:
//   - s: 上一帧状态
//   - in: 本帧输入
//   - dt: 帧间隔（秒），负值按 0 处理
//
// 返回:
//   - CardState: 新状态
//   - FrameEvents: 本帧事件
func Step(s CardState, in FrameInput, dt float64) (CardState, FrameEvents) {
	var ev FrameEvents

	if dt < 0 {
		dt = 0
	}
	s.Elapsed += dt

	s = stepFlower(s, dt)

	// 悬停高亮：消息框显示时不响应
	hoverTarget := 0.0
	if !s.ShowMessage() && config.EnvelopeRect.Contains(in.X, in.Y) {
		hoverTarget = 1
	}
	s.Hover = utils.Approach(s.Hover, hoverTarget, dt*config.EnvelopeHoverRate)

	// 点击信封：消息未显示时进入 Opening（包括打断 Closing）
	if in.Clicked && !s.ShowMessage() && config.EnvelopeRect.Contains(in.X, in.Y) {
		s.Phase = types.EnvelopeOpening
		ev.OpenTriggered = true
	}

	switch s.Phase {
	case types.EnvelopeOpening:
		s.OpenAmount = math.Min(1, s.OpenAmount+dt*config.EnvelopeOpenRate)
		if s.OpenAmount >= 1 {
			s.OpenAmount = 1
			s.Phase = types.EnvelopeOpen
			ev.MessageShown = true
		}
	case types.EnvelopeClosing:
		s.OpenAmount = math.Max(0, s.OpenAmount-dt*config.EnvelopeCloseRate)
		if s.OpenAmount <= 0 {
			s.OpenAmount = 0
			s.Phase = types.EnvelopeClosed
		}
	}

	// 消息框显示时，点击关闭按钮开始收回
	if s.ShowMessage() && in.Clicked && config.CloseButtonRect().Contains(in.X, in.Y) {
		s.Phase = types.EnvelopeClosing
		ev.MessageClosed = true
	}

	return s, ev
}

// stepFlower 推进花朵摆动（三角波，无平滑）
// 越过阈值后朝回摆的方向前进，因此幅度不超过阈值加一步增量
func stepFlower(s CardState, dt float64) CardState {
	s.FlowerBob += s.FlowerDir * dt * config.FlowerBobRate
	switch {
	case s.FlowerBob > config.FlowerBobThreshold:
		s.FlowerDir = -1
	case s.FlowerBob < -config.FlowerBobThreshold:
		s.FlowerDir = 1
	}
	return s
}
