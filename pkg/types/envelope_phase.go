// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// EnvelopePhase 定义信封开合的阶段
//
// 四个阶段取代了原先 opening/showMessage/openAmount 三个变量的组合：
//
//	Closed  openAmount == 0，未触发
//	Opening 0 <= openAmount < 1，正在打开
//	Open    openAmount == 1，消息已显示
//	Closing 0 < openAmount < 1，消息关闭后自动收回
type EnvelopePhase int

const (
	// EnvelopeClosed 信封关闭
	EnvelopeClosed EnvelopePhase = iota
	// EnvelopeOpening 信封正在打开
	EnvelopeOpening
	// EnvelopeOpen 信封完全打开，显示消息
	EnvelopeOpen
	// EnvelopeClosing 信封正在收回
	EnvelopeClosing
)

// String 返回阶段的字符串表示
func (p EnvelopePhase) String() string {
	switch p {
	case EnvelopeClosed:
		return "Closed"
	case EnvelopeOpening:
		return "Opening"
	case EnvelopeOpen:
		return "Open"
	case EnvelopeClosing:
		return "Closing"
	default:
		return "Unknown"
	}
}
