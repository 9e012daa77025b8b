package config

// 动画参数
// 所有速率以"每秒"为单位，乘以帧间隔 dt 使用
const (
	// FlowerBobRate 花朵摆动值的变化速率
	FlowerBobRate = 2.5

	// FlowerBobThreshold 摆动幅度阈值，|bob| 超过后反向（三角波）
	FlowerBobThreshold = 6.0

	// EnvelopeOpenRate 信封打开速率（openAmount / 秒）
	EnvelopeOpenRate = 3.0

	// EnvelopeCloseRate 信封收回速率（openAmount / 秒）
	EnvelopeCloseRate = 2.5

	// EnvelopeHoverRate 悬停高亮的渐变速率
	EnvelopeHoverRate = 4.0

	// EnvelopeHoverTint 悬停时信封主体向白色混合的最大比例
	EnvelopeHoverTint = 0.35
)

// 人物与花朵动画
const (
	// ArmSwayAmplitude 持花手臂末端的上下摆动幅度
	ArmSwayAmplitude = 6.0

	// ArmSwaySpeed 手臂摆动角速度（弧度/秒）
	ArmSwaySpeed = 2.0

	// PetalCount 花瓣数量
	PetalCount = 6

	// PetalSpinSpeed 花瓣整体旋转角速度（弧度/秒）
	PetalSpinSpeed = 0.5

	// PetalRadius 单个花瓣半径
	PetalRadius = 6.0

	// PetalOrbitX / PetalOrbitY 花瓣围绕花心的椭圆轨道半轴
	PetalOrbitX = 9.0
	PetalOrbitY = 6.0
)

// 信封绘制阈值
const (
	// PaperRevealThreshold openAmount 超过此值后绘制信纸
	PaperRevealThreshold = 0.05

	// LabelCenterThreshold openAmount 低于此值时标签居中
	LabelCenterThreshold = 0.3

	// PaperRiseRatio 信纸完全打开时上升的高度（相对信封高度）
	PaperRiseRatio = 0.55

	// FlapLiftMargin 翻盖顶点额外上升的距离
	FlapLiftMargin = 10.0
)
