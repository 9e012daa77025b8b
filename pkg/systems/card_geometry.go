package systems

import (
	"math"

	"github.com/decker502/thiep2010/pkg/config"
	"github.com/decker502/thiep2010/pkg/types"
)

// 卡片几何计算
//
// 这里的函数只做坐标计算，不依赖 ebiten.Image，
// 渲染系统拿到结果后再调用 vector / text 绘制。

// Segment 线段
type Segment struct {
	A, B types.Point
}

// Circle 圆
type Circle struct {
	Center types.Point
	R      float64
}

// 人物骨架尺寸（相对脚踝锚点）
const (
	figureHeadOffsetY = 120
	figureHeadRadius  = 20
	figureNeckY       = 100
	figureHipY        = 30
	figureLegSpread   = 24
	figureLegLength   = 30
	figureShoulderY   = 80
	figureLeftArmDX   = 56
	figureLeftArmDY   = 50
	figureRightArmDX  = 70
	figureRightArmDY  = 70
	figureBowDX       = 6
	figureBowDY       = 95
	figureBowRadius   = 4

	flowerOffsetX      = 10
	flowerOffsetY      = 8
	flowerCenterRadius = 6
	stemTop            = 4
	stemBottom         = 26
)

// Figure 某一时刻的人物姿态
type Figure struct {
	Head     Circle
	Body     Segment
	Legs     [2]Segment
	LeftArm  Segment
	RightArm Segment
	Bow      Circle

	// Flower 花心
	Flower Circle
	// Petals 花瓣，偶数下标用第一种颜色，奇数下标用第二种
	Petals []Circle
	Stem   Segment
}

// ArmEnd 返回持花手臂末端位置
// 末端 y 随时间按正弦摆动，幅度 ArmSwayAmplitude
func ArmEnd(anchor types.Point, elapsed float64) types.Point {
	sway := math.Trunc(config.ArmSwayAmplitude * math.Sin(elapsed*config.ArmSwaySpeed))
	return types.Point{
		X: anchor.X + figureRightArmDX,
		Y: anchor.Y - figureRightArmDY + sway,
	}
}

// PetalCenters 返回围绕 center 的花瓣中心
// 花瓣等角分布，整体相位随时间线性旋转；轨道是 PetalOrbitX × PetalOrbitY 的椭圆
func PetalCenters(center types.Point, elapsed float64) []types.Point {
	petals := make([]types.Point, config.PetalCount)
	step := 2 * math.Pi / float64(config.PetalCount)
	for i := range petals {
		angle := float64(i)*step + elapsed*config.PetalSpinSpeed
		petals[i] = types.Point{
			X: center.X + math.Trunc(config.PetalOrbitX*math.Cos(angle)),
			Y: center.Y + math.Trunc(config.PetalOrbitY*math.Sin(angle)),
		}
	}
	return petals
}

// FigurePose 计算 elapsed 时刻的人物姿态
//
// 参数:
//   - anchor: 脚踝（身体底端）位置
//   - elapsed: 累计时间（秒）
func FigurePose(anchor types.Point, elapsed float64) Figure {
	x, y := anchor.X, anchor.Y
	shoulder := types.Point{X: x, Y: y - figureShoulderY}
	hip := types.Point{X: x, Y: y - figureHipY}

	armEnd := ArmEnd(anchor, elapsed)
	flower := types.Point{X: armEnd.X + flowerOffsetX, Y: armEnd.Y - flowerOffsetY}

	centers := PetalCenters(flower, elapsed)
	petals := make([]Circle, len(centers))
	for i, c := range centers {
		petals[i] = Circle{Center: c, R: config.PetalRadius}
	}

	return Figure{
		Head: Circle{Center: types.Point{X: x, Y: y - figureHeadOffsetY}, R: figureHeadRadius},
		Body: Segment{A: types.Point{X: x, Y: y - figureNeckY}, B: hip},
		Legs: [2]Segment{
			{A: hip, B: types.Point{X: x - figureLegSpread, Y: y + figureLegLength}},
			{A: hip, B: types.Point{X: x + figureLegSpread, Y: y + figureLegLength}},
		},
		LeftArm:  Segment{A: shoulder, B: types.Point{X: x - figureLeftArmDX, Y: y - figureLeftArmDY}},
		RightArm: Segment{A: shoulder, B: armEnd},
		Bow:      Circle{Center: types.Point{X: x - figureBowDX, Y: y - figureBowDY}, R: figureBowRadius},
		Flower:   Circle{Center: flower, R: flowerCenterRadius},
		Petals:   petals,
		Stem: Segment{
			A: types.Point{X: flower.X, Y: flower.Y + stemTop},
			B: types.Point{X: flower.X, Y: flower.Y + stemBottom},
		},
	}
}

// 信封纸张尺寸
const (
	paperInset       = 10
	paperRadius      = 4
	paperRuleInset   = 12
	paperRuleY       = 28
	paperHeartX      = 24
	paperHeartY      = 16
	paperHeartRadius = 6
	labelMargin      = 12
)

// Envelope 某一打开进度下的信封形状
type Envelope struct {
	Body types.Rect
	// Flap 翻盖三角形：左上角、右上角、顶点
	Flap [3]types.Point

	// PaperVisible 打开进度超过 PaperRevealThreshold 时为 true
	PaperVisible bool
	Paper        types.Rect
	PaperRule    Segment
	PaperHeart   Circle
}

// FlapApexY 返回翻盖三角形顶点的 y 坐标
// 关闭时顶点在信封中线，打开时上移 amount×(flapHeight+FlapLiftMargin)
func FlapApexY(body types.Rect, amount float64) float64 {
	flapHeight := math.Floor(body.H / 2)
	lift := math.Trunc(amount * (flapHeight + config.FlapLiftMargin))
	return body.Top() + flapHeight - lift
}

// PaperRect 返回信纸矩形，随打开进度从信封中升起
func PaperRect(body types.Rect, amount float64) types.Rect {
	rise := math.Trunc(amount * body.H * config.PaperRiseRatio)
	return types.Rect{
		X: body.X + paperInset,
		Y: body.Y - rise + paperInset,
		W: body.W - 2*paperInset,
		H: body.H - 2*paperInset,
	}
}

// EnvelopeShape 计算 amount 打开进度下的信封形状
func EnvelopeShape(body types.Rect, amount float64) Envelope {
	env := Envelope{
		Body: body,
		Flap: [3]types.Point{
			{X: body.Left(), Y: body.Top()},
			{X: body.Right(), Y: body.Top()},
			{X: body.CenterX(), Y: FlapApexY(body, amount)},
		},
	}

	if amount > config.PaperRevealThreshold {
		paper := PaperRect(body, amount)
		env.PaperVisible = true
		env.Paper = paper
		env.PaperRule = Segment{
			A: types.Point{X: paper.Left() + paperRuleInset, Y: paper.Top() + paperRuleY},
			B: types.Point{X: paper.Right() - paperRuleInset, Y: paper.Top() + paperRuleY},
		}
		env.PaperHeart = Circle{
			Center: types.Point{X: paper.Left() + paperHeartX, Y: paper.Top() + paperHeartY},
			R:      paperHeartRadius,
		}
	}

	return env
}

// EnvelopeLabelPosition 返回信封文字左上角
// 基本关闭（amount < LabelCenterThreshold）时居中，否则靠左上
func EnvelopeLabelPosition(body types.Rect, amount, labelW, labelH float64) types.Point {
	if amount < config.LabelCenterThreshold {
		return types.Point{
			X: body.CenterX() - math.Floor(labelW/2),
			Y: body.CenterY() - math.Floor(labelH/2),
		}
	}
	return types.Point{X: body.Left() + labelMargin, Y: body.Top() + labelMargin}
}

// 提示文字与信封的间距
const (
	openHintGapX = 12
	openHintUpY  = 6
)

// OpenHintPosition 返回打开提示的左上角：信封左侧，右对齐，底边略高于信封底部
func OpenHintPosition(body types.Rect, hintW float64) types.Point {
	return types.Point{
		X: body.Left() - openHintGapX - hintW,
		Y: body.Bottom() - openHintUpY,
	}
}

// HeartMarks 返回左上角的装饰圆点
// 横向等距，纵向交替错开，半径在三档之间循环
func HeartMarks() []Circle {
	marks := make([]Circle, config.HeartCount)
	for i := range marks {
		marks[i] = Circle{
			Center: types.Point{
				X: config.HeartsOrigin.X + float64(i)*config.HeartSpacing,
				Y: config.HeartsOrigin.Y + float64(i%2)*6,
			},
			R: float64(6 + i%3),
		}
	}
	return marks
}

// SaveHintPosition 返回截图提示的左上角
func SaveHintPosition() types.Point {
	return types.Point{X: config.TitlePosition.X, Y: config.ScreenHeight - config.SaveHintMarginBottom}
}

// CenteredIn 返回尺寸为 w×h 的内容在 r 中居中时的左上角
func CenteredIn(r types.Rect, w, h float64) types.Point {
	return types.Point{X: r.CenterX() - math.Floor(w/2), Y: r.CenterY() - math.Floor(h/2)}
}
