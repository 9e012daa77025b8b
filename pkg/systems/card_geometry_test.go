package systems

import (
	"math"
	"testing"

	"github.com/decker502/thiep2010/pkg/config"
	"github.com/decker502/thiep2010/pkg/types"
)

var testEnvelope = types.Rect{X: 740, Y: 250, W: 220, H: 140}

// TestFlapApexY 翻盖顶点随打开进度上移
func TestFlapApexY(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   float64
	}{
		{"关闭", 0, 320},   // 250 + 70
		{"打开一半", 0.5, 280}, // 320 - trunc(0.5*80)
		{"完全打开", 1, 240},  // 320 - 80，高于信封顶部
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlapApexY(testEnvelope, tt.amount); got != tt.want {
				t.Errorf("FlapApexY(%v) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}

// TestFlapApexMonotonic 打开进度越大顶点越高
func TestFlapApexMonotonic(t *testing.T) {
	prev := FlapApexY(testEnvelope, 0)
	for i := 1; i <= 20; i++ {
		y := FlapApexY(testEnvelope, float64(i)/20)
		if y > prev {
			t.Fatalf("apex moved down at amount %v: %v > %v", float64(i)/20, y, prev)
		}
		prev = y
	}
}

// TestEnvelopeShapePaper 信纸在阈值以上才出现
func TestEnvelopeShapePaper(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		wantVisible bool
		wantPaperY  float64
	}{
		{"关闭", 0, false, 0},
		{"恰好在阈值", config.PaperRevealThreshold, false, 0},
		{"刚超过阈值", 0.1, true, 253}, // 250 - trunc(0.1*77) + 10
		{"完全打开", 1, true, 183},    // 250 - 77 + 10
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := EnvelopeShape(testEnvelope, tt.amount)
			if env.PaperVisible != tt.wantVisible {
				t.Fatalf("PaperVisible = %v, want %v", env.PaperVisible, tt.wantVisible)
			}
			if !tt.wantVisible {
				return
			}
			if env.Paper.Y != tt.wantPaperY {
				t.Errorf("Paper.Y = %v, want %v", env.Paper.Y, tt.wantPaperY)
			}
			if env.Paper.X != 750 || env.Paper.W != 200 || env.Paper.H != 120 {
				t.Errorf("Paper = %+v, want X=750 W=200 H=120", env.Paper)
			}
			if env.PaperRule.A.Y != env.Paper.Y+28 || env.PaperRule.A.X != 762 || env.PaperRule.B.X != 938 {
				t.Errorf("PaperRule = %+v", env.PaperRule)
			}
		})
	}
}

// TestEnvelopeShapeFlapBase 翻盖底边固定在信封顶部
func TestEnvelopeShapeFlapBase(t *testing.T) {
	env := EnvelopeShape(testEnvelope, 0.7)
	if env.Flap[0] != (types.Point{X: 740, Y: 250}) || env.Flap[1] != (types.Point{X: 960, Y: 250}) {
		t.Errorf("flap base = %v %v", env.Flap[0], env.Flap[1])
	}
	if env.Flap[2].X != 850 {
		t.Errorf("flap apex X = %v, want 850", env.Flap[2].X)
	}
}

// TestEnvelopeLabelPosition 关闭时居中，打开后靠左上
func TestEnvelopeLabelPosition(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   types.Point
	}{
		{"关闭时居中", 0, types.Point{X: 835, Y: 310}},
		{"阈值以下仍居中", 0.29, types.Point{X: 835, Y: 310}},
		{"阈值处靠左上", config.LabelCenterThreshold, types.Point{X: 752, Y: 262}},
		{"完全打开", 1, types.Point{X: 752, Y: 262}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnvelopeLabelPosition(testEnvelope, tt.amount, 30, 20); got != tt.want {
				t.Errorf("EnvelopeLabelPosition(%v) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}

// TestArmEndSway 手臂末端只在 y 方向摆动，幅度不超过 ArmSwayAmplitude
func TestArmEndSway(t *testing.T) {
	anchor := types.Point{X: 240, Y: 380}
	for i := 0; i < 200; i++ {
		end := ArmEnd(anchor, float64(i)*0.05)
		if end.X != 310 {
			t.Fatalf("arm end X = %v, want 310", end.X)
		}
		if math.Abs(end.Y-310) > config.ArmSwayAmplitude {
			t.Fatalf("arm end Y = %v, sway exceeds amplitude", end.Y)
		}
	}

	if got := ArmEnd(anchor, 0); got.Y != 310 {
		t.Errorf("arm end at t=0 = %v, want Y=310", got)
	}
}

// TestPetalCenters 六片花瓣等角分布在椭圆轨道上
func TestPetalCenters(t *testing.T) {
	center := types.Point{X: 100, Y: 100}
	petals := PetalCenters(center, 0)

	if len(petals) != config.PetalCount {
		t.Fatalf("len(petals) = %d, want %d", len(petals), config.PetalCount)
	}
	if petals[0] != (types.Point{X: 109, Y: 100}) {
		t.Errorf("petals[0] = %v, want (109, 100)", petals[0])
	}
	if petals[3] != (types.Point{X: 91, Y: 100}) {
		t.Errorf("petals[3] = %v, want (91, 100)", petals[3])
	}
	for i, p := range petals {
		if math.Abs(p.X-center.X) > config.PetalOrbitX || math.Abs(p.Y-center.Y) > config.PetalOrbitY {
			t.Errorf("petals[%d] = %v outside orbit", i, p)
		}
	}
}

// TestPetalRotation 花瓣相位随时间旋转
func TestPetalRotation(t *testing.T) {
	center := types.Point{X: 100, Y: 100}
	a := PetalCenters(center, 0)
	b := PetalCenters(center, 2)
	if a[0] == b[0] {
		t.Error("petals did not rotate over time")
	}
}

// TestFigurePose 人物骨架固定，花朵挂在手臂末端
func TestFigurePose(t *testing.T) {
	anchor := types.Point{X: 240, Y: 380}
	fig := FigurePose(anchor, 1.3)

	if fig.Head.Center != (types.Point{X: 240, Y: 260}) || fig.Head.R != 20 {
		t.Errorf("Head = %+v", fig.Head)
	}
	if fig.Body.A.Y != 280 || fig.Body.B.Y != 350 {
		t.Errorf("Body = %+v", fig.Body)
	}
	if fig.Legs[0].B != (types.Point{X: 216, Y: 410}) || fig.Legs[1].B != (types.Point{X: 264, Y: 410}) {
		t.Errorf("Legs = %+v", fig.Legs)
	}

	armEnd := ArmEnd(anchor, 1.3)
	if fig.RightArm.B != armEnd {
		t.Errorf("RightArm end = %v, want %v", fig.RightArm.B, armEnd)
	}
	wantFlower := types.Point{X: armEnd.X + 10, Y: armEnd.Y - 8}
	if fig.Flower.Center != wantFlower {
		t.Errorf("Flower = %v, want %v", fig.Flower.Center, wantFlower)
	}
	if fig.Stem.A.X != wantFlower.X || fig.Stem.B.Y-fig.Stem.A.Y != 22 {
		t.Errorf("Stem = %+v", fig.Stem)
	}
	if len(fig.Petals) != config.PetalCount {
		t.Errorf("len(Petals) = %d", len(fig.Petals))
	}
}

// TestHeartMarks 装饰圆点横向等距、纵向交替
func TestHeartMarks(t *testing.T) {
	marks := HeartMarks()
	if len(marks) != config.HeartCount {
		t.Fatalf("len(marks) = %d, want %d", len(marks), config.HeartCount)
	}

	wantR := []float64{6, 7, 8, 6, 7, 8}
	for i, m := range marks {
		if m.Center.X != 40+float64(i)*28 {
			t.Errorf("marks[%d].X = %v", i, m.Center.X)
		}
		wantY := 80.0
		if i%2 == 1 {
			wantY = 86
		}
		if m.Center.Y != wantY {
			t.Errorf("marks[%d].Y = %v, want %v", i, m.Center.Y, wantY)
		}
		if m.R != wantR[i] {
			t.Errorf("marks[%d].R = %v, want %v", i, m.R, wantR[i])
		}
	}
}

// TestHintPositions 提示文字位置
func TestHintPositions(t *testing.T) {
	if got := OpenHintPosition(testEnvelope, 200); got != (types.Point{X: 528, Y: 384}) {
		t.Errorf("OpenHintPosition = %v, want (528, 384)", got)
	}
	if got := SaveHintPosition(); got != (types.Point{X: 40, Y: 604}) {
		t.Errorf("SaveHintPosition = %v, want (40, 604)", got)
	}
}

// TestCenteredIn 在关闭按钮中居中
func TestCenteredIn(t *testing.T) {
	btn := config.CloseButtonRect()
	got := CenteredIn(btn, 40, 20)
	if got != (types.Point{X: 480, Y: 401}) {
		t.Errorf("CenteredIn = %v, want (480, 401)", got)
	}
}
