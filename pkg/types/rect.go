package types

// Point 屏幕坐标点（逻辑单位）
type Point struct {
	X, Y float64
}

// Rect 轴对齐矩形，(X, Y) 为左上角
type Rect struct {
	X, Y, W, H float64
}

// Left 返回左边界
func (r Rect) Left() float64 { return r.X }

// Top 返回上边界
func (r Rect) Top() float64 { return r.Y }

// Right 返回右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom 返回下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX 返回水平中心
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY 返回垂直中心
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center 返回中心点
func (r Rect) Center() Point {
	return Point{X: r.CenterX(), Y: r.CenterY()}
}

// Contains 判断点是否落在矩形内
// 左/上边界包含，右/下边界不包含（与 image.Rectangle 一致）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset 返回四周各收缩 d 的矩形
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Offset 返回平移后的矩形
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
