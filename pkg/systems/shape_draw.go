package systems

import (
	"image/color"

	"github.com/decker502/thiep2010/pkg/types"
	"github.com/decker502/thiep2010/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 线宽
const (
	outlineWidth = 2.0
	stemWidth    = 3.0
)

// roundedRectPath 构建圆角矩形路径
func roundedRectPath(r types.Rect, radius float64) *vector.Path {
	x0, y0 := float32(r.Left()), float32(r.Top())
	x1, y1 := float32(r.Right()), float32(r.Bottom())
	rad := float32(radius)

	var path vector.Path
	path.MoveTo(x0+rad, y0)
	path.LineTo(x1-rad, y0)
	path.ArcTo(x1, y0, x1, y0+rad, rad)
	path.LineTo(x1, y1-rad)
	path.ArcTo(x1, y1, x1-rad, y1, rad)
	path.LineTo(x0+rad, y1)
	path.ArcTo(x0, y1, x0, y1-rad, rad)
	path.LineTo(x0, y0+rad)
	path.ArcTo(x0, y0, x0+rad, y0, rad)
	path.Close()
	return &path
}

// trianglePath 构建三角形路径
func trianglePath(pts [3]types.Point) *vector.Path {
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	path.LineTo(float32(pts[1].X), float32(pts[1].Y))
	path.LineTo(float32(pts[2].X), float32(pts[2].Y))
	path.Close()
	return &path
}

func pathOptions(clr color.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	return op
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	vector.FillPath(screen, path, &vector.FillOptions{}, pathOptions(clr))
}

func strokePath(screen *ebiten.Image, path *vector.Path, width float64, clr color.Color) {
	vector.StrokePath(screen, path, &vector.StrokeOptions{Width: float32(width)}, pathOptions(clr))
}

func fillRoundedRect(screen *ebiten.Image, r types.Rect, radius float64, clr color.Color) {
	fillPath(screen, roundedRectPath(r, radius), clr)
}

func strokeRoundedRect(screen *ebiten.Image, r types.Rect, radius, width float64, clr color.Color) {
	strokePath(screen, roundedRectPath(r, radius), width, clr)
}

func strokeSegment(screen *ebiten.Image, s Segment, width float64, clr color.Color) {
	vector.StrokeLine(screen, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), float32(width), clr, true)
}

func fillCircle(screen *ebiten.Image, c Circle, clr color.Color) {
	vector.DrawFilledCircle(screen, float32(c.Center.X), float32(c.Center.Y), float32(c.R), clr, true)
}

func strokeCircle(screen *ebiten.Image, c Circle, width float64, clr color.Color) {
	vector.StrokeCircle(screen, float32(c.Center.X), float32(c.Center.Y), float32(c.R), float32(width), clr, true)
}

// drawTextAt 以左上角为原点绘制单行文字
func drawTextAt(screen *ebiten.Image, str string, face text.Face, pos types.Point, clr color.Color) {
	if face == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// textSize 返回单行文字的宽度和行高
func textSize(str string, face text.Face) (float64, float64) {
	if face == nil {
		return 0, 0
	}
	return utils.FaceMeasure(face)(str), utils.LineHeight(face)
}
