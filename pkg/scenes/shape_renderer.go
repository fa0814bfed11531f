package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/solidsorter/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage 用作 DrawTriangles 的纯色纹理
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawShape 以 (cx, cy) 为中心绘制形状的侧视轮廓
//
// 参数：
//   - size: 形状包围盒边长（像素）
func drawShape(screen *ebiten.Image, shape types.ShapeType, cx, cy, size float64, clr color.RGBA) {
	half := size / 2

	switch shape {
	case types.ShapeBox:
		vector.DrawFilledRect(screen, float32(cx-half), float32(cy-half), float32(size), float32(size), clr, false)

	case types.ShapeCylinder:
		w := size * 0.8
		vector.DrawFilledRect(screen, float32(cx-w/2), float32(cy-half), float32(w), float32(size), clr, false)
		// 顶面高光
		vector.StrokeLine(screen, float32(cx-w/2), float32(cy-half+2), float32(cx+w/2), float32(cy-half+2), 2, shade(clr, 1.4), false)

	case types.ShapeSphere:
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(half), clr, true)

	case types.ShapeTorus:
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(half*0.7), float32(half*0.5), clr, true)

	case types.ShapeCone:
		fillPolygon(screen, []float64{
			cx, cy - half,
			cx + half, cy + half,
			cx - half, cy + half,
		}, clr)

	case types.ShapeRoof:
		// 三棱柱侧视：矮而宽的三角形
		fillPolygon(screen, []float64{
			cx, cy - half*0.6,
			cx + half*1.2, cy + half*0.6,
			cx - half*1.2, cy + half*0.6,
		}, clr)

	case types.ShapeParaboloid:
		fillPolygon(screen, paraboloidOutline(cx, cy, half), clr)

	case types.ShapeWedge:
		fillPolygon(screen, []float64{
			cx - half, cy - half,
			cx + half, cy + half,
			cx - half, cy + half,
		}, clr)

	default:
		vector.StrokeRect(screen, float32(cx-half), float32(cy-half), float32(size), float32(size), 2, clr, false)
	}
}

// paraboloidOutline 返回碗形抛物面侧视轮廓（开口向上的凸多边形）
func paraboloidOutline(cx, cy, half float64) []float64 {
	const segments = 10
	points := make([]float64, 0, (segments+1)*2)
	for i := 0; i <= segments; i++ {
		u := -1 + 2*float64(i)/segments
		points = append(points, cx+u*half, cy-half+(1-u*u)*half*2)
	}
	return points
}

// fillPolygon 按扇形三角剖分填充凸多边形
// points 为 x0, y0, x1, y1, ... 交替排列
func fillPolygon(screen *ebiten.Image, points []float64, clr color.RGBA) {
	n := len(points) / 2
	if n < 3 {
		return
	}

	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff

	vertices := make([]ebiten.Vertex, 0, n)
	for i := 0; i < n; i++ {
		vertices = append(vertices, ebiten.Vertex{
			DstX:   float32(points[i*2]),
			DstY:   float32(points[i*2+1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}

	indices := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}

	screen.DrawTriangles(vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// shade 按比例调整颜色亮度
func shade(clr color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*factor))
	}
	return color.RGBA{R: scale(clr.R), G: scale(clr.G), B: scale(clr.B), A: clr.A}
}
