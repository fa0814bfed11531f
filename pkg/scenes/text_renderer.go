package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// 调试字体的字符尺寸（像素）
const (
	debugCharWidth  = 6
	debugCharHeight = 16
)

// textRenderer 放大绘制调试字体文本
// 每个字符串渲染一次后缓存
type textRenderer struct {
	cache map[string]*ebiten.Image
}

func newTextRenderer() *textRenderer {
	return &textRenderer{cache: make(map[string]*ebiten.Image)}
}

// textWidth 返回文本在给定缩放下的宽度（像素）
func textWidth(str string, scale float64) float64 {
	return float64(len(str)*debugCharWidth) * scale
}

// drawCentered 以 cx 为水平中心绘制文本
func (r *textRenderer) drawCentered(screen *ebiten.Image, str string, cx, y, scale float64, clr color.Color) {
	r.draw(screen, str, cx-textWidth(str, scale)/2, y, scale, clr)
}

// draw 在 (x, y) 绘制文本
func (r *textRenderer) draw(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	img, ok := r.cache[str]
	if !ok {
		img = ebiten.NewImage(len(str)*debugCharWidth+1, debugCharHeight)
		ebitenutil.DebugPrintAt(img, str, 0, 0)
		r.cache[str] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(img, op)
}
