package utils

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawNineSlice 使用九宫格拉伸把 img 绘制到 (x, y, width, height)
//
// inset 为四角的边长（源图像素）。四角不缩放，四边单向拉伸，中心双向拉伸。
// 目标尺寸小于两倍 inset 时四角按比例缩小。tint 为 nil 时不着色。
func DrawNineSlice(screen, img *ebiten.Image, inset, x, y, width, height float64, tint color.Color) {
	if img == nil {
		return
	}
	b := img.Bounds()
	srcW, srcH := float64(b.Dx()), float64(b.Dy())
	if srcW == 0 || srcH == 0 {
		return
	}

	// 源图放不下两个角时退化为整体拉伸
	if inset <= 0 || inset*2 >= srcW || inset*2 >= srcH {
		drawPart(screen, img, x, y, width/srcW, height/srcH, tint)
		return
	}

	cornerW := min(inset, width/2)
	cornerH := min(inset, height/2)
	midW := width - cornerW*2
	midH := height - cornerH*2

	in := int(inset)
	cols := [3]struct{ src0, src1 int }{{0, in}, {in, b.Dx() - in}, {b.Dx() - in, b.Dx()}}
	rows := [3]struct{ src0, src1 int }{{0, in}, {in, b.Dy() - in}, {b.Dy() - in, b.Dy()}}
	dstX := [3]float64{x, x + cornerW, x + cornerW + midW}
	dstY := [3]float64{y, y + cornerH, y + cornerH + midH}
	dstW := [3]float64{cornerW, midW, cornerW}
	dstH := [3]float64{cornerH, midH, cornerH}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if dstW[c] <= 0 || dstH[r] <= 0 {
				continue
			}
			rect := image.Rect(b.Min.X+cols[c].src0, b.Min.Y+rows[r].src0, b.Min.X+cols[c].src1, b.Min.Y+rows[r].src1)
			part := img.SubImage(rect).(*ebiten.Image)
			drawPart(screen, part,
				dstX[c], dstY[r],
				dstW[c]/float64(rect.Dx()), dstH[r]/float64(rect.Dy()), tint)
		}
	}
}

func drawPart(screen, img *ebiten.Image, x, y, scaleX, scaleY float64, tint color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(x, y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	screen.DrawImage(img, op)
}
