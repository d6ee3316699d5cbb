package icon

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// Size is the icon edge length in pixels, the same geometry the
	// tray manager is asked to embed.
	Size = 24

	// TextScale is the pixel size glyphs are rasterized at.
	TextScale = 16
)

var (
	background = color.NRGBA{R: 35, G: 35, B: 35, A: 255}
	foreground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Render rasterizes text into a Size×Size pixel buffer laid out the
// way PutImage expects it for 24-bit ZPixmap visuals: blue, green,
// red, then an unused zero byte per pixel. Identical text and face
// always produce an identical buffer.
func Render(text string, face font.Face) []byte {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(foreground),
		Face: face,
	}

	width := d.MeasureString(text)
	metrics := face.Metrics()

	// The -2px/-1px nudges compensate for the rasterizer's left and
	// top bias at this scale.
	d.Dot = fixed.Point26_6{
		X: (fixed.I(Size)-width)/2 - fixed.I(2),
		Y: (fixed.I(Size)-(metrics.Ascent-metrics.Descent))/2 + metrics.Ascent - fixed.I(1),
	}
	d.DrawString(text)

	return toZPixmap(img)
}

func toZPixmap(img *image.RGBA) []byte {
	out := make([]byte, 0, Size*Size*4)
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b := img.Pix[i], img.Pix[i+1], img.Pix[i+2]
		out = append(out, b, g, r, 0)
	}
	return out
}
