package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

// ThumbnailInfo carries the caption fields rendered onto a build
// thumbnail.
type ThumbnailInfo struct {
	ShapeName string
	Radius    string
	AtomCount int
}

// WriteThumbnail composites an existing SVG-projection PNG render
// (already rasterized by the caller, e.g. via an external SVG
// rasterizer or a prior draw2d pass) with a caption band drawn via
// draw2d (background rectangle) and golang/freetype (label text, using
// the embedded go/x/image Go Regular face so no on-disk font file is
// required), then resizes the result to outPx square via x/image/draw.
func WriteThumbnail(path string, projection image.Image, info ThumbnailInfo, outPx int) error {
	bounds := projection.Bounds()
	captionHeight := 40
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()+captionHeight))

	draw.Draw(canvas, bounds, projection, bounds.Min, draw.Src)

	gc := draw2dimg.NewGraphicContext(canvas)
	gc.SetFillColor(color.RGBA{R: 20, G: 20, B: 20, A: 255})
	gc.MoveTo(0, float64(bounds.Dy()))
	gc.LineTo(float64(bounds.Dx()), float64(bounds.Dy()))
	gc.LineTo(float64(bounds.Dx()), float64(bounds.Dy()+captionHeight))
	gc.LineTo(0, float64(bounds.Dy()+captionHeight))
	gc.Close()
	gc.Fill()

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(font)
	ctx.SetFontSize(12)
	ctx.SetClip(canvas.Bounds())
	ctx.SetDst(canvas)
	ctx.SetSrc(image.NewUniform(color.White))

	label := fmt.Sprintf("%s  r=%s  atoms=%d", info.ShapeName, info.Radius, info.AtomCount)
	pt := freetype.Pt(6, bounds.Dy()+captionHeight-14)
	if _, err := ctx.DrawString(label, pt); err != nil {
		return err
	}

	resized := image.NewRGBA(image.Rect(0, 0, outPx, outPx))
	draw.CatmullRom.Scale(resized, resized.Bounds(), canvas, canvas.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, resized)
}
