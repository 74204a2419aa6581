package imageutil

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// LabelSize is the point size used by Annotate.
const LabelSize = 12

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
	labelFontErr  error
)

// loadLabelFont parses the embedded Go Regular font once.
func loadLabelFont() (*truetype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = freetype.ParseFont(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// Annotate draws text in the top-left corner of img on a dark backdrop.
// The text is clipped to the image bounds.
func Annotate(img *RGBAImage, text string) error {
	ttf, err := loadLabelFont()
	if err != nil {
		return fmt.Errorf("failed to parse label font: %w", err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    LabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	textWidth := font.MeasureString(face, text).Ceil()

	const pad = 2
	backdrop := image.Rect(0, 0, textWidth+2*pad, lineHeight+2*pad).Intersect(img.Bounds())
	draw.Draw(img.RGBA, backdrop, image.NewUniform(color.RGBA{A: 0xc0}), image.Point{}, draw.Over)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(LabelSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img.RGBA)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	if _, err := ctx.DrawString(text, freetype.Pt(pad, pad+ascent)); err != nil {
		return fmt.Errorf("failed to draw label: %w", err)
	}
	return nil
}
