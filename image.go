package seamcarve

import "github.com/wbrown/seamcarve/imageutil"

// NewFromImage creates a Carver over the pixels of img.
func NewFromImage(img *imageutil.RGBAImage, opts ...Option) *Carver {
	return New(img.Grid(), opts...)
}

// Image renders the current buffer as an RGBA image.
func (c *Carver) Image() *imageutil.RGBAImage {
	return imageutil.RGBAImageFromPixels(c.buf, c.width, c.height)
}

// EnergyImage renders the current energy rows as a grayscale picture.
func (c *Carver) EnergyImage() *imageutil.RGBAImage {
	gray := imageutil.NewGrayImage(c.width, c.height)
	for y, row := range c.energy {
		copy(gray.Pix[y*gray.Stride:], row)
	}
	return imageutil.GrayscaleToRGBA(gray)
}

// ApplyMask protects every pixel whose mask value is above threshold by
// giving it maximum energy, and returns how many pixels were marked. The
// mask is aligned to the top-left corner; parts outside the current image
// are ignored.
func (c *Carver) ApplyMask(mask *imageutil.GrayImage, threshold uint8) int {
	n := 0
	height := min(c.height, mask.Height())
	width := min(c.width, mask.Width())
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask.GetGray(x, y) > threshold {
				c.SetEdge(x, y)
				n++
			}
		}
	}
	if n > 0 {
		c.rebuildCost()
	}
	return n
}
