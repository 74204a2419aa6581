// Package imageutil provides the image side of seam carving: wrappers around
// the standard image types, packed pixel conversion, grayscale and Sobel
// energy providers, file I/O, resizing and text annotation.
package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Pack returns the color as an opaque 0xAARRGGBB pixel value.
func (rgb RGB) Pack() uint32 {
	return 0xff<<24 | uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B)
}

// Pack converts an RGBA color to a 0xAARRGGBB pixel value.
func Pack(c color.RGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack converts a 0xAARRGGBB pixel value back to an RGBA color.
func Unpack(p uint32) color.RGBA {
	return color.RGBA{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to an RGBAImage anchored at
// the origin.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(rgba.RGBA, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// RGBAImageFromPixels builds an image from a row-major packed pixel buffer.
func RGBAImageFromPixels(pixels []uint32, width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		row := pixels[y*width : (y+1)*width]
		for x, p := range row {
			img.SetRGBA(x, y, Unpack(p))
		}
	}
	return img
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// Grid returns the image as rows of packed pixels.
func (img *RGBAImage) Grid() [][]uint32 {
	width, height := img.Width(), img.Height()
	grid := make([][]uint32, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]uint32, width)
		for x := 0; x < width; x++ {
			grid[y][x] = Pack(img.RGBAAt(x, y))
		}
	}
	return grid
}

// Transpose returns a copy of the image with rows and columns swapped.
func (img *RGBAImage) Transpose() *RGBAImage {
	width, height := img.Width(), img.Height()
	dst := NewRGBAImage(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.SetRGBA(y, x, img.RGBAAt(x, y))
		}
	}
	return dst
}

// GrayImage wraps image.Gray for single-channel images (edge maps, masks).
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// GrayImageFromImage converts any image.Image to GrayImage.
func GrayImageFromImage(img image.Image) *GrayImage {
	bounds := img.Bounds()
	gray := NewGrayImage(bounds.Dx(), bounds.Dy())
	draw.Draw(gray.Gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the grayscale value at (x, y).
func (img *GrayImage) GetGray(x, y int) uint8 {
	return img.GrayAt(x, y).Y
}
