package imageutil

import "image/color"

// Luminance returns the BT.601 luminance of a packed pixel:
// Y = 0.299*R + 0.587*G + 0.114*B, rounded with integer math.
// This matches OpenCV's COLOR_BGR2GRAY.
func Luminance(p uint32) uint8 {
	r, g, b := int(p>>16&0xff), int(p>>8&0xff), int(p&0xff)
	lum := (299*r + 587*g + 114*b + 500) / 1000
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}

// GrayRow writes the luminance of every pixel in src into dst.
// dst must be at least as long as src.
func GrayRow(dst []uint8, src []uint32) {
	for x, p := range src {
		dst[x] = Luminance(p)
	}
}

// ToGrayscale converts an RGBA image to grayscale using the same luminance
// formula as Luminance.
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray.Gray.SetGray(x, y, color.Gray{Y: Luminance(Pack(img.RGBAAt(x, y)))})
		}
	}

	return gray
}

// GrayscaleToRGBA converts a grayscale image back to RGBA.
func GrayscaleToRGBA(gray *GrayImage) *RGBAImage {
	width, height := gray.Width(), gray.Height()
	rgba := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := gray.GrayAt(x, y).Y
			rgba.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}

	return rgba
}
