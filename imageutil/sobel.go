package imageutil

import "math"

var (
	sobelX = NewKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
	sobelY = NewKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
)

// sobelGradients computes horizontal and vertical Sobel gradients of a
// luminance plane.
func sobelGradients(plane [][]float64) (gx, gy [][]float64) {
	return ConvolveFloat(plane, sobelX), ConvolveFloat(plane, sobelY)
}

// magnitude folds two gradient planes into clamped byte magnitudes.
func magnitude(gx, gy [][]float64) [][]uint8 {
	out := make([][]uint8, len(gx))
	for y := range gx {
		out[y] = make([]uint8, len(gx[y]))
		for x := range gx[y] {
			out[y][x] = clampUint8(math.Sqrt(gx[y][x]*gx[y][x] + gy[y][x]*gy[y][x]))
		}
	}
	return out
}

// SobelMagnitude computes the gradient magnitude of a grayscale image.
func SobelMagnitude(gray *GrayImage) *GrayImage {
	width, height := gray.Width(), gray.Height()
	result := NewGrayImage(width, height)

	plane := make([][]float64, height)
	for y := 0; y < height; y++ {
		plane[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			plane[y][x] = float64(gray.GrayAt(x, y).Y)
		}
	}

	mag := magnitude(sobelGradients(plane))
	for y := 0; y < height; y++ {
		copy(result.Gray.Pix[y*result.Stride:], mag[y])
	}

	return result
}

// SobelPacked computes the Sobel gradient magnitude of a grid of packed
// pixels. Each row of the result has the same length as the input row and
// holds values in [0, 255].
func SobelPacked(grid [][]uint32) [][]uint8 {
	plane := make([][]float64, len(grid))
	for y, row := range grid {
		plane[y] = make([]float64, len(row))
		for x, p := range row {
			plane[y][x] = float64(Luminance(p))
		}
	}
	return magnitude(sobelGradients(plane))
}
