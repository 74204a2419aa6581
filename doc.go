// Package seamcarve implements content-aware image resizing by seam carving.
//
// A Carver repeatedly finds the cheapest top-to-bottom connected path of
// pixels (a seam) through its cumulative cost table and removes it. Every
// removal is recorded on a LIFO history, so Add restores the most recently
// removed seam exactly.
//
// Two energy strategies are available:
//
//   - Backward (default): Sobel gradient magnitude computed once from the
//     original image. Seam removal only splices energy values out; they are
//     never recomputed, so energy can drift from a freshly computed gradient
//     after many operations. Borders clamp to the two in-range neighbors.
//   - Forward: grayscale values, with a cost table that models the new
//     horizontal adjacencies a removal creates. Columns wrap around.
//
// Usage:
//
//	img, _ := imageutil.LoadImage("in.png")
//	c := seamcarve.NewFromImage(img, seamcarve.WithForwardEnergy(0))
//	for c.Width() > 300 {
//		c.Remove(false, 0)
//	}
//	imageutil.SaveImage(c.Image().RGBA, "out.png")
//
// A Carver is not safe for concurrent use.
package seamcarve
