package seamcarve

import "fmt"

// ResizeTo removes seams, or restores previously removed ones, until the
// image is width columns wide. It returns the number of seams removed or
// restored. Growing past the original width is not possible; only removed
// seams can come back.
func (c *Carver) ResizeTo(width int) (int, error) {
	if width < 2 {
		return 0, fmt.Errorf("resize to %d: %w", width, ErrWidthTooSmall)
	}
	if width > c.width+len(c.seams) {
		return 0, fmt.Errorf("resize to %d with %d restorable: %w",
			width, c.width+len(c.seams), ErrNoHistory)
	}

	steps := 0
	for c.width > width && c.Remove(false, 0) {
		steps++
	}
	for c.width < width && c.Add(false, 0) {
		steps++
	}
	return steps, nil
}
