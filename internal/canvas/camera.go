package canvas

// Default zoom bounds. The camera never leaves [MinZoom, MaxZoom].
const (
	// MinZoom is the default minimum zoom level.
	MinZoom = 0.1
	// MaxZoom is the default maximum zoom level.
	MaxZoom = 8.0
)

// Camera describes the viewport over the page: a page-space offset and a
// zoom factor. The zero value is not a valid camera; Zoom must be positive.
type Camera struct {
	// X is the horizontal page-space offset.
	X float64

	// Y is the vertical page-space offset.
	Y float64

	// Zoom is the scale factor from page units to screen pixels.
	Zoom float64
}

// ScreenToPage converts a screen-space point to page space using this camera.
func (c Camera) ScreenToPage(p Point) Point {
	return Point{
		X: p.X/c.Zoom - c.X,
		Y: p.Y/c.Zoom - c.Y,
	}
}

// PageToScreen converts a page-space point to screen space using this camera.
func (c Camera) PageToScreen(p Point) Point {
	return Point{
		X: (p.X + c.X) * c.Zoom,
		Y: (p.Y + c.Y) * c.Zoom,
	}
}

// Translated returns a camera shifted by (dx, dy) in page units.
func (c Camera) Translated(dx, dy float64) Camera {
	c.X += dx
	c.Y += dy
	return c
}

// ZoomedToPoint returns a camera at the given zoom whose offset is solved
// so that the page point currently under the screen point remains under it
// after the zoom change. Passing the camera's own zoom returns an equal
// camera.
func (c Camera) ZoomedToPoint(screen Point, zoom float64) Camera {
	page := c.ScreenToPage(screen)
	return Camera{
		X:    screen.X/zoom - page.X,
		Y:    screen.Y/zoom - page.Y,
		Zoom: zoom,
	}
}

// ClampZoom clamps a zoom value to [min, max].
func ClampZoom(zoom, min, max float64) float64 {
	if zoom < min {
		return min
	}
	if zoom > max {
		return max
	}
	return zoom
}
