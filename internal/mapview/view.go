package mapview

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Pixel is a position on the viewport, in terminal cells, with Y growing
// downwards.
type Pixel struct {
	X, Y int
}

// String returns a representation of the pixel for logging purposes.
func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// View is a planar view onto the map: the coordinate at the viewport's center
// and the resolution in map units per cell.
type View struct {
	Center     orb.Point
	Resolution float64

	Width, Height int
}

// CoordinateFromPixel returns the map coordinate shown at the given pixel.
func (v View) CoordinateFromPixel(p Pixel) orb.Point {
	return orb.Point{
		v.Center[0] + (float64(p.X)-float64(v.Width)/2)*v.Resolution,
		v.Center[1] - (float64(p.Y)-float64(v.Height)/2)*v.Resolution,
	}
}

// PixelFromCoordinate returns the pixel at which the given coordinate is
// shown.
func (v View) PixelFromCoordinate(c orb.Point) Pixel {
	return Pixel{
		X: int(math.Round((c[0]-v.Center[0])/v.Resolution + float64(v.Width)/2)),
		Y: int(math.Round(-(c[1]-v.Center[1])/v.Resolution + float64(v.Height)/2)),
	}
}

// VisibleBounds returns the extent of the map shown in the viewport.
func (v View) VisibleBounds() orb.Bound {
	topLeft := v.CoordinateFromPixel(Pixel{0, 0})
	bottomRight := v.CoordinateFromPixel(Pixel{v.Width, v.Height})
	return orb.Bound{
		Min: orb.Point{topLeft[0], bottomRight[1]},
		Max: orb.Point{bottomRight[0], topLeft[1]},
	}
}

// Pan moves the view by the given number of cells.
func (v *View) Pan(dx, dy int) {
	v.Center[0] += float64(dx) * v.Resolution
	v.Center[1] -= float64(dy) * v.Resolution
}

// Zoom multiplies the resolution by the given factor.
// Factors below 1 zoom in.
func (v *View) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	v.Resolution *= factor
}

// Fit centers the view on the given extent and sets the resolution such that
// it is fully visible.
func (v *View) Fit(b orb.Bound) {
	v.Center = b.Center()
	if v.Width <= 1 || v.Height <= 1 {
		return
	}
	rx := (b.Max[0] - b.Min[0]) / float64(v.Width-1)
	ry := (b.Max[1] - b.Min[1]) / float64(v.Height-1)
	if r := math.Max(rx, ry); r > 0 {
		v.Resolution = r
	}
}
