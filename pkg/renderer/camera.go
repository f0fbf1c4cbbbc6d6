package renderer

import (
	"math"

	"spheretrace/pkg/core"
)

// Camera maps raster coordinates to world-space rays through a thin
// lens. The basis is left-handed with raster (0,0) at the top-left, and
// the focal plane sits at the look-at point, so the aperture defocuses
// everything away from it.
type Camera struct {
	origin    core.Vec3
	direction core.Vec3 // unit look direction scaled by focus distance
	right     core.Vec3
	up        core.Vec3

	viewportWidth  float64
	viewportHeight float64
	rasterWidth    int
	rasterHeight   int
	aperture       float64
}

// NewCamera creates a camera from placement, raster size, vertical field
// of view in degrees, and aperture radius. Focus distance is the
// distance from look-from to look-at.
func NewCamera(lookFrom, lookAt core.Vec3, width, height int, fovDegrees, aperture float64) *Camera {
	dir := lookAt.Subtract(lookFrom).Normalize()
	right := core.UnitY().Cross(dir).Normalize()
	up := dir.Cross(right).Normalize()

	focusDistance := lookAt.Subtract(lookFrom).Length()
	viewportWidth := 2.0 * math.Tan(fovDegrees*math.Pi/360.0) * focusDistance

	return &Camera{
		origin:         lookFrom,
		direction:      dir.Multiply(focusDistance),
		right:          right,
		up:             up,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportWidth * float64(height) / float64(width),
		rasterWidth:    width,
		rasterHeight:   height,
		aperture:       aperture,
	}
}

// RayThrough builds the ray for raster pixel (u, v). lensU/lensV offset
// the ray origin within the aperture disc for depth of field; pixelU/
// pixelV are fractional sub-pixel offsets for jittered anti-aliasing.
func (c *Camera) RayThrough(u, v int, lensU, lensV, pixelU, pixelV float64) core.Ray {
	uStep := c.viewportWidth / float64(c.rasterWidth)
	vStep := c.viewportHeight / float64(c.rasterHeight)

	topLeft := c.origin.Add(c.direction).
		Add(c.right.Multiply(c.viewportWidth / -2.0)).
		Add(c.up.Multiply(c.viewportHeight / 2.0))

	from := c.origin.
		Add(c.up.Multiply(lensU * c.aperture)).
		Add(c.right.Multiply(lensV * c.aperture))
	to := topLeft.
		Add(c.right.Multiply(uStep * (float64(u) + pixelU))).
		Add(c.up.Negate().Multiply(vStep * (float64(v) + pixelV)))

	return core.NewRay(from, to.Subtract(from))
}

// RasterSize returns the camera's raster resolution
func (c *Camera) RasterSize() (width, height int) {
	return c.rasterWidth, c.rasterHeight
}
