package scene

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitLimits bound the orbit navigation around the camera target.
type OrbitLimits struct {
	MinPolar    float32 // radians from +Y
	MaxPolar    float32
	MinDistance float32
	MaxDistance float32
	RotateSpeed float32
}

// DefaultOrbitLimits keeps the camera above the ground plane and between 10 and 50 units away.
func DefaultOrbitLimits() OrbitLimits {
	return OrbitLimits{
		MinPolar:    0,
		MaxPolar:    math.Pi / 2.5,
		MinDistance: 10,
		MaxDistance: 50,
		RotateSpeed: 0.5,
	}
}

// minPolarEpsilon keeps the view direction off the up axis so LookAt stays defined.
const minPolarEpsilon = 1e-3

// Camera is a perspective camera orbiting Target. FovY is in degrees.
type Camera struct {
	Position [3]float32
	Target   [3]float32
	Up       [3]float32
	FovY     float32
	Near     float32
	Far      float32
	Limits   OrbitLimits
}

// NewCamera returns the editor camera at (-15, 15, 15) looking at the origin.
func NewCamera() *Camera {
	return &Camera{
		Position: [3]float32{-15, 15, 15},
		Up:       [3]float32{0, 1, 0},
		FovY:     75,
		Near:     0.1,
		Far:      1000,
		Limits:   DefaultOrbitLimits(),
	}
}

// View returns the view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(mgl32.Vec3(c.Position), mgl32.Vec3(c.Target), mgl32.Vec3(c.Up))
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// spherical returns distance, polar (from +Y) and azimuth of Position around Target.
func (c *Camera) spherical() (r, polar, azimuth float32) {
	off := mgl32.Vec3(c.Position).Sub(mgl32.Vec3(c.Target))
	r = off.Len()
	if r == 0 {
		return 0, 0, 0
	}
	polar = math32.Acos(mgl32.Clamp(off[1]/r, -1, 1))
	azimuth = math32.Atan2(off[0], off[2])
	return r, polar, azimuth
}

func (c *Camera) setSpherical(r, polar, azimuth float32) {
	sin := math32.Sin(polar)
	c.Position = [3]float32{
		c.Target[0] + r*sin*math32.Sin(azimuth),
		c.Target[1] + r*math32.Cos(polar),
		c.Target[2] + r*sin*math32.Cos(azimuth),
	}
}

// Orbit rotates the camera around its target by the given angles (radians, scaled by the
// rotate speed) and clamps the polar angle and distance to the limits.
func (c *Camera) Orbit(dAzimuth, dPolar float32) {
	r, polar, az := c.spherical()
	speed := c.Limits.RotateSpeed
	if speed == 0 {
		speed = 1
	}
	az -= dAzimuth * speed
	polar -= dPolar * speed
	c.setSpherical(c.clampDistance(r), c.clampPolar(polar), az)
}

// Zoom scales the orbit distance by factor (<1 moves closer) within the limits.
func (c *Camera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	r, polar, az := c.spherical()
	c.setSpherical(c.clampDistance(r*factor), c.clampPolar(polar), az)
}

// Distance returns the distance from Position to Target.
func (c *Camera) Distance() float32 {
	r, _, _ := c.spherical()
	return r
}

// Polar returns the polar angle from +Y in radians.
func (c *Camera) Polar() float32 {
	_, p, _ := c.spherical()
	return p
}

func (c *Camera) clampPolar(p float32) float32 {
	lo := max(c.Limits.MinPolar, minPolarEpsilon)
	hi := c.Limits.MaxPolar
	if hi <= 0 {
		hi = math.Pi - minPolarEpsilon
	}
	return mgl32.Clamp(p, lo, hi)
}

func (c *Camera) clampDistance(r float32) float32 {
	if c.Limits.MaxDistance <= 0 {
		return max(r, c.Limits.MinDistance)
	}
	return mgl32.Clamp(r, c.Limits.MinDistance, c.Limits.MaxDistance)
}
