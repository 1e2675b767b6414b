package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fixed viewpoint with a perspective lens
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	FovY   float32 // degrees
	Near   float32
	Far    float32
}

// DefaultCamera looks at the origin from above and in front of the ground
func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 15, 22},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   60,
		Near:   0.2,
		Far:    40,
	}
}

// View returns the world-to-eye matrix
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Aspect returns width/height. A zero height (minimised window) yields 1.
func Aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Projection returns the perspective matrix for a viewport of the given size
func (c Camera) Projection(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), Aspect(width, height), c.Near, c.Far)
}

// ScreenToWorld casts a ray through window pixel (x, y), origin top-left,
// and returns where it meets the ground plane y=0. ok is false when the ray
// is parallel to or points away from the ground.
func ScreenToWorld(c Camera, width, height int, x, y float64) (mgl32.Vec3, bool) {
	if width <= 0 || height <= 0 {
		return mgl32.Vec3{}, false
	}

	ndcX := (2.0*float32(x))/float32(width) - 1.0
	ndcY := 1.0 - (2.0*float32(y))/float32(height)

	invViewProj := c.Projection(width, height).Mul4(c.View()).Inv()

	nearWorld := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1.0, 1.0})
	nearWorld = nearWorld.Mul(1.0 / nearWorld[3])
	farWorld = farWorld.Mul(1.0 / farWorld[3])

	origin := nearWorld.Vec3()
	dir := farWorld.Vec3().Sub(origin).Normalize()

	return rayPlaneY(origin, dir, 0)
}

func rayPlaneY(origin, dir mgl32.Vec3, planeY float32) (mgl32.Vec3, bool) {
	if mgl32.Abs(dir[1]) < 1e-6 {
		return mgl32.Vec3{}, false
	}
	t := (planeY - origin[1]) / dir[1]
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}
