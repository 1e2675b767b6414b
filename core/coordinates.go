package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// HeadingVector returns the unit motion vector on the ground plane for a
// heading in degrees. Heading rotates counter-clockwise about +Y, so the
// vector is taken at the negated angle.
func HeadingVector(headingDeg float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(-headingDeg)
	return mgl64.Vec3{math.Cos(rad), 0, math.Sin(rad)}
}

// Vec3f narrows a double precision vector for the GPU
func Vec3f(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// NormalizeDegrees wraps an angle into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
