package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is an angle in degrees about an axis
type Rotation struct {
	Degrees float32
	Axis    mgl32.Vec3
}

var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Transform is a per-object placement: translate, then rotate in order,
// then scale.
type Transform struct {
	Translate mgl32.Vec3
	Rotations []Rotation
	Scale     mgl32.Vec3
}

// Matrix composes T * R1 * ... * Rn * S. A zero Scale is treated as unit scale.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Translate[0], t.Translate[1], t.Translate[2])
	for _, r := range t.Rotations {
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(r.Degrees), r.Axis))
	}
	scale := t.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	return m.Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// SubMatrix places the whole submarine: translate to its position at hull
// height, then turn it to its heading.
func SubMatrix(s *State) mgl32.Mat4 {
	return Transform{
		Translate: Vec3f(mgl64.Vec3{s.XPos, s.Altitude + HullBaseHeight, s.ZPos}),
		Rotations: []Rotation{{Degrees: float32(s.Heading), Axis: AxisY}},
	}.Matrix()
}

// HullMatrix stretches the unit sphere into the hull
func HullMatrix(s *State) mgl32.Mat4 {
	return SubMatrix(s).Mul4(mgl32.Scale3D(6, 1, 1))
}

// PropellerMatrix places the propeller blade at the stern. The blade is
// nested under the hull scale.
func PropellerMatrix(s *State) mgl32.Mat4 {
	return HullMatrix(s).Mul4(Transform{
		Translate: mgl32.Vec3{1, 0, 0},
		Rotations: []Rotation{
			{Degrees: 90, Axis: AxisY},
			{Degrees: float32(s.PropAngle), Axis: AxisZ},
		},
		Scale: mgl32.Vec3{0.1, 1, 0.1},
	}.Matrix())
}

// TowerMatrix places the tower cylinder upright on top of the hull
func TowerMatrix(s *State) mgl32.Mat4 {
	return HullMatrix(s).Mul4(Transform{
		Translate: mgl32.Vec3{0, 0.2, 0},
		Rotations: []Rotation{{Degrees: -90, Axis: AxisX}},
		Scale:     mgl32.Vec3{1, 0.4, 1},
	}.Matrix())
}

// NormalMatrix returns the matrix that carries object normals into world
// space for a model matrix with non-uniform scale.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}
