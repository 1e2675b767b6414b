package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestProjectionAspectMatchesViewport(t *testing.T) {
	cam := DefaultCamera()
	sizes := [][2]int{{650, 500}, {500, 650}, {1, 1}, {1920, 1080}, {3, 7000}, {8000, 2}}

	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		want := float32(w) / float32(h)
		assert.InDelta(t, want, Aspect(w, h), 1e-6)

		// perspective: m[0] = f/aspect, m[5] = f
		p := cam.Projection(w, h)
		assert.InEpsilon(t, want, p[5]/p[0], 1e-5, "%dx%d", w, h)
	}
}

func TestAspectDegenerateHeight(t *testing.T) {
	assert.Equal(t, float32(1), Aspect(640, 0))
}

func TestViewLooksAtOrigin(t *testing.T) {
	cam := DefaultCamera()
	eyeSpace := mgl32.TransformCoordinate(cam.Target, cam.View())
	assert.InDelta(t, 0, eyeSpace[0], 1e-4)
	assert.InDelta(t, 0, eyeSpace[1], 1e-4)
	assert.Less(t, eyeSpace[2], float32(0), "target is in front of the camera")
}

func TestScreenToWorldCentreHitsTarget(t *testing.T) {
	cam := DefaultCamera()
	p, ok := ScreenToWorld(cam, 650, 500, 325, 250)
	assert.True(t, ok)
	assert.InDelta(t, 0, p[0], 1e-2)
	assert.InDelta(t, 0, p[1], 1e-4)
	assert.InDelta(t, 0, p[2], 1e-2)
}

func TestScreenToWorldLowerPixelsAreNearer(t *testing.T) {
	cam := DefaultCamera()
	upper, ok := ScreenToWorld(cam, 650, 500, 325, 200)
	assert.True(t, ok)
	lower, ok := ScreenToWorld(cam, 650, 500, 325, 450)
	assert.True(t, ok)
	assert.Greater(t, lower[2], upper[2])
}

func TestScreenToWorldMissesAboveHorizon(t *testing.T) {
	cam := DefaultCamera()
	cam.Eye = mgl32.Vec3{0, 1, 0}
	cam.Target = mgl32.Vec3{0, 3, -10}
	_, ok := ScreenToWorld(cam, 650, 500, 325, 250)
	assert.False(t, ok, "ray points up, away from the ground")

	_, ok = ScreenToWorld(DefaultCamera(), 0, 0, 0, 0)
	assert.False(t, ok)
}
