package camera

import (
	"testing"

	"DeskScene/shared/scene"
	"DeskScene/shared/util"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-3, "componente %d", i)
	}
}

func TestRestoreAndState(t *testing.T) {
	view := scene.View{Target: mgl32.Vec3{1, 2, 3}, Distance: 13, AngleY: 30, AngleX: -28}
	c := New(view)

	got := c.State()
	assertVecNear(t, view.Target, got.Target)
	assert.InDelta(t, 13, got.Distance, 1e-4)
	assert.InDelta(t, 30, got.AngleY, 1e-3)
	assert.InDelta(t, -28, got.AngleX, 1e-3)
	assert.False(t, got.Orthographic)
	assert.Equal(t, ModePerspective, c.Mode)
}

func TestRestoreClamps(t *testing.T) {
	c := New(scene.View{Distance: 1000, AngleX: 45})
	got := c.State()
	assert.Equal(t, c.MaxZoom, got.Distance)
	assert.Less(t, got.AngleX, float32(0))
}

func TestPositionLooksAtTarget(t *testing.T) {
	c := New(scene.View{Target: mgl32.Vec3{0, 1, 0}, Distance: 10, AngleY: 0, AngleX: -90})

	// Elevação é limitada em -89 graus: quase em cima do alvo
	pos := c.Position()
	assert.InDelta(t, 0, pos.X(), 1e-3)
	assert.Greater(t, pos.Y(), float32(10))
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, util.FromRL(c.RLCamera.Target))
	assert.InDelta(t, 10, pos.Sub(mgl32.Vec3{0, 1, 0}).Len(), 1e-3)
}

func TestFrontView(t *testing.T) {
	c := New(scene.View{Target: mgl32.Vec3{0, 0, 0}, Distance: 10, AngleY: 0, AngleX: -2})
	pos := c.Position()
	assert.Greater(t, pos.Z(), float32(9), "ângulo 0 olha de +Z para o alvo")
}

func TestApplyZoom(t *testing.T) {
	c := New(scene.View{Distance: 10, AngleX: -30})

	assert.True(t, c.Apply(Input{Wheel: 2}, 0.016))
	assert.InDelta(t, 10-2*c.ZoomSpeed, c.TargetZoom, 1e-4)

	c.Apply(Input{Wheel: -1000}, 0.016)
	assert.Equal(t, c.MaxZoom, c.TargetZoom)
}

func TestApplyOrbitClampsElevation(t *testing.T) {
	c := New(scene.View{Distance: 10, AngleX: -30})

	c.Apply(Input{DragY: -100000}, 0.016)
	assert.InDelta(t, maxElevation, c.TargetAngleX, 1e-5)

	c.Apply(Input{DragY: 100000}, 0.016)
	assert.InDelta(t, minElevation, c.TargetAngleX, 1e-5)
}

func TestApplyMovesRelativeToView(t *testing.T) {
	c := New(scene.View{Distance: 10, AngleY: 0, AngleX: -30})

	assert.True(t, c.Apply(Input{Forward: 1}, 0.1))
	assert.Less(t, c.TargetLookAt.Z(), float32(0), "W anda para -Z olhando de +Z")
	assert.InDelta(t, 0, c.TargetLookAt.X(), 1e-4)

	before := c.TargetLookAt
	c.Apply(Input{Right: 1}, 0.1)
	assert.Greater(t, c.TargetLookAt.X(), before.X())

	before = c.TargetLookAt
	c.Apply(Input{Up: 1}, 0.1)
	assert.Greater(t, c.TargetLookAt.Y(), before.Y())
}

func TestApplyNoInput(t *testing.T) {
	c := New(scene.DefaultView())
	before := c.State()
	assert.False(t, c.Apply(Input{}, 0.016))
	assert.Equal(t, before, c.State())
}

func TestProjectionSwitch(t *testing.T) {
	c := New(scene.View{Distance: 10, AngleX: -30})

	ortho := ModeOrthographic
	assert.True(t, c.Apply(Input{Projection: &ortho}, 0.016))
	assert.Equal(t, ModeOrthographic, c.Mode)
	assert.True(t, c.State().Orthographic)
	assert.InDelta(t, 6, c.RLCamera.Fovy, 1e-4)

	assert.False(t, c.Apply(Input{Projection: &ortho}, 0.016), "mesmo modo não conta como movimento")

	persp := ModePerspective
	c.Apply(Input{Projection: &persp}, 0.016)
	assert.Equal(t, c.Fovy, c.RLCamera.Fovy)
}

func TestUpdateConverges(t *testing.T) {
	c := New(scene.View{Distance: 10, AngleX: -30})
	c.TargetLookAt = mgl32.Vec3{5, 0, 0}
	c.TargetZoom = 20

	for i := 0; i < 200; i++ {
		c.Update(1.0 / 60)
	}

	assertVecNear(t, c.TargetLookAt, c.CurrentLookAt)
	assert.InDelta(t, 20, c.CurrentZoom, 1e-2)
}
