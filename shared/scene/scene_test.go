package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func TestModelMatrix(t *testing.T) {
	tests := []struct {
		name     string
		scale    mgl32.Vec3
		rot      mgl32.Vec3
		pos      mgl32.Vec3
		point    mgl32.Vec3
		expected mgl32.Vec3
	}{
		{"identidade", mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}},
		{"escala antes da translação", mgl32.Vec3{2, 3, 4}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{3, 4, 5}},
		{"escala, giro em Y e translação", mgl32.Vec3{2, 1, 1}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, -2}},
		// Ry é aplicado antes de Rx: (0,1,0) não muda em Ry e vira (0,0,1) em Rx.
		{"ordem Rx*Ry", mgl32.Vec3{1, 1, 1}, mgl32.Vec3{90, 90, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
		{"plano da parede", mgl32.Vec3{10, 1, 6}, mgl32.Vec3{90, 0, 0}, mgl32.Vec3{0, 6, -6}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, -6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ModelMatrix(tt.scale, tt.rot.X(), tt.rot.Y(), tt.rot.Z(), tt.pos)
			got := transformPoint(m, tt.point)
			for i := 0; i < 3; i++ {
				assert.InDelta(t, tt.expected[i], got[i], 1e-5, "componente %d: got %v, want %v", i, got, tt.expected)
			}
		})
	}
}

func TestObjectTransformMatchesModelMatrix(t *testing.T) {
	o := Object{Scale: mgl32.Vec3{0.5, 0.1, 2}, Rotation: mgl32.Vec3{0, -40, 0}, Position: mgl32.Vec3{-1.3, 0, -1.55}}
	want := ModelMatrix(o.Scale, 0, -40, 0, o.Position)
	assert.True(t, o.Transform().ApproxEqual(want))
}

func TestObjectUVDefault(t *testing.T) {
	assert.Equal(t, mgl32.Vec2{1, 1}, Object{}.UV())
	assert.Equal(t, mgl32.Vec2{2, 3}, Object{UVScale: &mgl32.Vec2{2, 3}}.UV())
}

func TestMaterialRegistry(t *testing.T) {
	r, err := NewMaterialRegistry(
		Material{Tag: "light1", Shininess: 1},
		Material{Tag: "light2", Shininess: 10},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"light1", "light2"}, r.Tags())

	m, ok := r.Find("light2")
	require.True(t, ok)
	assert.Equal(t, float32(10), m.Shininess)

	_, ok = r.Find("metal")
	assert.False(t, ok)

	err = r.Define(Material{Tag: "light1"})
	assert.True(t, errors.Is(err, ErrDuplicateMaterial))
	assert.ErrorIs(t, r.Define(Material{}), ErrEmptyTag)
	assert.Equal(t, 2, r.Len())
}

func TestBuiltinsAreValid(t *testing.T) {
	for _, name := range BuiltinNames() {
		s, err := Builtin(name)
		require.NoError(t, err)
		assert.NoError(t, s.Validate(), name)
		assert.Equal(t, name, s.Name)
	}

	_, err := Builtin("garage")
	assert.Error(t, err)
}

func TestBuiltinReturnsFreshCopy(t *testing.T) {
	a, _ := Builtin("desk")
	b, _ := Builtin("desk")
	a.Objects[2].Color[0] = 1
	assert.Equal(t, float32(0.2), b.Objects[2].Color[0])
}

func TestDeskScene(t *testing.T) {
	s := DeskScene()

	assert.Equal(t, []string{"room", "monitor", "keyboard", "mouse", "mousepad"}, s.Groups())
	assert.Equal(t, []Shape{ShapePlane, ShapeCylinder, ShapePrism, ShapeBox, ShapeSphere}, s.Shapes())
	assert.Len(t, s.Textures, 5)
	assert.Len(t, s.Lights, 2)

	var screen Object
	for _, o := range s.Objects {
		if o.Name == "monitor_screen" {
			screen = o
		}
	}
	assert.Equal(t, "monitor", screen.Texture)
	assert.Equal(t, "light2", s.MaterialFor(screen))
	assert.Equal(t, "light1", s.MaterialFor(s.Objects[0]))
	assert.Equal(t, "light2", s.MaterialFor(s.Objects[2]))
}

func TestShapesScene(t *testing.T) {
	s := ShapesScene()

	assert.Equal(t, []string{"room", "left", "center", "right"}, s.Groups())
	assert.Empty(t, s.Textures)
	assert.Empty(t, s.Lights)

	tests := []struct {
		name     string
		shape    Shape
		scale    mgl32.Vec3
		rotation mgl32.Vec3
		position mgl32.Vec3
		color    mgl32.Vec4
	}{
		{"floor", ShapePlane, mgl32.Vec3{20, 1, 10}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec4{0, 0, 1, 1}},
		{"back_wall", ShapePlane, mgl32.Vec3{20, 1, 10}, mgl32.Vec3{90, 0, 0}, mgl32.Vec3{0, 9, -10}, mgl32.Vec4{0, 0, 1, 1}},
		{"left_column", ShapeCylinder, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, mgl32.Vec3{-2.05, 0, 0}, mgl32.Vec4{1, 0, 0, 1}},
		{"left_ball", ShapeSphere, mgl32.Vec3{0.65, 0.65, 0.65}, mgl32.Vec3{}, mgl32.Vec3{-2.05, 1.65, 0}, mgl32.Vec4{1, 0.4, 0.7, 1}},
		{"center_column", ShapeCylinder, mgl32.Vec3{1, 3, 1}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec4{1, 0, 0, 1}},
		{"center_cone", ShapeCone, mgl32.Vec3{1, 3, 1}, mgl32.Vec3{}, mgl32.Vec3{0, 2, 0}, mgl32.Vec4{1, 1, 0, 1}},
		{"right_column", ShapeCylinder, mgl32.Vec3{1, 2, 1}, mgl32.Vec3{}, mgl32.Vec3{2.05, 0, 0}, mgl32.Vec4{1, 0, 0, 1}},
		{"right_box", ShapeBox, mgl32.Vec3{1.2, 1.2, 1.2}, mgl32.Vec3{0, 45, 0}, mgl32.Vec3{2.05, 2.6, 0}, mgl32.Vec4{0.2, 0.8, 1, 1}},
	}

	require.Len(t, s.Objects, len(tests))
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := s.Objects[i]
			assert.Equal(t, tt.name, o.Name)
			assert.Equal(t, tt.shape, o.Shape)
			assert.Equal(t, tt.scale, o.Scale)
			assert.Equal(t, tt.rotation, o.Rotation)
			assert.Equal(t, tt.position, o.Position)
			require.NotNil(t, o.Color)
			assert.Equal(t, tt.color, *o.Color)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Scene {
		return &Scene{
			Name:      "t",
			Textures:  []TextureRef{{Tag: "wood", File: "wood.png"}},
			Materials: []Material{{Tag: "matte"}},
			Objects: []Object{
				{Name: "a", Shape: ShapeBox, Texture: "wood", Material: "matte"},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(s *Scene)
		want   error
	}{
		{"forma desconhecida", func(s *Scene) { s.Objects[0].Shape = "teapot" }, ErrUnknownShape},
		{"textura não declarada", func(s *Scene) { s.Objects[0].Texture = "metal" }, ErrUnknownTexture},
		{"material não declarado", func(s *Scene) { s.Objects[0].Material = "gloss" }, ErrUnknownMaterial},
		{"material padrão não declarado", func(s *Scene) { s.DefaultMaterial = "gloss" }, ErrUnknownMaterial},
		{"sem aparência", func(s *Scene) { s.Objects[0].Texture = "" }, ErrNoAppearance},
		{"textura duplicada", func(s *Scene) { s.Textures = append(s.Textures, TextureRef{Tag: "wood"}) }, ErrDuplicateTexture},
		{"material duplicado", func(s *Scene) { s.Materials = append(s.Materials, Material{Tag: "matte"}) }, ErrDuplicateMaterial},
		{"brilho negativo", func(s *Scene) { s.Materials[0].Shininess = -1 }, ErrInvalidMaterial},
		{"luzes demais", func(s *Scene) { s.Lights = make([]Light, MaxLights+1) }, ErrTooManyLights},
		{"texturas demais", func(s *Scene) {
			for i := 0; i < MaxTextures; i++ {
				s.Textures = append(s.Textures, TextureRef{Tag: string(rune('a' + i))})
			}
		}, ErrTooManyTextures},
		{"objeto sem nome", func(s *Scene) { s.Objects[0].Name = "" }, ErrUnnamed},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			assert.ErrorIs(t, s.Validate(), tt.want)
		})
	}
}
