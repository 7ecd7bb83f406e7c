package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

var builtins = map[string]func() *Scene{
	"desk":   DeskScene,
	"shapes": ShapesScene,
}

// BuiltinNames lista as cenas embutidas.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin retorna uma cópia nova da cena embutida com o nome informado.
func Builtin(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("cena embutida desconhecida: %q", name)
	}
	return build(), nil
}

func v3(x, y, z float32) mgl32.Vec3 { return mgl32.Vec3{x, y, z} }

func rgba(r, g, b, a float32) *mgl32.Vec4 { return &mgl32.Vec4{r, g, b, a} }

var (
	grey  = func() *mgl32.Vec4 { return rgba(0.2, 0.2, 0.2, 1) }
	black = func() *mgl32.Vec4 { return rgba(0, 0, 0, 1) }
)

// DeskScene é a mesa de trabalho: monitor, teclado, mouse e mousepad sobre a mesa,
// com uma parede ao fundo. Os valores foram ajustados à mão contra a foto de referência.
func DeskScene() *Scene {
	s := &Scene{
		Name:       "desk",
		Title:      "Mesa de trabalho",
		Background: mgl32.Vec4{0.12, 0.12, 0.16, 1},
		View:       &View{Target: v3(0, 1.5, 0), Distance: 13, AngleY: 0, AngleX: -28},
		Textures: []TextureRef{
			{Tag: "keyboard", File: "keyboard.jpg"},
			{Tag: "mousepad", File: "mousepad.jpg"},
			{Tag: "desk", File: "desk.jpg"},
			{Tag: "monitor", File: "monitor.jpg"},
			{Tag: "wall", File: "wall.jpg"},
		},
		Materials: []Material{
			{
				Tag:             "light1",
				AmbientColor:    v3(0.2, 0.2, 0.2),
				AmbientStrength: 1,
				DiffuseColor:    v3(0.4, 0.4, 0.4),
				SpecularColor:   v3(0.2, 0.2, 0.2),
				Shininess:       1,
			},
			{
				Tag:             "light2",
				AmbientColor:    v3(0.1, 0.1, 0.1),
				AmbientStrength: 1,
				DiffuseColor:    v3(0.4, 0.4, 0.4),
				SpecularColor:   v3(0.8, 0.8, 0.8),
				Shininess:       10,
			},
		},
		Lights: []Light{
			{
				Position:          v3(0, 5, 0),
				AmbientColor:      v3(0.1, 0.1, 0.1),
				DiffuseColor:      v3(0.2, 0.2, 0.2),
				SpecularColor:     v3(0.2, 0.2, 0.2),
				FocalStrength:     1,
				SpecularIntensity: 1,
			},
			{
				Position:          v3(0, 5, 0),
				AmbientColor:      v3(0.1, 0.1, 0.1),
				DiffuseColor:      v3(0.2, 0.2, 0.2),
				SpecularColor:     v3(0.2, 0.2, 0.2),
				FocalStrength:     1,
				SpecularIntensity: 1,
			},
		},
		DefaultMaterial: "light2",
	}

	s.Objects = []Object{
		// Ambiente
		{Name: "desk", Group: "room", Shape: ShapePlane, Scale: v3(10, 1, 6), Position: v3(0, 0, 0), Texture: "desk", Material: "light1"},
		{Name: "wall", Group: "room", Shape: ShapePlane, Scale: v3(10, 1, 6), Rotation: v3(90, 0, 0), Position: v3(0, 6, -6), Texture: "wall", Material: "light2"},

		// Monitor
		{Name: "monitor_base", Group: "monitor", Shape: ShapeCylinder, Scale: v3(1, 0.1, 1), Position: v3(0, 0, -3), Color: grey()},
		{Name: "monitor_leg_left", Group: "monitor", Shape: ShapePrism, Scale: v3(0.5, 0.1, 2), Rotation: v3(0, -40, 0), Position: v3(-1.3, 0, -1.55), Color: grey()},
		{Name: "monitor_leg_right", Group: "monitor", Shape: ShapePrism, Scale: v3(0.5, 0.1, 2), Rotation: v3(0, 40, 0), Position: v3(1.3, 0, -1.55), Color: grey()},
		{Name: "monitor_stand", Group: "monitor", Shape: ShapeCylinder, Scale: v3(0.25, 4, 0.25), Position: v3(0, 0, -3), Color: grey()},
		{Name: "monitor_connector", Group: "monitor", Shape: ShapeBox, Scale: v3(0.3, 0.3, 1), Position: v3(0, 2.5, -2.5), Color: grey()},
		{Name: "monitor_screen", Group: "monitor", Shape: ShapeBox, Scale: v3(5.5, 3.5, 0.2), Position: v3(0, 3, -2), Texture: "monitor", Material: "light2"},
		// Tampas pretas escondem as bordas onde a textura da tela dá a volta na caixa.
		{Name: "monitor_back", Group: "monitor", Shape: ShapeBox, Scale: v3(5.5, 3.5, 0.01), Position: v3(0, 3, -2.11), Color: black()},
		{Name: "monitor_bezel_top", Group: "monitor", Shape: ShapeBox, Scale: v3(5.5, 0.21, 0.01), Rotation: v3(90, 0, 0), Position: v3(0, 4.75, -2.01), Color: black()},
		{Name: "monitor_bezel_bottom", Group: "monitor", Shape: ShapeBox, Scale: v3(5.5, 0.21, 0.01), Rotation: v3(90, 0, 0), Position: v3(0, 1.25, -2.01), Color: black()},
		{Name: "monitor_bezel_right", Group: "monitor", Shape: ShapeBox, Scale: v3(3.5, 0.21, 0.01), Rotation: v3(90, 90, 0), Position: v3(2.75, 3, -2.01), Color: black()},
		{Name: "monitor_bezel_left", Group: "monitor", Shape: ShapeBox, Scale: v3(3.5, 0.21, 0.01), Rotation: v3(90, 90, 0), Position: v3(-2.75, 3, -2.01), Color: black()},

		// Teclado
		{Name: "keyboard_keys", Group: "keyboard", Shape: ShapeBox, Scale: v3(4, 1, 0.1), Rotation: v3(100, 0, 180), Position: v3(-2, 0.2, 2), Texture: "keyboard"},
		{Name: "keyboard_side_right", Group: "keyboard", Shape: ShapeBox, Scale: v3(0.02, 1, 0.1), Rotation: v3(100, 0, 0), Position: v3(0.01, 0.2, 2), Color: grey()},
		{Name: "keyboard_side_left", Group: "keyboard", Shape: ShapeBox, Scale: v3(0.02, 1, 0.1), Rotation: v3(100, 0, 0), Position: v3(-4.01, 0.2, 2), Color: grey()},
		{Name: "keyboard_edge_top", Group: "keyboard", Shape: ShapeBox, Scale: v3(0.02, 4.04, 0.1), Rotation: v3(100, 0, 90), Position: v3(-2, 0.29, 1.5), Color: grey()},
		{Name: "keyboard_edge_bottom", Group: "keyboard", Shape: ShapeBox, Scale: v3(0.02, 4.04, 0.1), Rotation: v3(100, 0, 90), Position: v3(-2, 0.11, 2.5), Color: grey()},
		{Name: "keyboard_underside", Group: "keyboard", Shape: ShapeBox, Scale: v3(1.035, 4.04, 0.01), Rotation: v3(100, 0, 90), Position: v3(-2, 0.15, 1.99), Color: grey()},
		{Name: "keyboard_wrist_rest", Group: "keyboard", Shape: ShapeBox, Scale: v3(4, 0.4, 0.05), Rotation: v3(100, 0, 0), Position: v3(-2, 0.1, 2.69), Color: grey()},
		{Name: "keyboard_leg_right", Group: "keyboard", Shape: ShapeBox, Scale: v3(0.2, 0.03, 0.1), Rotation: v3(100, 90, 0), Position: v3(-0.1, 0.15, 1.5), Color: grey()},
		{Name: "keyboard_leg_left", Group: "keyboard", Shape: ShapeBox, Scale: v3(0.2, 0.03, 0.1), Rotation: v3(100, 90, 0), Position: v3(-3.9, 0.15, 1.5), Color: grey()},

		// Mouse
		{Name: "mouse_body", Group: "mouse", Shape: ShapeSphere, Scale: v3(0.6, 0.15, 0.9), Position: v3(2.3, 0.18, 2), Color: grey()},
		{Name: "mouse_wheel", Group: "mouse", Shape: ShapeCylinder, Scale: v3(0.1, 0.1, 0.1), Rotation: v3(90, 0, 90), Position: v3(2.35, 0.25, 1.5), Color: black()},
		{Name: "mouse_button_front", Group: "mouse", Shape: ShapeBox, Scale: v3(0.2, 0.02, 0.02), Rotation: v3(90, 45, 90), Position: v3(1.82, 0.26, 1.9), Color: black()},
		{Name: "mouse_button_back", Group: "mouse", Shape: ShapeBox, Scale: v3(0.2, 0.02, 0.02), Rotation: v3(90, 45, 90), Position: v3(1.82, 0.26, 2.15), Color: black()},

		// Mousepad
		{Name: "mousepad", Group: "mousepad", Shape: ShapeBox, Scale: v3(10, 0.05, 5), Position: v3(0, 0, 2), Color: black()},
	}

	return s
}

// ShapesScene é a composição de formas básicas sobre um piso azul, sem texturas nem luzes.
func ShapesScene() *Scene {
	blue := func() *mgl32.Vec4 { return rgba(0, 0, 1, 1) }
	red := func() *mgl32.Vec4 { return rgba(1, 0, 0, 1) }

	return &Scene{
		Name:       "shapes",
		Title:      "Formas básicas",
		Background: mgl32.Vec4{0.12, 0.12, 0.16, 1},
		View:       &View{Target: v3(0, 2, 0), Distance: 18, AngleY: 0, AngleX: -20},
		Objects: []Object{
			{Name: "floor", Group: "room", Shape: ShapePlane, Scale: v3(20, 1, 10), Color: blue()},
			{Name: "back_wall", Group: "room", Shape: ShapePlane, Scale: v3(20, 1, 10), Rotation: v3(90, 0, 0), Position: v3(0, 9, -10), Color: blue()},

			{Name: "left_column", Group: "left", Shape: ShapeCylinder, Scale: v3(1, 1, 1), Position: v3(-2.05, 0, 0), Color: red()},
			// y compensa a escala da esfera para não atravessar o cilindro
			{Name: "left_ball", Group: "left", Shape: ShapeSphere, Scale: v3(0.65, 0.65, 0.65), Position: v3(-2.05, 1.65, 0), Color: rgba(1, 0.4, 0.7, 1)},

			{Name: "center_column", Group: "center", Shape: ShapeCylinder, Scale: v3(1, 3, 1), Color: red()},
			{Name: "center_cone", Group: "center", Shape: ShapeCone, Scale: v3(1, 3, 1), Position: v3(0, 2, 0), Color: rgba(1, 1, 0, 1)},

			{Name: "right_column", Group: "right", Shape: ShapeCylinder, Scale: v3(1, 2, 1), Position: v3(2.05, 0, 0), Color: red()},
			// Girada 45° em Y para a quina ficar de frente para a câmera.
			{Name: "right_box", Group: "right", Shape: ShapeBox, Scale: v3(1.2, 1.2, 1.2), Rotation: v3(0, 45, 0), Position: v3(2.05, 2.6, 0), Color: rgba(0.2, 0.8, 1, 1)},
		},
	}
}
