// Package scene descreve cenas estáticas montadas com formas primitivas:
// objetos posicionados por escala/rotação/posição, texturas, materiais e luzes.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Shape identifica uma malha primitiva.
type Shape string

const (
	ShapePlane           Shape = "plane"
	ShapeBox             Shape = "box"
	ShapeCylinder        Shape = "cylinder"
	ShapeTaperedCylinder Shape = "tapered_cylinder"
	ShapeCone            Shape = "cone"
	ShapeSphere          Shape = "sphere"
	ShapePrism           Shape = "prism"
	ShapePyramid4        Shape = "pyramid4"
	ShapeTorus           Shape = "torus"
)

// AllShapes retorna todas as formas suportadas.
func AllShapes() []Shape {
	return []Shape{
		ShapePlane, ShapeBox, ShapeCylinder, ShapeTaperedCylinder,
		ShapeCone, ShapeSphere, ShapePrism, ShapePyramid4, ShapeTorus,
	}
}

// Valid informa se a forma é conhecida.
func (s Shape) Valid() bool {
	for _, known := range AllShapes() {
		if s == known {
			return true
		}
	}
	return false
}

// MaxLights é o número de fontes de luz que o shader aceita.
const MaxLights = 4

// MaxTextures é o número de slots de textura disponíveis.
const MaxTextures = 16

// Material define a resposta de uma superfície à iluminação.
type Material struct {
	Tag             string     `json:"tag" yaml:"tag"`
	AmbientColor    mgl32.Vec3 `json:"ambient_color" yaml:"ambient_color"`
	AmbientStrength float32    `json:"ambient_strength" yaml:"ambient_strength"`
	DiffuseColor    mgl32.Vec3 `json:"diffuse_color" yaml:"diffuse_color"`
	SpecularColor   mgl32.Vec3 `json:"specular_color" yaml:"specular_color"`
	Shininess       float32    `json:"shininess" yaml:"shininess"`
}

// Light é uma fonte de luz pontual.
type Light struct {
	Position          mgl32.Vec3 `json:"position" yaml:"position"`
	AmbientColor      mgl32.Vec3 `json:"ambient_color" yaml:"ambient_color"`
	DiffuseColor      mgl32.Vec3 `json:"diffuse_color" yaml:"diffuse_color"`
	SpecularColor     mgl32.Vec3 `json:"specular_color" yaml:"specular_color"`
	FocalStrength     float32    `json:"focal_strength" yaml:"focal_strength"`
	SpecularIntensity float32    `json:"specular_intensity" yaml:"specular_intensity"`
}

// TextureRef associa uma tag a um arquivo de imagem.
type TextureRef struct {
	Tag  string `json:"tag" yaml:"tag"`
	File string `json:"file" yaml:"file"`
}

// Object é uma instância de forma primitiva desenhada na cena.
// Rotation está em graus, aplicada na ordem X, Y, Z.
type Object struct {
	Name     string      `json:"name" yaml:"name"`
	Group    string      `json:"group,omitempty" yaml:"group,omitempty"`
	Shape    Shape       `json:"shape" yaml:"shape"`
	Scale    mgl32.Vec3  `json:"scale" yaml:"scale"`
	Rotation mgl32.Vec3  `json:"rotation" yaml:"rotation"`
	Position mgl32.Vec3  `json:"position" yaml:"position"`
	Color    *mgl32.Vec4 `json:"color,omitempty" yaml:"color,omitempty"`
	Texture  string      `json:"texture,omitempty" yaml:"texture,omitempty"`
	Material string      `json:"material,omitempty" yaml:"material,omitempty"`
	UVScale  *mgl32.Vec2 `json:"uv_scale,omitempty" yaml:"uv_scale,omitempty"`
}

// Transform retorna a matriz de modelo do objeto.
func (o Object) Transform() mgl32.Mat4 {
	return ModelMatrix(o.Scale, o.Rotation.X(), o.Rotation.Y(), o.Rotation.Z(), o.Position)
}

// UV retorna a escala de textura, (1,1) quando não definida.
func (o Object) UV() mgl32.Vec2 {
	if o.UVScale == nil {
		return mgl32.Vec2{1, 1}
	}
	return *o.UVScale
}

// View é um enquadramento da câmera: o inicial da cena ou um salvo pelo usuário.
type View struct {
	Target   mgl32.Vec3 `json:"target" yaml:"target"`
	Distance float32    `json:"distance" yaml:"distance"`
	AngleY   float32    `json:"angle_y" yaml:"angle_y"` // graus, azimute
	AngleX   float32    `json:"angle_x" yaml:"angle_x"` // graus, elevação (negativo olha para baixo)

	Orthographic bool `json:"orthographic,omitempty" yaml:"orthographic,omitempty"`
}

// DefaultView enquadra uma cena de alguns metros centrada na origem.
func DefaultView() View {
	return View{Target: mgl32.Vec3{0, 1.5, 0}, Distance: 14, AngleY: 0, AngleX: -25}
}

// Scene é a descrição completa de uma cena.
type Scene struct {
	Name            string       `json:"name" yaml:"name"`
	Title           string       `json:"title,omitempty" yaml:"title,omitempty"`
	Background      mgl32.Vec4   `json:"background" yaml:"background"`
	View            *View        `json:"view,omitempty" yaml:"view,omitempty"`
	Textures        []TextureRef `json:"textures,omitempty" yaml:"textures,omitempty"`
	Materials       []Material   `json:"materials,omitempty" yaml:"materials,omitempty"`
	Lights          []Light      `json:"lights,omitempty" yaml:"lights,omitempty"`
	DefaultMaterial string       `json:"default_material,omitempty" yaml:"default_material,omitempty"`
	Objects         []Object     `json:"objects" yaml:"objects"`
}

// InitialView retorna o enquadramento da cena ou o padrão.
func (s *Scene) InitialView() View {
	if s.View == nil {
		return DefaultView()
	}
	return *s.View
}

// Shapes retorna as formas usadas, na ordem do primeiro uso.
// Cada malha só precisa ser carregada uma vez, não importa quantas vezes seja desenhada.
func (s *Scene) Shapes() []Shape {
	seen := make(map[Shape]bool)
	var out []Shape
	for _, o := range s.Objects {
		if !seen[o.Shape] {
			seen[o.Shape] = true
			out = append(out, o.Shape)
		}
	}
	return out
}

// Groups retorna os grupos de objetos na ordem do primeiro uso.
func (s *Scene) Groups() []string {
	seen := make(map[string]bool)
	var out []string
	for _, o := range s.Objects {
		if o.Group == "" || seen[o.Group] {
			continue
		}
		seen[o.Group] = true
		out = append(out, o.Group)
	}
	return out
}

// MaterialFor retorna a tag de material efetiva de um objeto.
func (s *Scene) MaterialFor(o Object) string {
	if o.Material != "" {
		return o.Material
	}
	return s.DefaultMaterial
}
