package meshing

import (
	"fmt"
	"math"

	"DeskScene/shared/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Resoluções padrão das formas curvas.
const (
	DefaultSlices     = 36
	DefaultRings      = 18
	DefaultTopRadius  = 0.5
	DefaultTorusMajor = 1.0
	DefaultTorusMinor = 0.25
	DefaultTorusSides = 24
)

// Generate cria a geometria da forma com as resoluções padrão.
// Todas as formas são unitárias; a escala vem da transformação do objeto.
func Generate(shape scene.Shape) (GeometryData, error) {
	switch shape {
	case scene.ShapePlane:
		return Plane(), nil
	case scene.ShapeBox:
		return Box(), nil
	case scene.ShapeCylinder:
		return Cylinder(DefaultSlices), nil
	case scene.ShapeTaperedCylinder:
		return TaperedCylinder(DefaultSlices, DefaultTopRadius), nil
	case scene.ShapeCone:
		return Cone(DefaultSlices), nil
	case scene.ShapeSphere:
		return Sphere(DefaultRings, DefaultSlices), nil
	case scene.ShapePrism:
		return Prism(), nil
	case scene.ShapePyramid4:
		return Pyramid4(), nil
	case scene.ShapeTorus:
		return Torus(DefaultTorusMajor, DefaultTorusMinor, DefaultSlices, DefaultTorusSides), nil
	}
	return GeometryData{}, fmt.Errorf("%w: %q", scene.ErrUnknownShape, shape)
}

var (
	uv00 = mgl32.Vec2{0, 0}
	uv10 = mgl32.Vec2{1, 0}
	uv11 = mgl32.Vec2{1, 1}
	uv01 = mgl32.Vec2{0, 1}
)

// Plane é um quadrado 2x2 no plano XZ, centrado na origem, com normal +Y.
// v=1 fica na borda do fundo (-Z).
func Plane() GeometryData {
	b := &MeshBuffer{}
	b.AddFace(
		mgl32.Vec3{-1, 0, 1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 0, -1}, mgl32.Vec3{-1, 0, -1},
		uv00, uv10, uv11, uv01,
	)
	return b.Geometry
}

// Box é um cubo unitário centrado na origem. Cada face recebe a textura inteira.
func Box() GeometryData {
	b := &MeshBuffer{}
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},   // frente
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}}, // trás
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},  // direita
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},  // esquerda
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},  // topo
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},  // base
	}
	for _, f := range faces {
		c := f.n.Mul(0.5)
		u := f.u.Mul(0.5)
		v := f.v.Mul(0.5)
		b.AddFace(
			c.Sub(u).Sub(v), c.Add(u).Sub(v), c.Add(u).Add(v), c.Sub(u).Add(v),
			uv00, uv10, uv11, uv01,
		)
	}
	return b.Geometry
}

// Cylinder tem raio 1 e altura 1, com a base em y=0.
func Cylinder(slices int) GeometryData {
	return frustum(slices, 1, 1)
}

// TaperedCylinder é um cilindro com raio do topo reduzido.
func TaperedCylinder(slices int, topRadius float32) GeometryData {
	return frustum(slices, 1, topRadius)
}

// Cone tem base de raio 1 em y=0 e ápice em y=1.
func Cone(slices int) GeometryData {
	return frustum(slices, 1, 0)
}

// ring retorna o ponto de ângulo theta num círculo horizontal.
// O ângulo cresce no sentido horário visto de cima, o que mantém as faces anti-horárias vistas de fora.
func ring(theta float64, radius, y float32) mgl32.Vec3 {
	return mgl32.Vec3{
		radius * float32(math.Cos(theta)),
		y,
		-radius * float32(math.Sin(theta)),
	}
}

func frustum(slices int, bottom, top float32) GeometryData {
	if slices < 3 {
		slices = 3
	}
	b := &MeshBuffer{}
	step := 2 * math.Pi / float64(slices)
	const height = 1

	sideNormal := func(theta float64) mgl32.Vec3 {
		return mgl32.Vec3{
			height * float32(math.Cos(theta)),
			bottom - top,
			-height * float32(math.Sin(theta)),
		}.Normalize()
	}

	for i := 0; i < slices; i++ {
		t0 := float64(i) * step
		t1 := float64(i+1) * step
		u0 := float32(i) / float32(slices)
		u1 := float32(i+1) / float32(slices)

		b0, b1 := ring(t0, bottom, 0), ring(t1, bottom, 0)
		t0p, t1p := ring(t0, top, height), ring(t1, top, height)
		n0, n1 := sideNormal(t0), sideNormal(t1)

		b.AddVertex(b0, n0, mgl32.Vec2{u0, 0})
		b.AddVertex(b1, n1, mgl32.Vec2{u1, 0})
		if top == 0 {
			// ápice: um triângulo só por fatia
			mid := (t0 + t1) / 2
			b.AddVertex(t1p, sideNormal(mid), mgl32.Vec2{(u0 + u1) / 2, 1})
		} else {
			b.AddVertex(t1p, n1, mgl32.Vec2{u1, 1})
			b.AddVertex(b0, n0, mgl32.Vec2{u0, 0})
			b.AddVertex(t1p, n1, mgl32.Vec2{u1, 1})
			b.AddVertex(t0p, n0, mgl32.Vec2{u0, 1})
		}

		capUV := func(theta float64) mgl32.Vec2 {
			return mgl32.Vec2{0.5 + 0.5*float32(math.Cos(theta)), 0.5 + 0.5*float32(math.Sin(theta))}
		}
		center := mgl32.Vec2{0.5, 0.5}

		// Base
		b.AddTriangle(mgl32.Vec3{0, 0, 0}, b1, b0, center, capUV(t1), capUV(t0))
		// Topo
		if top > 0 {
			b.AddTriangle(mgl32.Vec3{0, height, 0}, t0p, t1p, center, capUV(t0), capUV(t1))
		}
	}
	return b.Geometry
}

// Sphere tem raio 1 e centro na origem.
func Sphere(rings, slices int) GeometryData {
	if rings < 2 {
		rings = 2
	}
	if slices < 3 {
		slices = 3
	}
	b := &MeshBuffer{}

	point := func(j, i int) (mgl32.Vec3, mgl32.Vec2) {
		phi := math.Pi * float64(j) / float64(rings)
		theta := 2 * math.Pi * float64(i) / float64(slices)
		p := mgl32.Vec3{
			float32(math.Sin(phi) * math.Cos(theta)),
			float32(math.Cos(phi)),
			float32(-math.Sin(phi) * math.Sin(theta)),
		}
		uv := mgl32.Vec2{float32(i) / float32(slices), 1 - float32(j)/float32(rings)}
		return p, uv
	}

	for j := 0; j < rings; j++ {
		for i := 0; i < slices; i++ {
			tl, uvTL := point(j, i)
			tr, uvTR := point(j, i+1)
			bl, uvBL := point(j+1, i)
			br, uvBR := point(j+1, i+1)

			// No polo norte os pontos de cima coincidem, no polo sul os de baixo.
			if j != rings-1 {
				b.AddVertex(bl, bl, uvBL)
				b.AddVertex(br, br, uvBR)
				b.AddVertex(tr, tr, uvTR)
			}
			if j != 0 {
				b.AddVertex(bl, bl, uvBL)
				b.AddVertex(tr, tr, uvTR)
				b.AddVertex(tl, tl, uvTL)
			}
		}
	}
	return b.Geometry
}

// Prism é um prisma triangular: triângulo no plano XY extrudado em z de -0.5 a 0.5.
func Prism() GeometryData {
	b := &MeshBuffer{}
	tri := [3]mgl32.Vec2{{-0.5, -0.5}, {0.5, -0.5}, {0, 0.5}}
	triUV := [3]mgl32.Vec2{{0, 0}, {1, 0}, {0.5, 1}}

	front := func(i int) mgl32.Vec3 { return mgl32.Vec3{tri[i][0], tri[i][1], 0.5} }
	back := func(i int) mgl32.Vec3 { return mgl32.Vec3{tri[i][0], tri[i][1], -0.5} }

	b.AddTriangle(front(0), front(1), front(2), triUV[0], triUV[1], triUV[2])
	b.AddTriangle(back(0), back(2), back(1), triUV[0], triUV[2], triUV[1])

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		b.AddFace(front(i), back(i), back(j), front(j), uv00, uv10, uv11, uv01)
	}
	return b.Geometry
}

// Pyramid4 é uma pirâmide de base quadrada (lado 1, em y=-0.5) com ápice em y=0.5.
func Pyramid4() GeometryData {
	b := &MeshBuffer{}
	apex := mgl32.Vec3{0, 0.5, 0}
	corners := [4]mgl32.Vec3{
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{0.5, -0.5, -0.5},
		{-0.5, -0.5, -0.5},
	}

	// Base
	b.AddFace(corners[3], corners[2], corners[1], corners[0], uv00, uv10, uv11, uv01)
	// Lados
	for i := 0; i < 4; i++ {
		b.AddTriangle(corners[i], corners[(i+1)%4], apex, uv00, uv10, mgl32.Vec2{0.5, 1})
	}
	return b.Geometry
}

// Torus é um toro deitado no plano XZ, centrado na origem.
func Torus(major, minor float32, rings, sides int) GeometryData {
	if rings < 3 {
		rings = 3
	}
	if sides < 3 {
		sides = 3
	}
	b := &MeshBuffer{}

	point := func(i, j int) (mgl32.Vec3, mgl32.Vec3, mgl32.Vec2) {
		u := 2 * math.Pi * float64(i) / float64(rings)
		v := 2 * math.Pi * float64(j) / float64(sides)
		cu, su := float32(math.Cos(u)), float32(math.Sin(u))
		cv, sv := float32(math.Cos(v)), float32(math.Sin(v))
		r := major + minor*cv
		p := mgl32.Vec3{r * cu, minor * sv, -r * su}
		n := mgl32.Vec3{cv * cu, sv, -cv * su}
		uv := mgl32.Vec2{float32(i) / float32(rings), float32(j) / float32(sides)}
		return p, n, uv
	}

	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			p00, n00, t00 := point(i, j)
			p10, n10, t10 := point(i+1, j)
			p11, n11, t11 := point(i+1, j+1)
			p01, n01, t01 := point(i, j+1)

			b.AddVertex(p00, n00, t00)
			b.AddVertex(p10, n10, t10)
			b.AddVertex(p11, n11, t11)
			b.AddVertex(p00, n00, t00)
			b.AddVertex(p11, n11, t11)
			b.AddVertex(p01, n01, t01)
		}
	}
	return b.Geometry
}
