package meshing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GeometryData contém os buffers de vértices de uma malha.
// Os triângulos não são indexados: cada três vértices formam uma face.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	UVs      []float32
}

// VertexCount retorna o número de vértices.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount retorna o número de triângulos.
func (g GeometryData) TriangleCount() int {
	return g.VertexCount() / 3
}

// Vertex retorna posição, normal e UV do vértice i.
func (g GeometryData) Vertex(i int) (pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	pos = mgl32.Vec3{g.Vertices[i*3], g.Vertices[i*3+1], g.Vertices[i*3+2]}
	normal = mgl32.Vec3{g.Normals[i*3], g.Normals[i*3+1], g.Normals[i*3+2]}
	uv = mgl32.Vec2{g.UVs[i*2], g.UVs[i*2+1]}
	return
}

// Bounds retorna a caixa envolvente da malha.
func (g GeometryData) Bounds() (min, max mgl32.Vec3) {
	if len(g.Vertices) < 3 {
		return
	}
	inf := float32(math.Inf(1))
	min = mgl32.Vec3{inf, inf, inf}
	max = mgl32.Vec3{-inf, -inf, -inf}
	for i := 0; i+2 < len(g.Vertices); i += 3 {
		for a := 0; a < 3; a++ {
			v := g.Vertices[i+a]
			if v < min[a] {
				min[a] = v
			}
			if v > max[a] {
				max[a] = v
			}
		}
	}
	return
}

// Clone cria uma cópia profunda dos buffers.
func (g GeometryData) Clone() GeometryData {
	clone := GeometryData{}
	if len(g.Vertices) > 0 {
		clone.Vertices = append([]float32(nil), g.Vertices...)
	}
	if len(g.Normals) > 0 {
		clone.Normals = append([]float32(nil), g.Normals...)
	}
	if len(g.UVs) > 0 {
		clone.UVs = append([]float32(nil), g.UVs...)
	}
	return clone
}

// MeshBuffer auxilia na construção das malhas.
type MeshBuffer struct {
	Geometry GeometryData
}

// AddVertex adiciona um vértice com normal própria (superfícies suaves).
func (b *MeshBuffer) AddVertex(v, n mgl32.Vec3, uv mgl32.Vec2) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
	b.Geometry.UVs = append(b.Geometry.UVs, uv[0], uv[1])
}

// AddTriangle adiciona uma face triangular plana. A ordem dos vértices é anti-horária
// vista de fora, e a normal é calculada a partir dela.
func (b *MeshBuffer) AddTriangle(v1, v2, v3 mgl32.Vec3, uv1, uv2, uv3 mgl32.Vec2) {
	n := faceNormal(v1, v2, v3)
	b.AddVertex(v1, n, uv1)
	b.AddVertex(v2, n, uv2)
	b.AddVertex(v3, n, uv3)
}

// AddFace adiciona uma face retangular (quad) plana como dois triângulos.
func (b *MeshBuffer) AddFace(v1, v2, v3, v4 mgl32.Vec3, uv1, uv2, uv3, uv4 mgl32.Vec2) {
	// Triângulo 1 (v1, v2, v3)
	b.AddTriangle(v1, v2, v3, uv1, uv2, uv3)
	// Triângulo 2 (v1, v3, v4)
	b.AddTriangle(v1, v3, v4, uv1, uv3, uv4)
}

func faceNormal(v1, v2, v3 mgl32.Vec3) mgl32.Vec3 {
	n := v2.Sub(v1).Cross(v3.Sub(v1))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
