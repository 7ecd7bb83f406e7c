package util

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Vector3 é um alias para rl.Vector3 para conveniência
type Vector3 = rl.Vector3

// ToRL converte um vetor mgl32 para o tipo da Raylib.
func ToRL(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// FromRL converte um vetor da Raylib para mgl32.
func FromRL(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// MatrixToRL converte uma Mat4 (column-major) para rl.Matrix.
// Os nomes M0..M15 da Raylib seguem a mesma ordem de colunas do OpenGL.
func MatrixToRL(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}

// ColorToRL converte uma cor RGBA normalizada (0..1) para rl.Color.
func ColorToRL(c mgl32.Vec4) rl.Color {
	return rl.NewColor(
		uint8(Clamp(c[0], 0, 1)*255),
		uint8(Clamp(c[1], 0, 1)*255),
		uint8(Clamp(c[2], 0, 1)*255),
		uint8(Clamp(c[3], 0, 1)*255),
	)
}
