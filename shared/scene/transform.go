package scene

import "github.com/go-gl/mathgl/mgl32"

// ModelMatrix compõe a matriz de modelo na ordem T * Rx * Ry * Rz * S.
// Os ângulos estão em graus.
func ModelMatrix(scale mgl32.Vec3, xDeg, yDeg, zDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(xDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(yDeg))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(zDeg))
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())

	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}
