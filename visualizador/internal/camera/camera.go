package camera

import (
	"math"

	"DeskScene/shared/scene"
	"DeskScene/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode define o tipo de projeção.
type Mode int

const (
	ModePerspective Mode = iota
	ModeOrthographic
)

func (m Mode) String() string {
	if m == ModeOrthographic {
		return "ortográfica"
	}
	return "perspectiva"
}

// Limites de elevação: nunca de ponta cabeça, nunca abaixo do tampo.
const (
	minElevation = -89.0 * rl.Deg2rad
	maxElevation = -2.0 * rl.Deg2rad
)

// Input é a entrada de um quadro, já lida do teclado e do mouse.
type Input struct {
	Wheel        float32 // rolagem (positivo aproxima)
	DragX, DragY float32 // arraste com botão esquerdo, em pixels
	Forward      float32 // W/S
	Right        float32 // D/A
	Up           float32 // E/Q
	Projection   *Mode   // P/O
}

// CameraController é uma câmera orbital com movimento suave: o alvo e o zoom
// seguem os valores desejados por interpolação.
type CameraController struct {
	RLCamera rl.Camera3D

	// Configurações
	Mode         Mode
	Fovy         float32
	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)

	// Estado alvo
	TargetLookAt mgl32.Vec3
	TargetZoom   float32
	TargetAngleY float32 // radianos
	TargetAngleX float32 // radianos

	// Estado atual (interpolado)
	CurrentLookAt mgl32.Vec3
	CurrentZoom   float32
}

// New cria um controlador enquadrando a vista informada.
func New(view scene.View) *CameraController {
	c := &CameraController{
		Fovy:         45.0,
		MinZoom:      2.0,
		MaxZoom:      60.0,
		MoveSpeed:    6.0,
		RotateSpeed:  2.0,
		ZoomSpeed:    1.5,
		SmoothFactor: 0.15,
	}
	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
	c.Restore(view)
	return c
}

// Restore posiciona a câmera imediatamente (sem suavização).
func (c *CameraController) Restore(view scene.View) {
	c.TargetLookAt = view.Target
	c.TargetZoom = util.Clamp(view.Distance, c.MinZoom, c.MaxZoom)
	c.TargetAngleY = view.AngleY * rl.Deg2rad
	c.TargetAngleX = util.Clamp(view.AngleX*rl.Deg2rad, minElevation, maxElevation)
	c.Mode = ModePerspective
	if view.Orthographic {
		c.Mode = ModeOrthographic
	}

	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom
	c.UpdateWait()
}

// State retorna o enquadramento desejado atual, para ser salvo.
func (c *CameraController) State() scene.View {
	return scene.View{
		Target:       c.TargetLookAt,
		Distance:     c.TargetZoom,
		AngleY:       c.TargetAngleY * rl.Rad2deg,
		AngleX:       c.TargetAngleX * rl.Rad2deg,
		Orthographic: c.Mode == ModeOrthographic,
	}
}

// Position retorna a posição da câmera no mundo.
func (c *CameraController) Position() mgl32.Vec3 {
	return util.FromRL(c.RLCamera.Position)
}

// Update interpola o estado atual em direção ao alvo. Deve ser chamado a cada quadro.
func (c *CameraController) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt // Normaliza para 60 FPS
	if factor > 1.0 {
		factor = 1.0
	}

	c.CurrentLookAt = c.CurrentLookAt.Add(c.TargetLookAt.Sub(c.CurrentLookAt).Mul(factor))
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)

	c.UpdateWait()
}

// UpdateWait recalcula a posição da câmera a partir dos ângulos e do zoom atuais.
func (c *CameraController) UpdateWait() {
	dist := c.CurrentZoom

	// No ortográfico o zoom vira a altura visível; a câmera fica longe para não cortar a cena.
	if c.Mode == ModeOrthographic {
		c.RLCamera.Fovy = c.CurrentZoom * 0.6
		c.RLCamera.Projection = rl.CameraOrthographic
		dist = c.MaxZoom
	} else {
		c.RLCamera.Fovy = c.Fovy
		c.RLCamera.Projection = rl.CameraPerspective
	}

	cosX := float32(math.Cos(float64(c.TargetAngleX)))
	sinX := float32(math.Sin(float64(c.TargetAngleX)))
	cosY := float32(math.Cos(float64(c.TargetAngleY)))
	sinY := float32(math.Sin(float64(c.TargetAngleY)))

	offset := mgl32.Vec3{
		dist * cosX * sinY,
		dist * -sinX, // ângulo negativo olha de cima para baixo
		dist * cosX * cosY,
	}

	c.RLCamera.Position = util.ToRL(c.CurrentLookAt.Add(offset))
	c.RLCamera.Target = util.ToRL(c.CurrentLookAt)
}

// SetMode alterna entre perspectiva e ortográfica.
func (c *CameraController) SetMode(mode Mode) {
	c.Mode = mode
	c.UpdateWait()
}

// Apply aplica a entrada de um quadro. Retorna true se a câmera foi movida.
func (c *CameraController) Apply(in Input, dt float32) bool {
	moved := false

	if in.Projection != nil && *in.Projection != c.Mode {
		c.SetMode(*in.Projection)
		moved = true
	}

	if in.Wheel != 0 {
		c.TargetZoom = util.Clamp(c.TargetZoom-in.Wheel*c.ZoomSpeed, c.MinZoom, c.MaxZoom)
		moved = true
	}

	if in.DragX != 0 || in.DragY != 0 {
		c.TargetAngleY -= in.DragX * c.RotateSpeed * 0.005
		c.TargetAngleX = util.Clamp(c.TargetAngleX-in.DragY*c.RotateSpeed*0.005, minElevation, maxElevation)
		moved = true
	}

	// Movimento relativo à câmera, projetado no plano XZ (tampo da mesa)
	forward := mgl32.Vec3{-float32(math.Sin(float64(c.TargetAngleY))), 0, -float32(math.Cos(float64(c.TargetAngleY)))}
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	move := forward.Mul(in.Forward).Add(right.Mul(in.Right)).Add(mgl32.Vec3{0, in.Up, 0})
	if move.Len() > 0 {
		// Mais longe, mais rápido
		speed := c.MoveSpeed * (c.CurrentZoom / 10.0) * dt
		c.TargetLookAt = c.TargetLookAt.Add(move.Normalize().Mul(speed))
		moved = true
	}

	return moved
}

// HandleInput lê teclado e mouse da Raylib e aplica à câmera.
func (c *CameraController) HandleInput(dt float32) bool {
	var in Input
	in.Wheel = rl.GetMouseWheelMove()

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		in.DragX, in.DragY = delta.X, delta.Y
	}

	in.Forward = axis(rl.KeyW, rl.KeyS)
	in.Right = axis(rl.KeyD, rl.KeyA)
	in.Up = axis(rl.KeyE, rl.KeyQ)

	if rl.IsKeyPressed(rl.KeyP) {
		m := ModePerspective
		in.Projection = &m
	} else if rl.IsKeyPressed(rl.KeyO) {
		m := ModeOrthographic
		in.Projection = &m
	}

	return c.Apply(in, dt)
}

func axis(positive, negative int32) float32 {
	var v float32
	if rl.IsKeyDown(positive) {
		v++
	}
	if rl.IsKeyDown(negative) {
		v--
	}
	return v
}
