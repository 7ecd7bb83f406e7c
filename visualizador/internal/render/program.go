package render

import (
	"errors"
	"log"
	"math"
	"unsafe"

	"DeskScene/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Locs da Raylib é um array C de 32 posições.
const maxShaderLocations = 32

var ErrShaderCompile = errors.New("shader da cena não compilou")

// ShaderProgram é o shader da cena com cache das localizações de uniforms.
type ShaderProgram struct {
	Shader  rl.Shader
	locs    map[string]int32
	missing map[string]bool
}

// LoadShaderProgram compila o shader da cena. Exige janela aberta.
func LoadShaderProgram() (*ShaderProgram, error) {
	shader := rl.LoadShaderFromMemory(sceneVertexShader, sceneFragmentShader)

	// Se a compilação falha a Raylib devolve o shader padrão, que não tem objectColor.
	if !rl.IsShaderValid(shader) || rl.GetShaderLocation(shader, "objectColor") < 0 {
		return nil, ErrShaderCompile
	}

	// model e objectTexture fazem o papel de matModel e texture0: DrawMesh os preenche.
	locs := unsafe.Slice(shader.Locs, maxShaderLocations)
	locs[rl.ShaderLocMatrixModel] = rl.GetShaderLocation(shader, "model")
	locs[rl.ShaderLocMapDiffuse] = rl.GetShaderLocation(shader, "objectTexture")

	log.Printf("[Render] Shader da cena carregado (ID %d)", shader.ID)
	return &ShaderProgram{
		Shader:  shader,
		locs:    make(map[string]int32),
		missing: make(map[string]bool),
	}, nil
}

func (p *ShaderProgram) loc(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := rl.GetShaderLocation(p.Shader, name)
	p.locs[name] = loc
	if loc < 0 && !p.missing[name] {
		p.missing[name] = true
		log.Printf("[Render] Uniform '%s' não encontrado no shader", name)
	}
	return loc
}

func (p *ShaderProgram) set(name string, value []float32, kind rl.ShaderUniformDataType) {
	if loc := p.loc(name); loc >= 0 {
		rl.SetShaderValue(p.Shader, loc, value, kind)
	}
}

func (p *ShaderProgram) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.loc(name); loc >= 0 {
		rl.SetShaderValueMatrix(p.Shader, loc, util.MatrixToRL(m))
	}
}

func (p *ShaderProgram) SetVec4(name string, v mgl32.Vec4) {
	p.set(name, v[:], rl.ShaderUniformVec4)
}

func (p *ShaderProgram) SetVec3(name string, v mgl32.Vec3) {
	p.set(name, v[:], rl.ShaderUniformVec3)
}

func (p *ShaderProgram) SetVec2(name string, v mgl32.Vec2) {
	p.set(name, v[:], rl.ShaderUniformVec2)
}

func (p *ShaderProgram) SetFloat(name string, f float32) {
	p.set(name, []float32{f}, rl.ShaderUniformFloat)
}

// SetInt envia um inteiro. A Raylib só aceita []float32, então os bits vão reinterpretados.
func (p *ShaderProgram) SetInt(name string, i int32) {
	p.set(name, []float32{math.Float32frombits(uint32(i))}, rl.ShaderUniformInt)
}

func (p *ShaderProgram) SetBool(name string, b bool) {
	var i int32
	if b {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *ShaderProgram) SetSampler2D(name string, slot int32) {
	p.set(name, []float32{math.Float32frombits(uint32(slot))}, rl.ShaderUniformSampler2d)
}

// Unload libera o shader da GPU.
func (p *ShaderProgram) Unload() {
	if p.Shader.ID != 0 {
		rl.UnloadShader(p.Shader)
		p.Shader = rl.Shader{}
	}
}
