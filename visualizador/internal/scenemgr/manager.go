// Package scenemgr prepara e desenha uma cena: carrega texturas, materiais, luzes e malhas,
// e a cada quadro envia as transformações e a aparência de cada objeto ao shader.
package scenemgr

import (
	"fmt"
	"log"

	"DeskScene/shared/scene"
	"DeskScene/visualizador/internal/textures"

	"github.com/go-gl/mathgl/mgl32"
)

// Nomes dos uniforms do shader.
const (
	UniformModel        = "model"
	UniformObjectColor  = "objectColor"
	UniformTexture      = "objectTexture"
	UniformUseTexture   = "bUseTexture"
	UniformUseLighting  = "bUseLighting"
	UniformUVScale      = "UVscale"
	UniformViewPosition = "viewPosition"
)

// FallbackColor é usada quando um objeto pede uma textura que não foi carregada.
var FallbackColor = mgl32.Vec4{0.6, 0.6, 0.6, 1}

// Uniforms é o programa de shader ativo.
type Uniforms interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec4(name string, v mgl32.Vec4)
	SetVec3(name string, v mgl32.Vec3)
	SetVec2(name string, v mgl32.Vec2)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	SetBool(name string, b bool)
	SetSampler2D(name string, slot int32)
}

// MeshDrawer guarda uma malha por forma e as desenha.
type MeshDrawer interface {
	// Load envia a malha da forma para a GPU; chamadas repetidas não fazem nada.
	Load(shape scene.Shape) error
	Draw(shape scene.Shape, model mgl32.Mat4)
	UseTexture(tex textures.Texture)
	UseColor()
}

// PrepareReport resume a preparação de uma cena.
type PrepareReport struct {
	TexturesLoaded int
	TextureErrors  []error
	Meshes         int
	Materials      int
	Lights         int
}

// Stats são os números do último quadro.
type Stats struct {
	Objects int
	Drawn   int
	Hidden  int
}

// Manager é o dono do estado da cena na GPU. Deve ser usado apenas na thread principal.
type Manager struct {
	uniforms  Uniforms
	meshes    MeshDrawer
	textures  *textures.Registry
	materials *scene.MaterialRegistry

	scene  *scene.Scene
	model  mgl32.Mat4
	hidden map[string]bool
	warned map[string]bool
	stats  Stats
}

// New cria o gerenciador.
func New(uniforms Uniforms, meshes MeshDrawer, reg *textures.Registry) *Manager {
	return &Manager{
		uniforms:  uniforms,
		meshes:    meshes,
		textures:  reg,
		materials: &scene.MaterialRegistry{},
		model:     mgl32.Ident4(),
		hidden:    make(map[string]bool),
		warned:    make(map[string]bool),
	}
}

// Scene retorna a cena preparada (nil antes de PrepareScene).
func (m *Manager) Scene() *scene.Scene {
	return m.scene
}

// SetTransformations compõe a matriz de modelo (T * Rx * Ry * Rz * S) e a envia ao shader.
func (m *Manager) SetTransformations(scale mgl32.Vec3, xDeg, yDeg, zDeg float32, position mgl32.Vec3) {
	m.model = scene.ModelMatrix(scale, xDeg, yDeg, zDeg, position)
	m.uniforms.SetMat4(UniformModel, m.model)
}

// SetShaderColor desenha os próximos objetos com uma cor sólida.
func (m *Manager) SetShaderColor(r, g, b, a float32) {
	m.uniforms.SetBool(UniformUseTexture, false)
	m.uniforms.SetVec4(UniformObjectColor, mgl32.Vec4{r, g, b, a})
	m.meshes.UseColor()
}

// SetShaderTexture desenha os próximos objetos com a textura da tag.
// Retorna false, sem alterar o shader, quando a tag não está registrada.
func (m *Manager) SetShaderTexture(tag string) bool {
	slot := m.textures.FindSlot(tag)
	if slot < 0 {
		if !m.warned[tag] {
			m.warned[tag] = true
			log.Printf("[Cena] Textura '%s' não carregada, usando cor", tag)
		}
		return false
	}
	tex, _ := m.textures.Find(tag)

	m.uniforms.SetBool(UniformUseTexture, true)
	m.uniforms.SetSampler2D(UniformTexture, int32(slot))
	m.meshes.UseTexture(tex)
	return true
}

// SetTextureUVScale define quantas vezes a textura se repete em cada eixo.
func (m *Manager) SetTextureUVScale(u, v float32) {
	m.uniforms.SetVec2(UniformUVScale, mgl32.Vec2{u, v})
}

// SetShaderMaterial envia o material da tag. Tags desconhecidas não alteram o shader.
func (m *Manager) SetShaderMaterial(tag string) bool {
	mat, ok := m.materials.Find(tag)
	if !ok {
		return false
	}
	m.uniforms.SetVec3("material.ambientColor", mat.AmbientColor)
	m.uniforms.SetFloat("material.ambientStrength", mat.AmbientStrength)
	m.uniforms.SetVec3("material.diffuseColor", mat.DiffuseColor)
	m.uniforms.SetVec3("material.specularColor", mat.SpecularColor)
	m.uniforms.SetFloat("material.shininess", mat.Shininess)
	return true
}

// SetupSceneLights envia até scene.MaxLights luzes pontuais. Os slots sem luz são zerados,
// e a iluminação fica desligada quando não há nenhuma luz.
func (m *Manager) SetupSceneLights(lights []scene.Light) {
	if len(lights) > scene.MaxLights {
		log.Printf("[Cena] %d luzes definidas, usando apenas %d", len(lights), scene.MaxLights)
		lights = lights[:scene.MaxLights]
	}
	for i := 0; i < scene.MaxLights; i++ {
		var l scene.Light
		if i < len(lights) {
			l = lights[i]
		}
		prefix := fmt.Sprintf("lightSources[%d].", i)
		m.uniforms.SetVec3(prefix+"position", l.Position)
		m.uniforms.SetVec3(prefix+"ambientColor", l.AmbientColor)
		m.uniforms.SetVec3(prefix+"diffuseColor", l.DiffuseColor)
		m.uniforms.SetVec3(prefix+"specularColor", l.SpecularColor)
		m.uniforms.SetFloat(prefix+"focalStrength", l.FocalStrength)
		m.uniforms.SetFloat(prefix+"specularIntensity", l.SpecularIntensity)
	}
	m.uniforms.SetBool(UniformUseLighting, len(lights) > 0)
}

// SetViewPosition informa ao shader a posição da câmera (brilho especular).
func (m *Manager) SetViewPosition(pos mgl32.Vec3) {
	m.uniforms.SetVec3(UniformViewPosition, pos)
}

// PrepareScene carrega tudo o que a cena precisa. Texturas que falham são apenas
// reportadas; os objetos correspondentes caem para a cor. Uma cena anterior é liberada antes.
// Recarregar a cena com o mesmo nome mantém os grupos escondidos; outra cena começa com todos visíveis.
func (m *Manager) PrepareScene(s *scene.Scene, textureDir string) (PrepareReport, error) {
	var report PrepareReport

	materials, err := scene.NewMaterialRegistry(s.Materials...)
	if err != nil {
		return report, fmt.Errorf("cena %s: %w", s.Name, err)
	}
	for _, shape := range s.Shapes() {
		if err := m.meshes.Load(shape); err != nil {
			return report, fmt.Errorf("cena %s: malha %s: %w", s.Name, shape, err)
		}
		report.Meshes++
	}

	m.textures.Destroy()
	m.warned = make(map[string]bool)
	res := textures.LoadAll(m.textures, textureDir, s.Textures)
	report.TexturesLoaded = res.Loaded
	report.TextureErrors = res.Errors

	m.materials = materials
	report.Materials = materials.Len()

	// Grupos escondidos só sobrevivem à recarga da mesma cena.
	if m.scene == nil || m.scene.Name != s.Name {
		m.hidden = make(map[string]bool)
	}

	m.SetupSceneLights(s.Lights)
	report.Lights = min(len(s.Lights), scene.MaxLights)

	m.scene = s
	log.Printf("[Cena] '%s' preparada: %d objetos, %d malhas, %d/%d texturas, %d materiais, %d luzes",
		s.Name, len(s.Objects), report.Meshes, report.TexturesLoaded, len(s.Textures), report.Materials, report.Lights)
	return report, nil
}

// RenderScene desenha todos os objetos visíveis, na ordem da cena.
func (m *Manager) RenderScene() {
	m.stats = Stats{}
	if m.scene == nil {
		return
	}
	m.stats.Objects = len(m.scene.Objects)

	for _, o := range m.scene.Objects {
		if m.hidden[o.Group] {
			m.stats.Hidden++
			continue
		}

		m.SetTransformations(o.Scale, o.Rotation[0], o.Rotation[1], o.Rotation[2], o.Position)

		if o.Texture == "" || !m.SetShaderTexture(o.Texture) {
			c := FallbackColor
			if o.Color != nil {
				c = *o.Color
			}
			m.SetShaderColor(c[0], c[1], c[2], c[3])
		}

		uv := o.UV()
		m.SetTextureUVScale(uv[0], uv[1])

		if tag := m.scene.MaterialFor(o); tag != "" {
			m.SetShaderMaterial(tag)
		}

		m.meshes.Draw(o.Shape, m.model)
		m.stats.Drawn++
	}
}

// SetGroupVisible mostra ou esconde um grupo de objetos.
func (m *Manager) SetGroupVisible(group string, visible bool) {
	if visible {
		delete(m.hidden, group)
		return
	}
	m.hidden[group] = true
}

// GroupVisible informa se o grupo está visível.
func (m *Manager) GroupVisible(group string) bool {
	return !m.hidden[group]
}

// Stats retorna os números do último RenderScene.
func (m *Manager) Stats() Stats {
	return m.stats
}

// Textures retorna o registro de texturas.
func (m *Manager) Textures() *textures.Registry {
	return m.textures
}

// Destroy libera as texturas da GPU.
func (m *Manager) Destroy() {
	m.textures.Destroy()
	m.scene = nil
}
