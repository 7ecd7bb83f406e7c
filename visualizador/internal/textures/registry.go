// Package textures mantém o registro de texturas carregadas: até MaxSlots entradas,
// cada uma associando uma tag a um handle de GPU.
package textures

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"DeskScene/shared/scene"
)

// MaxSlots é o número de unidades de textura disponíveis.
const MaxSlots = scene.MaxTextures

var (
	ErrUnsupportedChannels = errors.New("número de canais não suportado")
	ErrRegistryFull        = errors.New("registro de texturas cheio")
	ErrDuplicateTag        = errors.New("tag de textura já registrada")
)

// Image é uma imagem decodificada ainda em memória principal.
type Image struct {
	Width    int32
	Height   int32
	Channels int
	Handle   any // dados específicos do Loader
}

// Texture é uma textura residente na GPU.
type Texture struct {
	ID       uint32
	Width    int32
	Height   int32
	Channels int
	Handle   any
}

// Loader decodifica imagens e cria texturas na GPU.
type Loader interface {
	// Decode lê o arquivo já invertido verticalmente.
	Decode(path string) (Image, error)
	// Upload cria a textura com filtro linear, wrap repeat e mipmaps.
	Upload(img Image) (Texture, error)
	Release(img Image)
	Unload(tex Texture)
}

type entry struct {
	tag string
	tex Texture
}

// Registry associa tags a texturas. O slot de uma textura é a ordem em que foi criada.
type Registry struct {
	loader  Loader
	entries [MaxSlots]entry
	count   int
}

// NewRegistry cria um registro vazio.
func NewRegistry(loader Loader) *Registry {
	return &Registry{loader: loader}
}

// Create carrega a imagem em path e registra a textura sob tag no próximo slot livre.
func (r *Registry) Create(path, tag string) error {
	if r.count >= MaxSlots {
		log.Printf("[Texturas] Registro cheio, ignorando %s", path)
		return fmt.Errorf("%w: %s", ErrRegistryFull, tag)
	}
	if r.FindSlot(tag) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateTag, tag)
	}

	img, err := r.loader.Decode(path)
	if err != nil {
		log.Printf("[Texturas] Não foi possível carregar a imagem: %s (%v)", path, err)
		return fmt.Errorf("falha ao carregar %s: %w", path, err)
	}
	log.Printf("[Texturas] Imagem carregada: %s, largura:%d, altura:%d, canais:%d", path, img.Width, img.Height, img.Channels)

	if img.Channels != 3 && img.Channels != 4 {
		r.loader.Release(img)
		log.Printf("[Texturas] Imagem com %d canais não suportada: %s", img.Channels, path)
		return fmt.Errorf("%w: %d (%s)", ErrUnsupportedChannels, img.Channels, path)
	}

	tex, err := r.loader.Upload(img)
	r.loader.Release(img)
	if err != nil {
		log.Printf("[Texturas] FALHA ao enviar textura para a GPU: %s (%v)", path, err)
		return fmt.Errorf("falha ao criar textura %s: %w", tag, err)
	}

	r.entries[r.count] = entry{tag: tag, tex: tex}
	r.count++
	return nil
}

// FindID retorna o handle de GPU da textura com a tag informada.
func (r *Registry) FindID(tag string) (uint32, bool) {
	if slot := r.FindSlot(tag); slot >= 0 {
		return r.entries[slot].tex.ID, true
	}
	return 0, false
}

// Find retorna a textura com a tag informada.
func (r *Registry) Find(tag string) (Texture, bool) {
	if slot := r.FindSlot(tag); slot >= 0 {
		return r.entries[slot].tex, true
	}
	return Texture{}, false
}

// FindSlot retorna o slot da textura com a tag informada, ou -1.
func (r *Registry) FindSlot(tag string) int {
	for i := 0; i < r.count; i++ {
		if r.entries[i].tag == tag {
			return i
		}
	}
	return -1
}

// Len retorna quantas texturas estão registradas.
func (r *Registry) Len() int {
	return r.count
}

// Tags retorna as tags na ordem dos slots.
func (r *Registry) Tags() []string {
	tags := make([]string, r.count)
	for i := 0; i < r.count; i++ {
		tags[i] = r.entries[i].tag
	}
	return tags
}

// Destroy libera todas as texturas da GPU e esvazia o registro.
func (r *Registry) Destroy() {
	for i := 0; i < r.count; i++ {
		r.loader.Unload(r.entries[i].tex)
		r.entries[i] = entry{}
	}
	r.count = 0
}

// Result resume uma carga de texturas.
type Result struct {
	Loaded int
	Errors []error
}

// Failed retorna quantas texturas falharam.
func (res Result) Failed() int {
	return len(res.Errors)
}

// LoadAll carrega todas as texturas da cena a partir de dir.
// Uma falha não interrompe as demais: o objeto correspondente cai para a cor.
func LoadAll(r *Registry, dir string, refs []scene.TextureRef) Result {
	var res Result
	for _, ref := range refs {
		path := ref.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if err := r.Create(path, ref.Tag); err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		res.Loaded++
	}
	return res
}
