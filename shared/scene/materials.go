package scene

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTag          = errors.New("tag vazia")
	ErrDuplicateMaterial = errors.New("material duplicado")
)

// MaterialRegistry é a lista de materiais da cena, consultada por tag.
// É preenchida uma vez na preparação e não muda depois.
type MaterialRegistry struct {
	materials []Material
}

// NewMaterialRegistry cria um registro com os materiais informados.
func NewMaterialRegistry(materials ...Material) (*MaterialRegistry, error) {
	r := &MaterialRegistry{}
	for _, m := range materials {
		if err := r.Define(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Define adiciona um material ao registro.
func (r *MaterialRegistry) Define(m Material) error {
	if m.Tag == "" {
		return ErrEmptyTag
	}
	if _, ok := r.Find(m.Tag); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateMaterial, m.Tag)
	}
	r.materials = append(r.materials, m)
	return nil
}

// Find procura um material pela tag.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len retorna quantos materiais foram definidos.
func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}

// Tags retorna as tags na ordem de definição.
func (r *MaterialRegistry) Tags() []string {
	tags := make([]string, len(r.materials))
	for i, m := range r.materials {
		tags[i] = m.Tag
	}
	return tags
}
